package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-admin/internal/handler/api"
	reqdto "venue-admin/internal/handler/dto/request"
	"venue-admin/internal/handler/middleware"
	"venue-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Quotes       *api.QuoteHandler
	Rates        *api.RatesHandler
	Reservations *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		quotes := apiGroup.Group("/quotes")
		addRoutes(quotes, []route{
			{Method: http.MethodPost, Path: "/preview", Handler: h.Quotes.Preview},
			{Method: http.MethodPost, Path: "", Handler: h.Quotes.Issue},
			{Method: http.MethodGet, Path: "", Handler: h.Quotes.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Quotes.Get},
		})

		rates := apiGroup.Group("/rates")
		addRoutes(rates, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Rates.Get},
			{Method: http.MethodDelete, Path: "/cache", Handler: h.Rates.Invalidate},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservations.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reservations.Update},
			{Method: http.MethodPost, Path: "/:id/actions", Handler: h.Reservations.TakeAction},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
