package api

import (
	"net/http"

	resdto "venue-admin/internal/handler/dto/response"
	"venue-admin/internal/handler/httperr"
	"venue-admin/internal/usecase/commands"
	"venue-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RatesHandler struct {
	rates queries.RateQueries
	cmds  commands.ReservationCommands
}

func NewRatesHandler(rates queries.RateQueries, cmds commands.ReservationCommands) *RatesHandler {
	return &RatesHandler{rates: rates, cmds: cmds}
}

// @Summary Current rate table
// @Description Rates resolved from the add-ons catalog, with configured fallbacks
// @Tags rates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RatesResponse
// @Failure 503 {object} httperr.Response
// @Router /rates [get]
func (h *RatesHandler) Get(c *gin.Context) {
	rates, err := h.rates.Current(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromRateTable(rates)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Drop cached rates
// @Description Forces the next quote to read the add-ons catalog
// @Tags rates
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /rates/cache [delete]
func (h *RatesHandler) Invalidate(c *gin.Context) {
	if err := h.cmds.InvalidateRates(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
