package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "venue-admin/internal/handler/dto/request"
	resdto "venue-admin/internal/handler/dto/response"
	"venue-admin/internal/handler/httperr"
	"venue-admin/internal/handler/middleware"
	"venue-admin/internal/usecase/commands"
	"venue-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoUser = errors.New("authenticated user missing from context")

type QuoteHandler struct {
	cmds commands.QuoteCommands
	q    queries.QuoteQueries
}

func NewQuoteHandler(cmds commands.QuoteCommands, q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{cmds: cmds, q: q}
}

// @Summary Preview a quote
// @Description Price the reservation form without recording anything
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Pricing fields of the form"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /quotes/preview [post]
func (h *QuoteHandler) Preview(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	result, err := h.cmds.Preview(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromQuoteResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Issue a quote
// @Description Price the reservation form and record the quote
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Pricing fields of the form"
// @Success 201 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) Issue(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUser, "Unauthorized", nil)
		return
	}

	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	result, err := h.cmds.Issue(c.Request.Context(), req.ToInput(), actorID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromQuoteResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.Header("Location", "/api/quotes/"+result.ID.String())
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get quote
// @Description Get a quote issued by the caller
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUser, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromQuoteView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List quotes
// @Description List the caller's quotes, newest first, with keyset pagination
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.QuoteListResponse
// @Failure 400 {object} httperr.Response
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUser, "Unauthorized", nil)
		return
	}

	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = queries.ValidateLimit(iv)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.List(c.Request.Context(), actorID, cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromQuoteList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
