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

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoToken = errors.New("access token missing from context")

type ReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewReservationHandler(cmds commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{cmds: cmds}
}

// @Summary Create reservation
// @Description Re-price the reservation and forward it to the venue API
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReservationRequest true "Reservation form"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	h.submit(c, nil, http.StatusCreated)
}

// @Summary Update reservation
// @Description Re-price an existing reservation and forward the update to the venue API
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation form"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid reservation id"), "Invalid id", nil)
		return
	}
	h.submit(c, &id, http.StatusOK)
}

// @Summary Take a reservation action
// @Description Validate the status transition and forward it to the venue API
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.ActionRequest true "Action"
// @Success 200 {object} resdto.ActionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/actions [post]
func (h *ReservationHandler) TakeAction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid reservation id"), "Invalid id", nil)
		return
	}
	actorID, token, ok := h.caller(c)
	if !ok {
		return
	}

	var req reqdto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	result, err := h.cmds.TakeAction(c.Request.Context(), req.ToInput(id), actorID, token)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActionResult(result))
}

func (h *ReservationHandler) submit(c *gin.Context, id *int64, status int) {
	actorID, token, ok := h.caller(c)
	if !ok {
		return
	}

	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToInput(id), actorID, token)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromSubmitResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	if status == http.StatusCreated && resp.ID != nil {
		c.Header("Location", "/api/reservations/"+strconv.FormatInt(*resp.ID, 10))
	}
	c.JSON(status, resp)
}

func (h *ReservationHandler) caller(c *gin.Context) (actorID uuid.UUID, token string, ok bool) {
	id, found := middleware.GetUserID(c)
	if !found {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUser, "Unauthorized", nil)
		return actorID, "", false
	}
	token, found = middleware.GetAccessToken(c)
	if !found {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoToken, "Unauthorized", nil)
		return actorID, "", false
	}
	return id, token, true
}
