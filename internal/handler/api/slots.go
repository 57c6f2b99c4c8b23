package api

import (
	"net/http"
	"strconv"

	"appointment-engine/internal/domain/civil"
	resdto "appointment-engine/internal/handler/dto/response"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary List free slots
// @Description Public slot search. Unknown businesses or staff return an empty list.
// @Tags slots
// @Produce json
// @Param businessId path string true "Business ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration query int true "Service duration in minutes"
// @Param staffId query string false "Staff ID or 'any'"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /public/businesses/{businessId}/slots [get]
func (h *SlotHandler) PublicFreeSlots(c *gin.Context) {
	businessID, date, staffID, duration, ok := parseSlotQuery(c)
	if !ok {
		return
	}
	slots, err := h.q.FreeSlots(c.Request.Context(), businessID, staffID, date, duration)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SlotsResponse{Date: date.String(), DurationMinutes: duration, Slots: slots})
}

// @Summary List free slots (staff)
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration query int true "Service duration in minutes"
// @Param staffId query string false "Staff ID or 'any'"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /businesses/{businessId}/slots [get]
func (h *SlotHandler) FreeSlots(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, date, staffID, duration, ok := parseSlotQuery(c)
	if !ok {
		return
	}
	slots, err := h.q.FreeSlotsFor(c.Request.Context(), principal, businessID, staffID, date, duration)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SlotsResponse{Date: date.String(), DurationMinutes: duration, Slots: slots})
}

func parseSlotQuery(c *gin.Context) (uuid.UUID, civil.Date, *uuid.UUID, int, bool) {
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return uuid.Nil, civil.Date{}, nil, 0, false
	}
	date, err := civil.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return uuid.Nil, civil.Date{}, nil, 0, false
	}
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid duration", nil)
		return uuid.Nil, civil.Date{}, nil, 0, false
	}
	staffID, ok := optionalUUIDQuery(c, "staffId")
	if !ok {
		return uuid.Nil, civil.Date{}, nil, 0, false
	}
	return businessID, date, staffID, duration, true
}
