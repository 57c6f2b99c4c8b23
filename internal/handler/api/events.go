package api

import (
	"net/http"
	"strconv"

	resdto "appointment-engine/internal/handler/dto/response"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingEventHandler struct {
	q queries.BookingEventQueries
}

func NewBookingEventHandler(q queries.BookingEventQueries) *BookingEventHandler {
	return &BookingEventHandler{q: q}
}

// @Summary List booking events
// @Description Keyset-paginated outbox of booking status changes, oldest first.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.BookingEventPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /businesses/{businessId}/booking-events [get]
func (h *BookingEventHandler) List(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.List(c.Request.Context(), principal, businessID, cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingEventPage(items, next))
}
