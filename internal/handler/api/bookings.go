package api

import (
	"net/http"

	"appointment-engine/internal/domain/civil"
	reqdto "appointment-engine/internal/handler/dto/request"
	resdto "appointment-engine/internal/handler/dto/response"
	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const replayedHeader = "Idempotent-Replayed"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking (staff)
// @Description Books a slot on behalf of a customer. Capacity is re-checked atomically.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /businesses/{businessId}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, in, key, ok := bindCreateBooking(c)
	if !ok {
		return
	}
	result, err := h.cmds.CreateBooking(c.Request.Context(), principal, businessID, in, key)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	respondCreated(c, result)
}

// @Summary Create booking (public)
// @Description Self-service booking by a customer. Start times in the past are rejected.
// @Tags bookings
// @Accept json
// @Produce json
// @Param businessId path string true "Business ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /public/businesses/{businessId}/bookings [post]
func (h *BookingHandler) CreatePublic(c *gin.Context) {
	businessID, in, key, ok := bindCreateBooking(c)
	if !ok {
		return
	}
	result, err := h.cmds.CreatePublicBooking(c.Request.Context(), businessID, in, key)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	respondCreated(c, result)
}

func bindCreateBooking(c *gin.Context) (uuid.UUID, commands.CreateBookingInput, *uuid.UUID, bool) {
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return uuid.Nil, commands.CreateBookingInput{}, nil, false
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return uuid.Nil, commands.CreateBookingInput{}, nil, false
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return uuid.Nil, commands.CreateBookingInput{}, nil, false
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or time", nil)
		return uuid.Nil, commands.CreateBookingInput{}, nil, false
	}
	return businessID, in, key, true
}

func respondCreated(c *gin.Context, result *commands.CreateBookingResult) {
	res := resdto.FromBookingView(result.Booking)
	if result.IsReplayed {
		c.Header(replayedHeader, "true")
		c.JSON(http.StatusOK, res)
		return
	}
	c.Header("Location", "/api/businesses/"+result.Booking.BusinessID.String()+"/bookings/"+res.ID.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary List bookings of a day
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /businesses/{businessId}/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	date, err := civil.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	list, err := h.q.ListByDate(c.Request.Context(), principal, businessID, date)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(list))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{businessId}/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), principal, businessID, id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Moves a scheduled booking to completed, cancelled or no_show and records an event.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /businesses/{businessId}/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	status, err := req.ToStatus()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}
	view, err := h.cmds.UpdateBookingStatus(c.Request.Context(), principal, businessID, id, status)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Calendar feed
// @Description iCalendar export of the bookings in [from, to].
// @Tags bookings
// @Produce text/calendar
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {string} string
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /businesses/{businessId}/calendar.ics [get]
func (h *BookingHandler) Calendar(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	from, err := civil.ParseDate(c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date", nil)
		return
	}
	to, err := civil.ParseDate(c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date", nil)
		return
	}
	feed, err := h.q.CalendarFeed(c.Request.Context(), principal, businessID, from, to)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
