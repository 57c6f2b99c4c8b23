package response

import (
	"encoding/json"
	"time"

	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	StaffID         *uuid.UUID `json:"staffId,omitempty"`
	CustomerID      uuid.UUID  `json:"customerId"`
	ServiceID       uuid.UUID  `json:"serviceId"`
	Date            string     `json:"date"`
	StartTime       string     `json:"startTime"`
	EndTime         string     `json:"endTime"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`
	Source          string     `json:"source"`
	Note            string     `json:"note,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}

type BookingEventResponse struct {
	ID         uuid.UUID       `json:"id"`
	BookingID  uuid.UUID       `json:"bookingId"`
	CustomerID uuid.UUID       `json:"customerId"`
	Kind       string          `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurredAt"`
}

type BookingEventPageResponse struct {
	Items      []*BookingEventResponse `json:"items"`
	NextCursor string                  `json:"nextCursor,omitempty"`
}

func FromBookingEventPage(items []*queries.BookingEventView, next *queries.Cursor) *BookingEventPageResponse {
	res := &BookingEventPageResponse{Items: make([]*BookingEventResponse, len(items))}
	for i, it := range items {
		var ev BookingEventResponse
		_ = copier.Copy(&ev, it)
		res.Items[i] = &ev
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
