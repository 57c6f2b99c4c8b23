package booking

import (
	"encoding/json"
	"time"

	"appointment-engine/internal/domain/civil"

	"github.com/google/uuid"
)

// StatusChanged is emitted whenever a booking leaves the scheduled state.
type StatusChanged struct {
	BookingID  uuid.UUID
	BusinessID uuid.UUID
	CustomerID uuid.UUID
	StaffID    *uuid.UUID
	ServiceID  uuid.UUID
	Date       civil.Date
	Start      civil.TimeOfDay
	From       Status
	To         Status
	OccurredAt time.Time
}

func (e StatusChanged) Kind() EventKind {
	return statusEvents[e.To]
}

type eventPayload struct {
	BookingID  string  `json:"booking_id"`
	BusinessID string  `json:"business_id"`
	CustomerID string  `json:"customer_id"`
	StaffID    *string `json:"staff_id,omitempty"`
	ServiceID  string  `json:"service_id"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	From       string  `json:"from"`
	To         string  `json:"to"`
}

func (e StatusChanged) Payload() ([]byte, error) {
	p := eventPayload{
		BookingID:  e.BookingID.String(),
		BusinessID: e.BusinessID.String(),
		CustomerID: e.CustomerID.String(),
		ServiceID:  e.ServiceID.String(),
		Date:       e.Date.String(),
		Time:       e.Start.String(),
		From:       e.From.String(),
		To:         e.To.String(),
	}
	if e.StaffID != nil {
		s := e.StaffID.String()
		p.StaffID = &s
	}
	return json.Marshal(p)
}
