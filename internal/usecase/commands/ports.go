package commands

import (
	"appointment-engine/internal/domain/civil"

	"github.com/google/uuid"
)

// Command inputs are already parsed into domain value types by the handler.
type CreateRuleInput struct {
	StaffID    uuid.UUID
	Weekday    int
	WorkStart  civil.TimeOfDay
	WorkEnd    civil.TimeOfDay
	BreakStart *civil.TimeOfDay
	BreakEnd   *civil.TimeOfDay
}

type CreateBlockInput struct {
	StaffID  *uuid.UUID
	Date     civil.Date
	Start    civil.TimeOfDay
	End      civil.TimeOfDay
	Capacity int
}

type CreateBookingInput struct {
	StaffID         *uuid.UUID      `json:"staff_id,omitempty"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	ServiceID       uuid.UUID       `json:"service_id"`
	Date            civil.Date      `json:"date"`
	Start           civil.TimeOfDay `json:"start"`
	DurationMinutes int             `json:"duration_minutes"`
	Note            string          `json:"note,omitempty"`
}
