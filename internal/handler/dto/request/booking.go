package request

import (
	"strings"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	StaffID         *uuid.UUID `json:"staffId,omitempty"`
	CustomerID      uuid.UUID  `json:"customerId" binding:"required"`
	ServiceID       uuid.UUID  `json:"serviceId" binding:"required"`
	Date            string     `json:"date" binding:"required"`
	Time            string     `json:"time" binding:"required"`
	DurationMinutes int        `json:"durationMinutes" binding:"required,min=1"`
	Note            string     `json:"note,omitempty" binding:"max=1000"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := civil.ParseDate(r.Date)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	start, err := civil.ParseTimeOfDay(r.Time)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	return commands.CreateBookingInput{
		StaffID:         r.StaffID,
		CustomerID:      r.CustomerID,
		ServiceID:       r.ServiceID,
		Date:            date,
		Start:           start,
		DurationMinutes: r.DurationMinutes,
		Note:            strings.TrimSpace(r.Note),
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed cancelled no_show"`
}

func (r UpdateBookingStatusRequest) ToStatus() (booking.Status, error) {
	return booking.NewStatus(r.Status)
}
