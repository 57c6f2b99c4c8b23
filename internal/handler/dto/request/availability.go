package request

import (
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type MaterializeRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

func (r MaterializeRequest) Range() (civil.Date, civil.Date, error) {
	from, err := civil.ParseDate(r.From)
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	to, err := civil.ParseDate(r.To)
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	return from, to, nil
}

type CreateBlockRequest struct {
	StaffID  *uuid.UUID `json:"staffId,omitempty"`
	Date     string     `json:"date" binding:"required"`
	Start    string     `json:"start" binding:"required"`
	End      string     `json:"end" binding:"required"`
	Capacity *int       `json:"capacity,omitempty" binding:"omitempty,min=1"`
}

// ToInput leaves Capacity zero when absent; the use case substitutes the configured default.
func (r CreateBlockRequest) ToInput() (commands.CreateBlockInput, error) {
	date, err := civil.ParseDate(r.Date)
	if err != nil {
		return commands.CreateBlockInput{}, err
	}
	start, err := civil.ParseTimeOfDay(r.Start)
	if err != nil {
		return commands.CreateBlockInput{}, err
	}
	end, err := civil.ParseTimeOfDay(r.End)
	if err != nil {
		return commands.CreateBlockInput{}, err
	}

	in := commands.CreateBlockInput{
		StaffID: r.StaffID,
		Date:    date,
		Start:   start,
		End:     end,
	}
	if r.Capacity != nil {
		in.Capacity = *r.Capacity
	}
	return in, nil
}
