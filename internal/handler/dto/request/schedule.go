package request

import (
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateScheduleRuleRequest struct {
	StaffID    uuid.UUID `json:"staffId" binding:"required"`
	Weekday    *int      `json:"weekday" binding:"required,min=0,max=6"`
	WorkStart  string    `json:"workStart" binding:"required"`
	WorkEnd    string    `json:"workEnd" binding:"required"`
	BreakStart *string   `json:"breakStart,omitempty"`
	BreakEnd   *string   `json:"breakEnd,omitempty"`
}

func (r CreateScheduleRuleRequest) ToInput() (commands.CreateRuleInput, error) {
	workStart, err := civil.ParseTimeOfDay(r.WorkStart)
	if err != nil {
		return commands.CreateRuleInput{}, err
	}
	workEnd, err := civil.ParseTimeOfDay(r.WorkEnd)
	if err != nil {
		return commands.CreateRuleInput{}, err
	}
	breakStart, err := parseOptionalTime(r.BreakStart)
	if err != nil {
		return commands.CreateRuleInput{}, err
	}
	breakEnd, err := parseOptionalTime(r.BreakEnd)
	if err != nil {
		return commands.CreateRuleInput{}, err
	}

	return commands.CreateRuleInput{
		StaffID:    r.StaffID,
		Weekday:    *r.Weekday,
		WorkStart:  workStart,
		WorkEnd:    workEnd,
		BreakStart: breakStart,
		BreakEnd:   breakEnd,
	}, nil
}

func parseOptionalTime(s *string) (*civil.TimeOfDay, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := civil.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
