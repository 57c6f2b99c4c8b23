//go:build unit || e2e

package builder

import (
	"time"

	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/schedule"
	reqdto "appointment-engine/internal/handler/dto/request"
	"appointment-engine/internal/infra/repository/converter"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type RuleBuilder struct {
	BusinessID uuid.UUID
	StaffID    uuid.UUID
	Weekday    int
	WorkStart  string
	WorkEnd    string
	BreakStart *string
	BreakEnd   *string
	Now        time.Time
}

// NewRuleBuilder starts from a Monday 09:00-17:00 rule without a break.
func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		BusinessID: uuid.New(),
		StaffID:    uuid.New(),
		Weekday:    int(time.Monday),
		WorkStart:  "09:00",
		WorkEnd:    "17:00",
		Now:        time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (r *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(r)
	return r
}

func (r *RuleBuilder) WithBusiness(id uuid.UUID) *RuleBuilder {
	r.BusinessID = id
	return r
}

func (r *RuleBuilder) WithStaff(id uuid.UUID) *RuleBuilder {
	r.StaffID = id
	return r
}

func (r *RuleBuilder) WithWeekday(weekday time.Weekday) *RuleBuilder {
	r.Weekday = int(weekday)
	return r
}

func (r *RuleBuilder) WithWork(start, end string) *RuleBuilder {
	r.WorkStart, r.WorkEnd = start, end
	return r
}

func (r *RuleBuilder) WithBreak(start, end string) *RuleBuilder {
	r.BreakStart, r.BreakEnd = &start, &end
	return r
}

func (r *RuleBuilder) Params() schedule.RuleParams {
	return schedule.RuleParams{
		BusinessID: r.BusinessID,
		StaffID:    r.StaffID,
		Weekday:    r.Weekday,
		WorkStart:  civil.MustTimeOfDay(r.WorkStart),
		WorkEnd:    civil.MustTimeOfDay(r.WorkEnd),
		BreakStart: optionalTime(r.BreakStart),
		BreakEnd:   optionalTime(r.BreakEnd),
	}
}

// Build methods
func (r *RuleBuilder) BuildDomain() (*schedule.Rule, error) {
	return schedule.NewRule(r.Params(), r.Now)
}

func (r *RuleBuilder) MustBuildDomain() *schedule.Rule {
	rule, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *RuleBuilder) BuildInput() commands.CreateRuleInput {
	p := r.Params()
	return commands.CreateRuleInput{
		StaffID:    p.StaffID,
		Weekday:    p.Weekday,
		WorkStart:  p.WorkStart,
		WorkEnd:    p.WorkEnd,
		BreakStart: p.BreakStart,
		BreakEnd:   p.BreakEnd,
	}
}

func (r *RuleBuilder) BuildCreateRequestDTO() reqdto.CreateScheduleRuleRequest {
	weekday := r.Weekday
	return reqdto.CreateScheduleRuleRequest{
		StaffID:    r.StaffID,
		Weekday:    &weekday,
		WorkStart:  r.WorkStart,
		WorkEnd:    r.WorkEnd,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
	}
}

func (r *RuleBuilder) BuildInfra() sqlc.WeeklyScheduleRules {
	p := r.Params()
	return sqlc.WeeklyScheduleRules{
		ID:         uuid.New(),
		BusinessID: r.BusinessID,
		StaffID:    r.StaffID,
		Weekday:    int16(r.Weekday),
		WorkStart:  converter.TimeOfDayToPgtype(p.WorkStart),
		WorkEnd:    converter.TimeOfDayToPgtype(p.WorkEnd),
		BreakStart: converter.TimeOfDayPtrToPgtype(p.BreakStart),
		BreakEnd:   converter.TimeOfDayPtrToPgtype(p.BreakEnd),
		IsActive:   true,
		CreatedAt:  pgconv.TimeToPgtype(r.Now),
		UpdatedAt:  pgconv.TimeToPgtype(r.Now),
	}
}

func (r *RuleBuilder) BuildView() *queries.RuleView {
	return queries.NewRuleView(r.MustBuildDomain())
}

func optionalTime(s *string) *civil.TimeOfDay {
	if s == nil {
		return nil
	}
	t := civil.MustTimeOfDay(*s)
	return &t
}
