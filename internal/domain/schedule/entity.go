package schedule

import (
	"errors"
	"time"

	"appointment-engine/internal/domain/civil"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekday    = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidWorkWindow = errors.New("work end must be after work start")
	ErrInvalidBreak      = errors.New("break must end after it starts and lie within working hours")
	ErrIncompleteBreak   = errors.New("break start and break end must be set together")
)

// Rule is a weekly work template for one staff member. It has no effect until materialized.
type Rule struct {
	id         uuid.UUID
	businessID uuid.UUID
	staffID    uuid.UUID
	weekday    time.Weekday
	work       civil.Window
	brk        *civil.Window
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

type RuleParams struct {
	BusinessID uuid.UUID
	StaffID    uuid.UUID
	Weekday    int
	WorkStart  civil.TimeOfDay
	WorkEnd    civil.TimeOfDay
	BreakStart *civil.TimeOfDay
	BreakEnd   *civil.TimeOfDay
}

func NewRule(p RuleParams, now time.Time) (*Rule, error) {
	if p.Weekday < 0 || p.Weekday > 6 {
		return nil, ErrInvalidWeekday
	}
	work, err := civil.NewWindow(p.WorkStart, p.WorkEnd)
	if err != nil {
		return nil, ErrInvalidWorkWindow
	}
	brk, err := validateBreak(work, p.BreakStart, p.BreakEnd)
	if err != nil {
		return nil, err
	}

	return &Rule{
		id:         uuid.New(),
		businessID: p.BusinessID,
		staffID:    p.StaffID,
		weekday:    time.Weekday(p.Weekday),
		work:       work,
		brk:        brk,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func validateBreak(work civil.Window, start, end *civil.TimeOfDay) (*civil.Window, error) {
	if start == nil && end == nil {
		return nil, nil
	}
	if start == nil || end == nil {
		return nil, ErrIncompleteBreak
	}
	brk, err := civil.NewWindow(*start, *end)
	if err != nil {
		return nil, ErrInvalidBreak
	}
	if !work.Contains(brk) {
		return nil, ErrInvalidBreak
	}
	return &brk, nil
}

// ReconstructRule rebuilds a persisted rule without re-validating it.
func ReconstructRule(
	id, businessID, staffID uuid.UUID,
	weekday time.Weekday,
	workStart, workEnd civil.TimeOfDay,
	breakStart, breakEnd *civil.TimeOfDay,
	active bool,
	createdAt, updatedAt time.Time,
) *Rule {
	r := &Rule{
		id:         id,
		businessID: businessID,
		staffID:    staffID,
		weekday:    weekday,
		work:       rawWindow(workStart, workEnd),
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
	if breakStart != nil && breakEnd != nil {
		brk := rawWindow(*breakStart, *breakEnd)
		r.brk = &brk
	}
	return r
}

func rawWindow(start, end civil.TimeOfDay) civil.Window {
	if w, err := civil.NewWindow(start, end); err == nil {
		return w
	}
	return civil.Window{}
}

// Segment is an unvalidated candidate interval produced from a rule.
type Segment struct {
	Start civil.TimeOfDay
	End   civil.TimeOfDay
}

// Segments splits the working window around the break. A break touching a working edge yields
// an empty segment, which callers are expected to reject on its own.
func (r *Rule) Segments() []Segment {
	if r.brk == nil {
		return []Segment{{Start: r.work.Start(), End: r.work.End()}}
	}
	return []Segment{
		{Start: r.work.Start(), End: r.brk.Start()},
		{Start: r.brk.End(), End: r.work.End()},
	}
}

func (r *Rule) Deactivate(now time.Time) {
	r.active = false
	r.updatedAt = now
}

func (r *Rule) ID() uuid.UUID            { return r.id }
func (r *Rule) BusinessID() uuid.UUID    { return r.businessID }
func (r *Rule) StaffID() uuid.UUID       { return r.staffID }
func (r *Rule) Weekday() time.Weekday    { return r.weekday }
func (r *Rule) Work() civil.Window       { return r.work }
func (r *Rule) Break() *civil.Window     { return r.brk }
func (r *Rule) IsActive() bool           { return r.active }
func (r *Rule) CreatedAt() time.Time     { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time     { return r.updatedAt }
