package availability

import (
	"errors"
	"time"

	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/schedule"

	"github.com/teambition/rrule-go"
)

var ErrInvalidRange = errors.New("invalid date range")

// RejectedCandidate records a rule occurrence that could not become a block.
type RejectedCandidate struct {
	RuleID string
	Date   civil.Date
	Start  civil.TimeOfDay
	End    civil.TimeOfDay
}

type Plan struct {
	Blocks   []*Block
	Rejected []RejectedCandidate
}

type PlanOptions struct {
	From     civil.Date
	To       civil.Date
	Capacity int
	MaxDays  int
}

var weekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

func ValidateRange(from, to civil.Date, maxDays int) error {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return ErrInvalidRange
	}
	if maxDays > 0 && civil.DaysBetween(from, to)+1 > maxDays {
		return ErrInvalidRange
	}
	return nil
}

// PlanBlocks expands active rules into candidate blocks for every matching date in the
// inclusive range. Inactive rules contribute nothing.
func PlanBlocks(rules []*schedule.Rule, opts PlanOptions, now time.Time) (Plan, error) {
	if err := ValidateRange(opts.From, opts.To, opts.MaxDays); err != nil {
		return Plan{}, err
	}
	capacity := max(1, opts.Capacity)

	var plan Plan
	for _, rule := range rules {
		if !rule.IsActive() {
			continue
		}
		dates, err := OccurrencesOf(rule.Weekday(), opts.From, opts.To)
		if err != nil {
			return Plan{}, err
		}
		for _, date := range dates {
			for _, seg := range rule.Segments() {
				staffID := rule.StaffID()
				block, berr := NewBlock(BlockParams{
					BusinessID: rule.BusinessID(),
					StaffID:    &staffID,
					Date:       date,
					Start:      seg.Start,
					End:        seg.End,
					Capacity:   capacity,
					Source:     SourceMaterialized,
				}, now)
				if berr != nil {
					plan.Rejected = append(plan.Rejected, RejectedCandidate{
						RuleID: rule.ID().String(),
						Date:   date,
						Start:  seg.Start,
						End:    seg.End,
					})
					continue
				}
				plan.Blocks = append(plan.Blocks, block)
			}
		}
	}
	return plan, nil
}

// OccurrencesOf lists the dates in [from, to] that fall on weekday.
func OccurrencesOf(weekday time.Weekday, from, to civil.Date) ([]civil.Date, error) {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   from.Time(),
		Until:     to.Time(),
		Byweekday: []rrule.Weekday{weekdays[weekday]},
	})
	if err != nil {
		return nil, err
	}

	occurrences := r.All()
	dates := make([]civil.Date, 0, len(occurrences))
	for _, t := range occurrences {
		dates = append(dates, civil.DateOf(t))
	}
	return dates, nil
}
