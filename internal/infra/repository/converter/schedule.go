package converter

import (
	"time"

	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/schedule"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
)

func RuleToCreateParams(r *schedule.Rule) sqlc.CreateScheduleRuleParams {
	params := sqlc.CreateScheduleRuleParams{
		ID:         r.ID(),
		BusinessID: r.BusinessID(),
		StaffID:    r.StaffID(),
		Weekday:    int16(r.Weekday()),
		WorkStart:  TimeOfDayToPgtype(r.Work().Start()),
		WorkEnd:    TimeOfDayToPgtype(r.Work().End()),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
	if brk := r.Break(); brk != nil {
		params.BreakStart = TimeOfDayToPgtype(brk.Start())
		params.BreakEnd = TimeOfDayToPgtype(brk.End())
	}
	return params
}

func RuleFromRow(row sqlc.WeeklyScheduleRules) *schedule.Rule {
	var breakStart, breakEnd *civil.TimeOfDay
	if row.BreakStart.Valid && row.BreakEnd.Valid {
		breakStart = TimeOfDayPtrFromPgtype(row.BreakStart)
		breakEnd = TimeOfDayPtrFromPgtype(row.BreakEnd)
	}
	return schedule.ReconstructRule(
		row.ID,
		row.BusinessID,
		row.StaffID,
		time.Weekday(row.Weekday),
		TimeOfDayFromPgtype(row.WorkStart),
		TimeOfDayFromPgtype(row.WorkEnd),
		breakStart,
		breakEnd,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func RulesFromRows(rows []sqlc.WeeklyScheduleRules) []*schedule.Rule {
	rules := make([]*schedule.Rule, len(rows))
	for i, row := range rows {
		rules[i] = RuleFromRow(row)
	}
	return rules
}
