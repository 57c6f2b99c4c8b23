package converter

import (
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(d civil.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPgtype(pd pgtype.Date) civil.Date {
	return civil.DateOf(pgconv.DateFromPgtype(pd))
}

func TimeOfDayToPgtype(t civil.TimeOfDay) pgtype.Time {
	return pgconv.ClockToPgtype(t.Minutes())
}

func TimeOfDayFromPgtype(pt pgtype.Time) civil.TimeOfDay {
	return civil.TimeOfDay(pgconv.ClockFromPgtype(pt))
}

func TimeOfDayPtrToPgtype(t *civil.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{Valid: false}
	}
	return TimeOfDayToPgtype(*t)
}

func TimeOfDayPtrFromPgtype(pt pgtype.Time) *civil.TimeOfDay {
	if !pt.Valid {
		return nil
	}
	t := TimeOfDayFromPgtype(pt)
	return &t
}
