package queries

import (
	"context"
	"time"

	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/user"

	"github.com/google/uuid"
)

type BookingEventReader interface {
	FindFirstPage(ctx context.Context, businessID uuid.UUID, limit int32) ([]*BookingEventView, error)
	FindKeyset(ctx context.Context, businessID uuid.UUID, lastOccurredAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingEventView, error)
}

type BookingEventQueries interface {
	List(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, cursor *Cursor, limit int) ([]*BookingEventView, *Cursor, error)
}

type bookingEventQueriesImpl struct {
	repo BookingEventReader
}

func NewBookingEventQueries(repo BookingEventReader) BookingEventQueries {
	return &bookingEventQueriesImpl{repo: repo}
}

// List pages through the outbox oldest first. The returned cursor is nil on the last page.
func (q *bookingEventQueriesImpl) List(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, cursor *Cursor, limit int) ([]*BookingEventView, *Cursor, error) {
	if err := authorize(principal, businessID, user.RoleStaff); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*BookingEventView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, businessID, int32(limit+1))
	} else {
		lastOccurredAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindKeyset(ctx, businessID, lastOccurredAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, markReadErr(err)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.OccurredAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
