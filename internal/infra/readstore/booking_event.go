package readstore

import (
	"context"
	"time"

	"appointment-engine/internal/infra"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingEventReadQueries interface {
	ListBookingEventsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingEventsFirstPageParams) ([]sqlc.BookingEvents, error)
	ListBookingEventsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingEventsKeysetParams) ([]sqlc.BookingEvents, error)
}

type BookingEventReadStore struct {
	queries BookingEventReadQueries
	db      sqlc.DBTX
}

func NewBookingEventReadStore(queries BookingEventReadQueries, db sqlc.DBTX) *BookingEventReadStore {
	return &BookingEventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingEventReadStore) FindFirstPage(ctx context.Context, businessID uuid.UUID, limit int32) ([]*queries.BookingEventView, error) {
	params := sqlc.ListBookingEventsFirstPageParams{
		BusinessID: businessID,
		Limit:      limit,
	}

	rows, err := r.queries.ListBookingEventsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking events first page", err)
	}
	return toBookingEventViews(rows), nil
}

func (r *BookingEventReadStore) FindKeyset(ctx context.Context, businessID uuid.UUID, lastOccurredAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingEventView, error) {
	params := sqlc.ListBookingEventsKeysetParams{
		BusinessID: businessID,
		OccurredAt: pgconv.TimeToPgtype(lastOccurredAt),
		ID:         lastID,
		LimitCount: limit,
	}

	rows, err := r.queries.ListBookingEventsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking events by keyset", err)
	}
	return toBookingEventViews(rows), nil
}

func toBookingEventViews(rows []sqlc.BookingEvents) []*queries.BookingEventView {
	views := make([]*queries.BookingEventView, len(rows))
	for i, row := range rows {
		views[i] = &queries.BookingEventView{
			ID:         row.ID,
			BusinessID: row.BusinessID,
			BookingID:  row.BookingID,
			CustomerID: row.CustomerID,
			Kind:       row.Kind,
			Payload:    row.Payload,
			OccurredAt: pgconv.TimeFromPgtype(row.OccurredAt),
		}
	}
	return views
}
