package readstore

import (
	"context"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityReadQueries interface {
	ListBlocksForDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlocksForDateParams) ([]sqlc.AvailabilityBlocks, error)
	ListScheduledBookingsForDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListScheduledBookingsForDateParams) ([]sqlc.Bookings, error)
}

// AvailabilityReadStore serves the inputs of the slot generator and the commit guard.
type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) BlocksForDate(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]*availability.Block, error) {
	params := sqlc.ListBlocksForDateParams{
		BusinessID: businessID,
		Date:       converter.DateToPgtype(date),
	}

	rows, err := r.queries.ListBlocksForDate(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability blocks", err)
	}
	return converter.BlocksFromRows(rows), nil
}

func (r *AvailabilityReadStore) ScheduledOccupants(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]availability.Occupant, error) {
	params := sqlc.ListScheduledBookingsForDateParams{
		BusinessID: businessID,
		Date:       converter.DateToPgtype(date),
	}

	rows, err := r.queries.ListScheduledBookingsForDate(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled bookings", err)
	}
	return converter.OccupantsFromRows(rows), nil
}

func (r *AvailabilityReadStore) ListBlocks(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]*queries.BlockView, error) {
	blocks, err := r.BlocksForDate(ctx, businessID, date)
	if err != nil {
		return nil, err
	}

	views := make([]*queries.BlockView, len(blocks))
	for i, b := range blocks {
		views[i] = queries.NewBlockView(b)
	}
	return views, nil
}
