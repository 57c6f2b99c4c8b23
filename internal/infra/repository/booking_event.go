package repository

import (
	"context"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/infra"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingEventWriteQueries interface {
	CreateBookingEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingEventParams) error
}

type BookingEventRepository struct {
	queries BookingEventWriteQueries
	db      sqlc.DBTX
}

func NewBookingEventRepository(queries BookingEventWriteQueries, db sqlc.DBTX) *BookingEventRepository {
	return &BookingEventRepository{
		queries: queries,
		db:      db,
	}
}

// Append writes the event to the outbox inside tx.
func (r *BookingEventRepository) Append(ctx context.Context, tx sqlc.DBTX, event booking.StatusChanged) error {
	payload, err := event.Payload()
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking event payload", err)
	}

	params := sqlc.CreateBookingEventParams{
		ID:         uuid.New(),
		BusinessID: event.BusinessID,
		BookingID:  event.BookingID,
		CustomerID: event.CustomerID,
		Kind:       event.Kind().String(),
		Payload:    payload,
		OccurredAt: pgconv.TimeToPgtype(event.OccurredAt),
	}

	if err := r.queries.CreateBookingEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create booking event", err)
	}
	return nil
}
