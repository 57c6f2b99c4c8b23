package repository

import (
	"context"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	AcquireBookingLock(ctx context.Context, db sqlc.DBTX, lockKey string) error
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// BookingLockKey scopes the advisory lock to one business day. Bookings without staff count
// against every staff member, so a per-staff key would not serialize them.
func BookingLockKey(businessID uuid.UUID, date civil.Date) string {
	return "booking:" + businessID.String() + ":" + date.String()
}

// LockDay blocks until no other transaction holds the day's lock. Released on commit or rollback.
func (r *BookingRepository) LockDay(ctx context.Context, tx sqlc.DBTX, businessID uuid.UUID, date civil.Date) error {
	if err := r.queries.AcquireBookingLock(ctx, tx, BookingLockKey(businessID, date)); err != nil {
		return infra.WrapRepoErr("failed to acquire booking lock", err)
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// UpdateStatus only touches bookings that are still scheduled; anything else reports KindNotFound.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.UpdateBookingStatusParams{
		Status:     b.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:         b.ID(),
		BusinessID: b.BusinessID(),
	}

	affected, err := r.queries.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("scheduled booking not found", nil, infra.KindNotFound)
	}
	return nil
}
