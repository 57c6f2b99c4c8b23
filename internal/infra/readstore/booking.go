package readstore

import (
	"context"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingByIDParams) (sqlc.Bookings, error)
	ListBookingsForDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForDateParams) ([]sqlc.Bookings, error)
	ListBookingsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsInRangeParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindAggregate loads the booking as a domain object for status transitions.
func (r *BookingReadStore) FindAggregate(ctx context.Context, businessID, bookingID uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, sqlc.GetBookingByIDParams{ID: bookingID, BusinessID: businessID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, businessID, bookingID uuid.UUID) (*queries.BookingView, error) {
	b, err := r.FindAggregate(ctx, businessID, bookingID)
	if err != nil {
		return nil, err
	}
	return queries.NewBookingView(b), nil
}

func (r *BookingReadStore) ListForDate(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingsForDateParams{
		BusinessID: businessID,
		Date:       converter.DateToPgtype(date),
	}

	rows, err := r.queries.ListBookingsForDate(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for date", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) ListInRange(ctx context.Context, businessID uuid.UUID, from, to civil.Date) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingsInRangeParams{
		BusinessID: businessID,
		FromDate:   converter.DateToPgtype(from),
		ToDate:     converter.DateToPgtype(to),
	}

	rows, err := r.queries.ListBookingsInRange(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings in range", err)
	}
	return toBookingViews(rows), nil
}

func toBookingViews(rows []sqlc.Bookings) []*queries.BookingView {
	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = queries.NewBookingView(converter.BookingFromRow(row))
	}
	return views
}
