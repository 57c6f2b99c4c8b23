//go:build unit || e2e

package builder

import (
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/civil"
	reqdto "appointment-engine/internal/handler/dto/request"
	"appointment-engine/internal/infra/repository/converter"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	BusinessID      uuid.UUID
	StaffID         *uuid.UUID
	CustomerID      uuid.UUID
	ServiceID       uuid.UUID
	Date            civil.Date
	Time            string
	DurationMinutes int
	Source          booking.Source
	Note            string
	Location        *time.Location
	Now             time.Time
}

// NewBookingBuilder starts from a 30 minute staff booking at 10:00 on Monday 2025-06-02.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BusinessID:      uuid.New(),
		CustomerID:      uuid.New(),
		ServiceID:       uuid.New(),
		Date:            civil.NewDate(2025, time.June, 2),
		Time:            "10:00",
		DurationMinutes: 30,
		Source:          booking.SourceStaff,
		Now:             time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithBusiness(id uuid.UUID) *BookingBuilder {
	b.BusinessID = id
	return b
}

func (b *BookingBuilder) WithStaff(id uuid.UUID) *BookingBuilder {
	b.StaffID = &id
	return b
}

func (b *BookingBuilder) WithSlot(date civil.Date, at string, minutes int) *BookingBuilder {
	b.Date, b.Time, b.DurationMinutes = date, at, minutes
	return b
}

func (b *BookingBuilder) WithSource(source booking.Source) *BookingBuilder {
	b.Source = source
	return b
}

func (b *BookingBuilder) Params() booking.Params {
	return booking.Params{
		BusinessID:      b.BusinessID,
		StaffID:         b.StaffID,
		CustomerID:      b.CustomerID,
		ServiceID:       b.ServiceID,
		Date:            b.Date,
		Start:           civil.MustTimeOfDay(b.Time),
		DurationMinutes: b.DurationMinutes,
		Source:          b.Source,
		Note:            b.Note,
		Location:        b.Location,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(&booking.Services{Clock: clock.NewFixed(b.Now)}, b.Params())
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	entity, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return entity
}

// BuildStored reconstructs a persisted booking in status.
func (b *BookingBuilder) BuildStored(status booking.Status) *booking.Booking {
	return booking.ReconstructBooking(
		uuid.New(), b.BusinessID, b.StaffID, b.CustomerID, b.ServiceID,
		b.Date, civil.MustTimeOfDay(b.Time), b.DurationMinutes,
		status, b.Source, b.Note, b.Now, b.Now,
	)
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		StaffID:         b.StaffID,
		CustomerID:      b.CustomerID,
		ServiceID:       b.ServiceID,
		Date:            b.Date,
		Start:           civil.MustTimeOfDay(b.Time),
		DurationMinutes: b.DurationMinutes,
		Note:            b.Note,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		StaffID:         b.StaffID,
		CustomerID:      b.CustomerID,
		ServiceID:       b.ServiceID,
		Date:            b.Date.String(),
		Time:            b.Time,
		DurationMinutes: b.DurationMinutes,
		Note:            b.Note,
	}
}

func (b *BookingBuilder) BuildInfra(status booking.Status) sqlc.Bookings {
	return sqlc.Bookings{
		ID:              uuid.New(),
		BusinessID:      b.BusinessID,
		StaffID:         pgconv.UUIDPtrToPgtype(b.StaffID),
		CustomerID:      b.CustomerID,
		ServiceID:       b.ServiceID,
		Date:            converter.DateToPgtype(b.Date),
		StartTime:       converter.TimeOfDayToPgtype(civil.MustTimeOfDay(b.Time)),
		DurationMinutes: int32(b.DurationMinutes),
		Status:          status.String(),
		Source:          b.Source.String(),
		Note:            pgconv.EmptyStringToPgtype(b.Note),
		CreatedAt:       pgconv.TimeToPgtype(b.Now),
		UpdatedAt:       pgconv.TimeToPgtype(b.Now),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildStored(booking.StatusScheduled))
}
