package converter

import (
	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/booking"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		BusinessID:      b.BusinessID(),
		StaffID:         pgconv.UUIDPtrToPgtype(b.StaffID()),
		CustomerID:      b.CustomerID(),
		ServiceID:       b.ServiceID(),
		Date:            DateToPgtype(b.Date()),
		StartTime:       TimeOfDayToPgtype(b.Start()),
		DurationMinutes: int32(b.DurationMinutes()),
		Status:          b.Status().String(),
		Source:          b.Source().String(),
		Note:            pgconv.EmptyStringToPgtype(b.Note()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return booking.ReconstructBooking(
		row.ID,
		row.BusinessID,
		pgconv.UUIDPtrFromPgtype(row.StaffID),
		row.CustomerID,
		row.ServiceID,
		DateFromPgtype(row.Date),
		TimeOfDayFromPgtype(row.StartTime),
		int(row.DurationMinutes),
		booking.Status(row.Status),
		booking.Source(row.Source),
		pgconv.StringFromPgtype(row.Note),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BookingsFromRows(rows []sqlc.Bookings) []*booking.Booking {
	bookings := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = BookingFromRow(row)
	}
	return bookings
}

// OccupantsFromRows keeps only what the capacity check needs.
func OccupantsFromRows(rows []sqlc.Bookings) []availability.Occupant {
	occupants := make([]availability.Occupant, 0, len(rows))
	for _, row := range rows {
		b := BookingFromRow(row)
		occupants = append(occupants, availability.Occupant{StaffID: b.StaffID(), Window: b.Window()})
	}
	return occupants
}
