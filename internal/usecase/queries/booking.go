package queries

import (
	"context"
	"fmt"
	"time"

	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/pkg/icalfeed"

	"github.com/google/uuid"
)

type BookingReader interface {
	FindByID(ctx context.Context, businessID, bookingID uuid.UUID) (*BookingView, error)
	ListForDate(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]*BookingView, error)
	ListInRange(ctx context.Context, businessID uuid.UUID, from, to civil.Date) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, principal *auth.Principal, businessID, bookingID uuid.UUID) (*BookingView, error)
	ListByDate(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, date civil.Date) ([]*BookingView, error)
	CalendarFeed(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, from, to civil.Date) (string, error)
}

type bookingQueriesImpl struct {
	bookings   BookingReader
	businesses BusinessReader
	clock      clock.Clock
	cfg        config.SchedulingConfig
}

func NewBookingQueries(bookings BookingReader, businesses BusinessReader, clk clock.Clock, cfg config.SchedulingConfig) BookingQueries {
	return &bookingQueriesImpl{
		bookings:   bookings,
		businesses: businesses,
		clock:      clk,
		cfg:        cfg,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, principal *auth.Principal, businessID, bookingID uuid.UUID) (*BookingView, error) {
	if err := authorize(principal, businessID, user.RoleStaff); err != nil {
		return nil, err
	}
	b, err := q.bookings.FindByID(ctx, businessID, bookingID)
	if err != nil {
		return nil, markReadErr(err)
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListByDate(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, date civil.Date) ([]*BookingView, error) {
	if err := authorize(principal, businessID, user.RoleStaff); err != nil {
		return nil, err
	}
	list, err := q.bookings.ListForDate(ctx, businessID, date)
	if err != nil {
		return nil, markReadErr(err)
	}
	return list, nil
}

// CalendarFeed renders the bookings of [from, to] as iCalendar, timed in the business's zone.
func (q *bookingQueriesImpl) CalendarFeed(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, from, to civil.Date) (string, error) {
	if err := authorize(principal, businessID, user.RoleStaff); err != nil {
		return "", err
	}
	if err := availability.ValidateRange(from, to, q.cfg.MaxMaterializeDays); err != nil {
		return "", errs.Mark(err, errs.ErrInvalidRange)
	}

	business, err := q.businesses.FindByID(ctx, businessID)
	if err != nil {
		return "", markReadErr(err)
	}
	list, err := q.bookings.ListInRange(ctx, businessID, from, to)
	if err != nil {
		return "", markReadErr(err)
	}

	loc := civil.LoadLocation(business.TimeZone)
	feed := icalfeed.Feed{Name: business.Name, Location: loc}
	for _, b := range list {
		entry, cerr := calendarEntry(b, loc)
		if cerr != nil {
			return "", errs.Mark(cerr, errs.ErrDatabaseOperationFailed)
		}
		feed.Entries = append(feed.Entries, entry)
	}
	return icalfeed.Render(feed, q.clock.Now()), nil
}

func calendarEntry(b *BookingView, loc *time.Location) (icalfeed.Entry, error) {
	date, err := civil.ParseDate(b.Date)
	if err != nil {
		return icalfeed.Entry{}, err
	}
	start, err := civil.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return icalfeed.Entry{}, err
	}
	end, err := civil.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return icalfeed.Entry{}, err
	}

	return icalfeed.Entry{
		UID:         b.ID.String(),
		Start:       start.On(date, loc),
		End:         end.On(date, loc),
		Summary:     fmt.Sprintf("Booking %s-%s", b.StartTime, b.EndTime),
		Description: b.Note,
		Status:      b.Status,
		UpdatedAt:   b.UpdatedAt,
	}, nil
}
