//go:build unit

package queries_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/queries"
	"appointment-engine/tests/common/builder"
	queriesmock "appointment-engine/tests/mock/queries"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	_ "time/tzdata"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	bookingID := uuid.New()

	testCases := []struct {
		name        string
		readerErr   error
		expectedErr error
	}{
		{name: "success: booking returned"},
		{name: "error: booking not found", readerErr: infra.WrapRepoErr("booking not found", nil, infra.KindNotFound), expectedErr: errs.ErrNotFound},
		{name: "error: database failure", readerErr: infra.WrapRepoErr("failed", errors.New("connection reset")), expectedErr: errs.ErrDatabaseOperationFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := queriesmock.NewMockBookingReader(ctrl)
			var view *queries.BookingView
			if tc.readerErr == nil {
				view = builder.NewBookingBuilder().WithBusiness(businessID).BuildView()
			}
			reader.EXPECT().FindByID(gomock.Any(), businessID, bookingID).Return(view, tc.readerErr)

			q := queries.NewBookingQueries(reader, queriesmock.NewMockBusinessReader(ctrl), clock.NewFixed(time.Now()), testSchedulingConfig())
			principal := builder.NewPrincipalBuilder().WithBusiness(businessID).WithRole(user.RoleStaff).Build()

			got, err := q.GetByID(ctx, principal, businessID, bookingID)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestBookingQueries_ListByDate(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	date := civil.NewDate(2025, time.June, 2)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := queriesmock.NewMockBookingReader(ctrl)
	views := []*queries.BookingView{builder.NewBookingBuilder().WithBusiness(businessID).BuildView()}
	reader.EXPECT().ListForDate(gomock.Any(), businessID, date).Return(views, nil)

	q := queries.NewBookingQueries(reader, queriesmock.NewMockBusinessReader(ctrl), clock.NewFixed(time.Now()), testSchedulingConfig())

	got, err := q.ListByDate(ctx, builder.NewPrincipalBuilder().WithBusiness(businessID).Build(), businessID, date)

	require.NoError(t, err)
	assert.Equal(t, views, got)

	_, err = q.ListByDate(ctx, builder.NewPrincipalBuilder().Build(), businessID, date)
	assert.True(t, errs.Is(err, errs.ErrUnauthorized))
}

func TestBookingQueries_CalendarFeed(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	from := civil.NewDate(2025, time.June, 1)
	to := civil.NewDate(2025, time.June, 30)
	stamp := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	principal := builder.NewPrincipalBuilder().WithBusiness(businessID).WithRole(user.RoleStaff).Build()

	t.Run("success: bookings rendered in the business zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := queriesmock.NewMockBookingReader(ctrl)
		businesses := queriesmock.NewMockBusinessReader(ctrl)

		scheduled := queries.NewBookingView(builder.NewBookingBuilder().WithBusiness(businessID).BuildStored(booking.StatusScheduled))
		cancelled := queries.NewBookingView(builder.NewBookingBuilder().WithBusiness(businessID).WithSlot(civil.NewDate(2025, time.June, 3), "14:00", 60).BuildStored(booking.StatusCancelled))

		businesses.EXPECT().FindByID(gomock.Any(), businessID).Return(&queries.BusinessView{ID: businessID, Name: "Salon", TimeZone: "Asia/Tokyo"}, nil)
		reader.EXPECT().ListInRange(gomock.Any(), businessID, from, to).Return([]*queries.BookingView{scheduled, cancelled}, nil)

		q := queries.NewBookingQueries(reader, businesses, clock.NewFixed(stamp), testSchedulingConfig())

		out, err := q.CalendarFeed(ctx, principal, businessID, from, to)
		require.NoError(t, err)

		cal, err := ical.ParseCalendar(strings.NewReader(out))
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 2)

		assert.Equal(t, scheduled.ID.String(), events[0].Id())
		start, err := events[0].GetStartAt()
		require.NoError(t, err)
		// 10:00 in Tokyo
		assert.True(t, start.Equal(time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC)), "got %v", start)
		assert.Equal(t, "CONFIRMED", events[0].GetProperty(ical.ComponentPropertyStatus).Value)
		assert.Equal(t, "CANCELLED", events[1].GetProperty(ical.ComponentPropertyStatus).Value)
	})

	t.Run("error: range ends before it starts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := queries.NewBookingQueries(queriesmock.NewMockBookingReader(ctrl), queriesmock.NewMockBusinessReader(ctrl), clock.NewFixed(stamp), testSchedulingConfig())

		_, err := q.CalendarFeed(ctx, principal, businessID, to, from)

		assert.True(t, errs.Is(err, errs.ErrInvalidRange))
	})

	t.Run("error: unknown business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		businesses := queriesmock.NewMockBusinessReader(ctrl)
		businesses.EXPECT().FindByID(gomock.Any(), businessID).Return(nil, infra.WrapRepoErr("business not found", nil, infra.KindNotFound))
		q := queries.NewBookingQueries(queriesmock.NewMockBookingReader(ctrl), businesses, clock.NewFixed(stamp), testSchedulingConfig())

		_, err := q.CalendarFeed(ctx, principal, businessID, from, to)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
