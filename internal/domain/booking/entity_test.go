//go:build unit

package booking_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusScheduled, actual.Status())
		assert.Equal(t, "10:00", actual.Start().String())
		assert.Equal(t, "10:30", actual.Window().End().String())
		assert.Equal(t, 30, actual.DurationMinutes())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.True(t, actual.IsScheduled())
	})

	runCases(t, []testCase{
		{name: "zero duration", mutate: func(b *builder.BookingBuilder) { b.DurationMinutes = 0 }, errIs: booking.ErrInvalidDuration},
		{name: "negative duration", mutate: func(b *builder.BookingBuilder) { b.DurationMinutes = -15 }, errIs: booking.ErrInvalidDuration},
		{name: "crosses midnight", mutate: func(b *builder.BookingBuilder) { b.Time = "23:45" }, errIs: booking.ErrInvalidWindow},
		{name: "ends at midnight", mutate: func(b *builder.BookingBuilder) { b.Time = "23:30" }},
		{name: "unknown source", mutate: func(b *builder.BookingBuilder) { b.Source = "kiosk" }, errIs: booking.ErrInvalidSource},
		{name: "note at limit", mutate: func(b *builder.BookingBuilder) { b.Note = strings.Repeat("a", booking.MaxNoteLength) }},
		{name: "note too long", mutate: func(b *builder.BookingBuilder) { b.Note = strings.Repeat("a", booking.MaxNoteLength+1) }, errIs: booking.ErrNoteTooLong},
		{
			name: "staff may back-date",
			mutate: func(b *builder.BookingBuilder) {
				b.Date = civil.DateOf(b.Now).AddDays(-1)
			},
		},
		{
			name: "public booking in the past",
			mutate: func(b *builder.BookingBuilder) {
				b.Source = booking.SourcePublic
				b.Date = civil.DateOf(b.Now).AddDays(-1)
			},
			errIs: booking.ErrStartInPast,
		},
		{
			name: "public booking later today",
			mutate: func(b *builder.BookingBuilder) {
				b.Source = booking.SourcePublic
				b.Date = civil.DateOf(b.Now)
				b.Time = "09:00"
			},
		},
		{
			name: "public booking judged in the business time zone",
			mutate: func(b *builder.BookingBuilder) {
				// 09:00 in Tokyo is 00:00 UTC, before the 08:00 UTC clock
				b.Source = booking.SourcePublic
				b.Date = civil.DateOf(b.Now)
				b.Time = "09:00"
				b.Location = time.FixedZone("JST", 9*60*60)
			},
			errIs: booking.ErrStartInPast,
		},
	})
}

func TestBooking_AssignStaff(t *testing.T) {
	t.Run("unassigned booking takes the staff member", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		staffID := uuid.New()

		assert.True(t, b.AssignStaff(staffID))
		require.NotNil(t, b.StaffID())
		assert.Equal(t, staffID, *b.StaffID())
	})

	t.Run("existing assignment is kept", func(t *testing.T) {
		original := uuid.New()
		b, err := builder.NewBookingBuilder().WithStaff(original).BuildDomain()
		require.NoError(t, err)

		assert.False(t, b.AssignStaff(uuid.New()))
		assert.Equal(t, original, *b.StaffID())
	})

	t.Run("nil id is ignored", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.False(t, b.AssignStaff(uuid.Nil))
		assert.Nil(t, b.StaffID())
	})
}

func TestBooking_TransitionTo(t *testing.T) {
	now := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)

	t.Run("scheduled to terminal statuses", func(t *testing.T) {
		cases := map[booking.Status]booking.EventKind{
			booking.StatusCompleted: booking.EventCompleted,
			booking.StatusCancelled: booking.EventCancelled,
			booking.StatusNoShow:    booking.EventNoShow,
		}
		for status, kind := range cases {
			t.Run(status.String(), func(t *testing.T) {
				b := builder.NewBookingBuilder().BuildStored(booking.StatusScheduled)

				ev, err := b.TransitionTo(status, now)
				require.NoError(t, err)

				assert.Equal(t, status, b.Status())
				assert.Equal(t, now, b.UpdatedAt())
				assert.Equal(t, kind, ev.Kind())
				assert.Equal(t, booking.StatusScheduled, ev.From)
				assert.Equal(t, status, ev.To)
				assert.Equal(t, b.ID(), ev.BookingID)
				assert.Equal(t, b.CustomerID(), ev.CustomerID)
				assert.Equal(t, now, ev.OccurredAt)
			})
		}
	})

	t.Run("terminal statuses are final", func(t *testing.T) {
		for _, from := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled, booking.StatusNoShow} {
			b := builder.NewBookingBuilder().BuildStored(from)

			_, err := b.TransitionTo(booking.StatusCancelled, now)
			assert.ErrorIs(t, err, booking.ErrInvalidTransition, "from %s", from)
			assert.Equal(t, from, b.Status())
		}
	})

	t.Run("back to scheduled is not a transition", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusScheduled)

		_, err := b.TransitionTo(booking.StatusScheduled, now)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusScheduled)

		_, err := b.TransitionTo("rescheduled", now)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestStatusChanged_Payload(t *testing.T) {
	staffID := uuid.New()
	b := builder.NewBookingBuilder().WithStaff(staffID).BuildStored(booking.StatusScheduled)
	ev, err := b.TransitionTo(booking.StatusCompleted, time.Now())
	require.NoError(t, err)

	raw, err := ev.Payload()
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, b.BusinessID().String(), payload["business_id"])
	assert.Equal(t, b.CustomerID().String(), payload["customer_id"])
	assert.Equal(t, staffID.String(), payload["staff_id"])
	assert.Equal(t, "2025-06-02", payload["date"])
	assert.Equal(t, "10:00", payload["time"])
	assert.Equal(t, "scheduled", payload["from"])
	assert.Equal(t, "completed", payload["to"])
}

func TestNewStatus(t *testing.T) {
	s, err := booking.NewStatus("no_show")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusNoShow, s)
	assert.True(t, s.IsTerminal())
	assert.False(t, booking.StatusScheduled.IsTerminal())

	_, err = booking.NewStatus("done")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
