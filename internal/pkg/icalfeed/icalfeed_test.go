//go:build unit

package icalfeed_test

import (
	"strings"
	"testing"
	"time"

	"appointment-engine/internal/pkg/icalfeed"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	stamp := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	out := icalfeed.Render(icalfeed.Feed{
		Name:     "Salon Bookings",
		Location: time.UTC,
		Entries: []icalfeed.Entry{
			{UID: "b1@appointment-engine", Start: start, End: start.Add(30 * time.Minute), Summary: "Booking 10:00", Status: "scheduled"},
			{UID: "b2@appointment-engine", Start: start.Add(time.Hour), End: start.Add(90 * time.Minute), Summary: "Booking 11:00", Status: "cancelled", Description: "walk-in"},
		},
	}, stamp)

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "b1@appointment-engine", events[0].Id())

	gotStart, err := events[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(gotStart))
	gotEnd, err := events[0].GetEndAt()
	require.NoError(t, err)
	assert.True(t, start.Add(30*time.Minute).Equal(gotEnd))

	assert.Equal(t, "CONFIRMED", events[0].GetProperty(ical.ComponentPropertyStatus).Value)
	assert.Equal(t, "CANCELLED", events[1].GetProperty(ical.ComponentPropertyStatus).Value)
	assert.Equal(t, "walk-in", events[1].GetProperty(ical.ComponentPropertyDescription).Value)
	assert.Contains(t, out, "X-WR-CALNAME:Salon Bookings")
}

func TestRender_Empty(t *testing.T) {
	out := icalfeed.Render(icalfeed.Feed{}, time.Now())

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
