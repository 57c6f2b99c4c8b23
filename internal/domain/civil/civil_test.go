//go:build unit

package civil_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"appointment-engine/internal/domain/civil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{in: "00:00", minutes: 0},
		{in: "09:15", minutes: 555},
		{in: "23:59", minutes: 1439},
		{in: "24:00", minutes: 1440},
		{in: "24:01", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "9:00", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := civil.ParseTimeOfDay(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, civil.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.minutes, got.Minutes())
			assert.Equal(t, tc.in, got.String())
		})
	}
}

func TestTimeOfDayFromDuration(t *testing.T) {
	got, err := civil.TimeOfDayFromDuration(10*time.Hour + 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "10:30", got.String())

	_, err = civil.TimeOfDayFromDuration(10*time.Hour + 30*time.Second)
	assert.ErrorIs(t, err, civil.ErrInvalidTimeOfDay)

	_, err = civil.TimeOfDayFromDuration(25 * time.Hour)
	assert.ErrorIs(t, err, civil.ErrInvalidTimeOfDay)
}

func TestWindow(t *testing.T) {
	w := func(start, end string) civil.Window {
		win, err := civil.NewWindow(civil.MustTimeOfDay(start), civil.MustTimeOfDay(end))
		require.NoError(t, err)
		return win
	}

	t.Run("end must follow start", func(t *testing.T) {
		_, err := civil.NewWindow(civil.MustTimeOfDay("10:00"), civil.MustTimeOfDay("10:00"))
		assert.ErrorIs(t, err, civil.ErrInvalidWindow)
		_, err = civil.NewWindow(civil.MustTimeOfDay("11:00"), civil.MustTimeOfDay("10:00"))
		assert.ErrorIs(t, err, civil.ErrInvalidWindow)
	})

	t.Run("window for duration", func(t *testing.T) {
		got, err := civil.WindowFor(civil.MustTimeOfDay("09:45"), 30)
		require.NoError(t, err)
		assert.Equal(t, "10:15", got.End().String())
		assert.Equal(t, 30, got.Minutes())

		_, err = civil.WindowFor(civil.MustTimeOfDay("09:45"), 0)
		assert.ErrorIs(t, err, civil.ErrInvalidWindow)

		_, err = civil.WindowFor(civil.MustTimeOfDay("23:45"), 30)
		assert.Error(t, err, "windows may not cross midnight")
	})

	t.Run("half-open overlap", func(t *testing.T) {
		booked := w("10:00", "10:30")
		assert.True(t, w("09:45", "10:15").Overlaps(booked))
		assert.True(t, w("10:15", "10:45").Overlaps(booked))
		assert.True(t, w("10:00", "10:30").Overlaps(booked))
		assert.False(t, w("09:30", "10:00").Overlaps(booked), "touching at the start")
		assert.False(t, w("10:30", "11:00").Overlaps(booked), "touching at the end")
	})

	t.Run("containment", func(t *testing.T) {
		block := w("09:00", "17:00")
		assert.True(t, block.Contains(w("16:30", "17:00")))
		assert.True(t, block.Contains(w("09:00", "17:00")))
		assert.False(t, block.Contains(w("16:45", "17:15")))
		assert.False(t, block.Contains(w("08:45", "09:15")))
	})
}

func TestDate(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		d, err := civil.ParseDate("2025-06-02")
		require.NoError(t, err)
		assert.Equal(t, civil.NewDate(2025, time.June, 2), d)
		assert.Equal(t, "2025-06-02", d.String())
		assert.Equal(t, time.Monday, d.Weekday())

		_, err = civil.ParseDate("2025-02-30")
		assert.ErrorIs(t, err, civil.ErrInvalidDate)
		_, err = civil.ParseDate("06/02/2025")
		assert.ErrorIs(t, err, civil.ErrInvalidDate)
	})

	t.Run("arithmetic", func(t *testing.T) {
		d := civil.NewDate(2024, time.February, 28)
		assert.Equal(t, civil.NewDate(2024, time.February, 29), d.AddDays(1))
		assert.Equal(t, civil.NewDate(2024, time.March, 1), d.AddDays(2))
		assert.Equal(t, 2, civil.DaysBetween(d, d.AddDays(2)))
		assert.True(t, d.Before(d.AddDays(1)))
		assert.True(t, d.AddDays(1).After(d))
		assert.False(t, d.Before(d))
	})

	t.Run("zero value", func(t *testing.T) {
		assert.True(t, civil.Date{}.IsZero())
		assert.False(t, civil.NewDate(2025, time.January, 1).IsZero())
	})

	t.Run("text round trip", func(t *testing.T) {
		var d civil.Date
		require.NoError(t, d.UnmarshalText([]byte("2025-12-31")))
		b, err := d.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "2025-12-31", string(b))
		assert.Error(t, d.UnmarshalText([]byte("not-a-date")))
	})
}

func TestTimeOfDayOn(t *testing.T) {
	tokyo := civil.LoadLocation("Asia/Tokyo")
	at := civil.MustTimeOfDay("09:30").On(civil.NewDate(2025, time.June, 2), tokyo)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 30, 0, 0, time.UTC), at.UTC())
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.UTC, civil.LoadLocation(""))
	assert.Equal(t, time.UTC, civil.LoadLocation("Mars/Olympus_Mons"))
	assert.Equal(t, "Europe/Berlin", civil.LoadLocation("Europe/Berlin").String())
}
