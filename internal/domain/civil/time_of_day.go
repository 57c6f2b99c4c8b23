package civil

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	TimeLayout    = "15:04"
	MinutesPerDay = 24 * 60
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidWindow    = errors.New("window end must be after start")
)

// TimeOfDay is a wall-clock time as minutes since midnight. 24:00 is valid as an end bound.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	t := TimeOfDay(hour*60 + minute)
	if !t.IsValid() {
		return 0, ErrInvalidTimeOfDay
	}
	return t, nil
}

func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay accepts "15:04" and the "24:00" end-of-day bound.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	h, herr := strconv.Atoi(s[0:2])
	m, merr := strconv.Atoi(s[3:5])
	if herr != nil || merr != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	t, err := NewTimeOfDay(h, m)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return t, nil
}

func TimeOfDayFromDuration(d time.Duration) (TimeOfDay, error) {
	if d%time.Minute != 0 {
		return 0, ErrInvalidTimeOfDay
	}
	t := TimeOfDay(d / time.Minute)
	if !t.IsValid() {
		return 0, ErrInvalidTimeOfDay
	}
	return t, nil
}

func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t <= MinutesPerDay
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t) * time.Minute
}

func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	return t + TimeOfDay(n)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// On returns the instant of t on date d in loc.
func (t TimeOfDay) On(d Date, loc *time.Location) time.Time {
	return d.In(loc).Add(t.Duration())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Window is the half-open interval [start, end) within one day.
type Window struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewWindow(start, end TimeOfDay) (Window, error) {
	if !start.IsValid() || !end.IsValid() {
		return Window{}, ErrInvalidTimeOfDay
	}
	if end <= start {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

// WindowFor builds [start, start+minutes).
func WindowFor(start TimeOfDay, minutes int) (Window, error) {
	if minutes <= 0 {
		return Window{}, ErrInvalidWindow
	}
	return NewWindow(start, start.AddMinutes(minutes))
}

func (w Window) Start() TimeOfDay { return w.start }
func (w Window) End() TimeOfDay   { return w.end }
func (w Window) Minutes() int     { return int(w.end - w.start) }

// Overlaps reports whether the half-open windows share any minute; touching ends do not overlap.
func (w Window) Overlaps(o Window) bool {
	return w.start < o.end && w.end > o.start
}

func (w Window) Contains(o Window) bool {
	return o.start >= w.start && o.end <= w.end
}

func (w Window) String() string {
	return "[" + w.start.String() + "," + w.end.String() + ")"
}
