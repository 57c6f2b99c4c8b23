package icalfeed

import (
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

const productID = "-//appointment-engine//bookings//EN"

type Entry struct {
	UID         string
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Status      string
	UpdatedAt   time.Time
}

type Feed struct {
	Name     string
	Location *time.Location
	Entries  []Entry
}

// Render serializes the feed as an RFC 5545 calendar with one VEVENT per entry.
func Render(feed Feed, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if feed.Name != "" {
		cal.SetXWRCalName(feed.Name)
	}
	if feed.Location != nil {
		cal.SetXWRTimezone(feed.Location.String())
	}

	for _, e := range feed.Entries {
		event := cal.AddEvent(e.UID)
		event.SetDtStampTime(stamp.UTC())
		event.SetStartAt(e.Start.UTC())
		event.SetEndAt(e.End.UTC())
		if !e.UpdatedAt.IsZero() {
			event.SetModifiedAt(e.UpdatedAt.UTC())
		}
		event.SetSummary(e.Summary)
		if e.Description != "" {
			event.SetDescription(e.Description)
		}
		event.SetStatus(objectStatus(e.Status))
	}

	return cal.Serialize()
}

func objectStatus(s string) ical.ObjectStatus {
	switch strings.ToLower(s) {
	case "cancelled", "no_show":
		return ical.ObjectStatusCancelled
	case "completed", "scheduled":
		return ical.ObjectStatusConfirmed
	default:
		return ical.ObjectStatusTentative
	}
}
