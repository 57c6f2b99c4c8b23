package booking

import (
	"errors"
	"time"

	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrInvalidWindow     = errors.New("booking must start and end on the same day")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidSource     = errors.New("invalid booking source")
	ErrStartInPast       = errors.New("booking start is in the past")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNoteTooLong       = errors.New("note is too long")
)

const MaxNoteLength = 1000

type Services struct {
	Clock clock.Clock
}

type Params struct {
	BusinessID      uuid.UUID
	StaffID         *uuid.UUID
	CustomerID      uuid.UUID
	ServiceID       uuid.UUID
	Date            civil.Date
	Start           civil.TimeOfDay
	DurationMinutes int
	Source          Source
	Note            string
	// Location is the business time zone; nil means UTC.
	Location *time.Location
}

type Booking struct {
	id         uuid.UUID
	businessID uuid.UUID
	staffID    *uuid.UUID
	customerID uuid.UUID
	serviceID  uuid.UUID
	date       civil.Date
	window     civil.Window
	status     Status
	source     Source
	note       string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(services *Services, p Params) (*Booking, error) {
	if p.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	window, err := civil.WindowFor(p.Start, p.DurationMinutes)
	if err != nil {
		return nil, ErrInvalidWindow
	}
	if !p.Source.IsValid() {
		return nil, ErrInvalidSource
	}
	if len(p.Note) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	now := services.Clock.Now()
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	// staff may back-date entries; the public funnel may not
	if p.Source == SourcePublic && p.Start.On(p.Date, loc).Before(now) {
		return nil, ErrStartInPast
	}

	return &Booking{
		id:         uuid.New(),
		businessID: p.BusinessID,
		staffID:    p.StaffID,
		customerID: p.CustomerID,
		serviceID:  p.ServiceID,
		date:       p.Date,
		window:     window,
		status:     StatusScheduled,
		source:     p.Source,
		note:       p.Note,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, businessID uuid.UUID,
	staffID *uuid.UUID,
	customerID, serviceID uuid.UUID,
	date civil.Date,
	start civil.TimeOfDay,
	durationMinutes int,
	status Status,
	source Source,
	note string,
	createdAt, updatedAt time.Time,
) *Booking {
	window, _ := civil.WindowFor(start, durationMinutes)
	return &Booking{
		id:         id,
		businessID: businessID,
		staffID:    staffID,
		customerID: customerID,
		serviceID:  serviceID,
		date:       date,
		window:     window,
		status:     status,
		source:     source,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo moves a scheduled booking into a terminal status and returns the event to publish.
func (b *Booking) TransitionTo(next Status, now time.Time) (StatusChanged, error) {
	if !next.IsValid() {
		return StatusChanged{}, ErrInvalidStatus
	}
	if b.status != StatusScheduled || !next.IsTerminal() {
		return StatusChanged{}, ErrInvalidTransition
	}

	event := StatusChanged{
		BookingID:  b.id,
		BusinessID: b.businessID,
		CustomerID: b.customerID,
		StaffID:    b.staffID,
		ServiceID:  b.serviceID,
		Date:       b.date,
		Start:      b.window.Start(),
		From:       b.status,
		To:         next,
		OccurredAt: now,
	}
	b.status = next
	b.updatedAt = now
	return event, nil
}

// AssignStaff fills in the staff member of an unassigned booking. An existing assignment is kept.
func (b *Booking) AssignStaff(staffID uuid.UUID) bool {
	if b.staffID != nil || staffID == uuid.Nil {
		return false
	}
	b.staffID = &staffID
	return true
}

func (b *Booking) IsScheduled() bool {
	return b.status == StatusScheduled
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) BusinessID() uuid.UUID  { return b.businessID }
func (b *Booking) StaffID() *uuid.UUID    { return b.staffID }
func (b *Booking) CustomerID() uuid.UUID  { return b.customerID }
func (b *Booking) ServiceID() uuid.UUID   { return b.serviceID }
func (b *Booking) Date() civil.Date       { return b.date }
func (b *Booking) Window() civil.Window   { return b.window }
func (b *Booking) Start() civil.TimeOfDay { return b.window.Start() }
func (b *Booking) DurationMinutes() int   { return b.window.Minutes() }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Source() Source         { return b.source }
func (b *Booking) Note() string           { return b.note }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
