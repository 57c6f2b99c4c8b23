package queries

import (
	"encoding/json"
	"time"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/schedule"

	"github.com/google/uuid"
)

// BusinessView represents read-optimized business data
type BusinessView struct {
	ID          uuid.UUID `json:"id"`
	OwnerUserID uuid.UUID `json:"owner_user_id"`
	Name        string    `json:"name"`
	TimeZone    string    `json:"time_zone"`
}

type StaffView struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
}

// RuleView represents a weekly schedule rule
type RuleView struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	StaffID    uuid.UUID `json:"staff_id"`
	Weekday    int       `json:"weekday"`
	WorkStart  string    `json:"work_start"`
	WorkEnd    string    `json:"work_end"`
	BreakStart *string   `json:"break_start,omitempty"`
	BreakEnd   *string   `json:"break_end,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewRuleView(r *schedule.Rule) *RuleView {
	v := &RuleView{
		ID:         r.ID(),
		BusinessID: r.BusinessID(),
		StaffID:    r.StaffID(),
		Weekday:    int(r.Weekday()),
		WorkStart:  r.Work().Start().String(),
		WorkEnd:    r.Work().End().String(),
		IsActive:   r.IsActive(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
	if brk := r.Break(); brk != nil {
		start, end := brk.Start().String(), brk.End().String()
		v.BreakStart = &start
		v.BreakEnd = &end
	}
	return v
}

// BlockView represents a dated availability block
type BlockView struct {
	ID         uuid.UUID  `json:"id"`
	BusinessID uuid.UUID  `json:"business_id"`
	StaffID    *uuid.UUID `json:"staff_id,omitempty"`
	Date       string     `json:"date"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	Capacity   int        `json:"capacity"`
	Source     string     `json:"source"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewBlockView(b *availability.Block) *BlockView {
	return &BlockView{
		ID:         b.ID(),
		BusinessID: b.BusinessID(),
		StaffID:    b.StaffID(),
		Date:       b.Date().String(),
		StartTime:  b.Start().String(),
		EndTime:    b.End().String(),
		Capacity:   b.Capacity(),
		Source:     b.Source().String(),
		CreatedAt:  b.CreatedAt(),
	}
}

// BookingView represents read-optimized booking data
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	BusinessID      uuid.UUID  `json:"business_id"`
	StaffID         *uuid.UUID `json:"staff_id,omitempty"`
	CustomerID      uuid.UUID  `json:"customer_id"`
	ServiceID       uuid.UUID  `json:"service_id"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	Source          string     `json:"source"`
	Note            string     `json:"note,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:              b.ID(),
		BusinessID:      b.BusinessID(),
		StaffID:         b.StaffID(),
		CustomerID:      b.CustomerID(),
		ServiceID:       b.ServiceID(),
		Date:            b.Date().String(),
		StartTime:       b.Start().String(),
		EndTime:         b.Window().End().String(),
		DurationMinutes: b.DurationMinutes(),
		Status:          b.Status().String(),
		Source:          b.Source().String(),
		Note:            b.Note(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

// BookingEventView represents one outbox entry
type BookingEventView struct {
	ID         uuid.UUID       `json:"id"`
	BusinessID uuid.UUID       `json:"business_id"`
	BookingID  uuid.UUID       `json:"booking_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Kind       string          `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}
