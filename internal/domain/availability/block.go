package availability

import (
	"errors"
	"time"

	"appointment-engine/internal/domain/civil"

	"github.com/google/uuid"
)

var (
	ErrInvalidBlockWindow = errors.New("block end must be after block start")
	ErrInvalidCapacity    = errors.New("capacity must be at least 1")
	ErrInvalidSource      = errors.New("invalid block source")
)

type Source string

const (
	SourceMaterialized Source = "materialized"
	SourceManual       Source = "manual"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceMaterialized, SourceManual:
		return true
	default:
		return false
	}
}

// Block is a dated window during which bookings may be made. A nil staff means any staff member.
type Block struct {
	id         uuid.UUID
	businessID uuid.UUID
	staffID    *uuid.UUID
	date       civil.Date
	window     civil.Window
	capacity   int
	source     Source
	createdAt  time.Time
}

type BlockParams struct {
	BusinessID uuid.UUID
	StaffID    *uuid.UUID
	Date       civil.Date
	Start      civil.TimeOfDay
	End        civil.TimeOfDay
	Capacity   int
	Source     Source
}

func NewBlock(p BlockParams, now time.Time) (*Block, error) {
	window, err := civil.NewWindow(p.Start, p.End)
	if err != nil {
		return nil, ErrInvalidBlockWindow
	}
	if p.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if !p.Source.IsValid() {
		return nil, ErrInvalidSource
	}

	return &Block{
		id:         uuid.New(),
		businessID: p.BusinessID,
		staffID:    p.StaffID,
		date:       p.Date,
		window:     window,
		capacity:   p.Capacity,
		source:     p.Source,
		createdAt:  now,
	}, nil
}

func ReconstructBlock(
	id, businessID uuid.UUID,
	staffID *uuid.UUID,
	date civil.Date,
	start, end civil.TimeOfDay,
	capacity int,
	source Source,
	createdAt time.Time,
) *Block {
	window, _ := civil.NewWindow(start, end)
	return &Block{
		id:         id,
		businessID: businessID,
		staffID:    staffID,
		date:       date,
		window:     window,
		capacity:   capacity,
		source:     source,
		createdAt:  createdAt,
	}
}

// EffectiveCapacity treats stored capacities below one as one.
func (b *Block) EffectiveCapacity() int {
	return max(1, b.capacity)
}

// AppliesTo reports whether the block is usable for staff. Unassigned blocks apply to everyone.
func (b *Block) AppliesTo(staffID *uuid.UUID) bool {
	if b.staffID == nil || staffID == nil {
		return true
	}
	return *b.staffID == *staffID
}

// Covers reports whether w fits entirely inside the block.
func (b *Block) Covers(w civil.Window) bool {
	return b.window.Contains(w)
}

// Key identifies a block for "insert if absent" semantics.
func (b *Block) Key() Key {
	return Key{
		BusinessID: b.businessID,
		StaffID:    b.staffID,
		Date:       b.date,
		Start:      b.window.Start(),
		End:        b.window.End(),
	}
}

func (b *Block) ID() uuid.UUID          { return b.id }
func (b *Block) BusinessID() uuid.UUID  { return b.businessID }
func (b *Block) StaffID() *uuid.UUID    { return b.staffID }
func (b *Block) Date() civil.Date       { return b.date }
func (b *Block) Window() civil.Window   { return b.window }
func (b *Block) Start() civil.TimeOfDay { return b.window.Start() }
func (b *Block) End() civil.TimeOfDay   { return b.window.End() }
func (b *Block) Capacity() int          { return b.capacity }
func (b *Block) Source() Source         { return b.source }
func (b *Block) CreatedAt() time.Time   { return b.createdAt }

type Key struct {
	BusinessID uuid.UUID
	StaffID    *uuid.UUID
	Date       civil.Date
	Start      civil.TimeOfDay
	End        civil.TimeOfDay
}

func (k Key) String() string {
	staff := "any"
	if k.StaffID != nil {
		staff = k.StaffID.String()
	}
	return k.BusinessID.String() + "/" + staff + "/" + k.Date.String() + "/" + k.Start.String() + "-" + k.End.String()
}
