package availability

import (
	"errors"

	"appointment-engine/internal/domain/civil"

	"github.com/google/uuid"
)

var (
	ErrNoCoveringBlock  = errors.New("no availability block covers the requested time")
	ErrCapacityExceeded = errors.New("slot capacity exhausted")
)

// Admission describes the block that accepted a booking.
type Admission struct {
	Block    *Block
	Capacity int
	Overlaps int
}

// Admit re-applies the slot generator's acceptance rule to one requested interval. It succeeds
// when at least one covering block still has a free capacity unit, so a slot offered by
// FreeSlots is always bookable while the occupancy is unchanged.
func Admit(blocks []*Block, occupants []Occupant, staffID *uuid.UUID, w civil.Window) (Admission, error) {
	var (
		covered bool
		best    Admission
	)
	for _, block := range blocks {
		if !block.AppliesTo(staffID) || !block.Covers(w) {
			continue
		}
		covered = true
		capacity := block.EffectiveCapacity()
		n := OverlapCount(occupants, ResolveStaff(block, staffID), w)
		if n+1 > capacity {
			continue
		}
		if best.Block == nil || capacity-n > best.Capacity-best.Overlaps {
			best = Admission{Block: block, Capacity: capacity, Overlaps: n}
		}
	}

	if !covered {
		return Admission{}, ErrNoCoveringBlock
	}
	if best.Block == nil {
		return Admission{}, ErrCapacityExceeded
	}
	return best, nil
}
