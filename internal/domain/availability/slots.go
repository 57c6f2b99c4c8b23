package availability

import (
	"slices"

	"appointment-engine/internal/domain/civil"

	"github.com/google/uuid"
)

const DefaultGranularityMinutes = 15

// Occupant is a scheduled booking as seen by capacity checks.
type Occupant struct {
	StaffID *uuid.UUID
	Window  civil.Window
}

type SlotQuery struct {
	// StaffFilter nil means "any".
	StaffFilter        *uuid.UUID
	DurationMinutes    int
	GranularityMinutes int
}

// ResolveStaff picks the staff whose bookings consume capacity of a block: the block's own staff,
// else the filter. Nil means bookings of every staff count.
func ResolveStaff(block *Block, filter *uuid.UUID) *uuid.UUID {
	if block.StaffID() != nil {
		return block.StaffID()
	}
	return filter
}

// OverlapCount counts occupants of staff overlapping w. Occupants without staff count against
// every staff member.
func OverlapCount(occupants []Occupant, staff *uuid.UUID, w civil.Window) int {
	n := 0
	for _, o := range occupants {
		if staff != nil && o.StaffID != nil && *o.StaffID != *staff {
			continue
		}
		if w.Overlaps(o.Window) {
			n++
		}
	}
	return n
}

// FreeSlots returns the sorted, de-duplicated start times at which a booking of the requested
// duration still fits within some block's capacity.
func FreeSlots(blocks []*Block, occupants []Occupant, q SlotQuery) []civil.TimeOfDay {
	if q.DurationMinutes <= 0 {
		return []civil.TimeOfDay{}
	}
	step := q.GranularityMinutes
	if step <= 0 {
		step = DefaultGranularityMinutes
	}

	seen := make(map[civil.TimeOfDay]struct{})
	slots := make([]civil.TimeOfDay, 0)
	for _, block := range blocks {
		if q.StaffFilter != nil && !block.AppliesTo(q.StaffFilter) {
			continue
		}
		staff := ResolveStaff(block, q.StaffFilter)
		capacity := block.EffectiveCapacity()

		for start := block.Start(); start.AddMinutes(q.DurationMinutes) <= block.End(); start = start.AddMinutes(step) {
			candidate, err := civil.WindowFor(start, q.DurationMinutes)
			if err != nil {
				break
			}
			if OverlapCount(occupants, staff, candidate) >= capacity {
				continue
			}
			if _, dup := seen[start]; dup {
				continue
			}
			seen[start] = struct{}{}
			slots = append(slots, start)
		}
	}

	slices.Sort(slots)
	return slots
}

// FormatSlots renders slot start times as "15:04".
func FormatSlots(slots []civil.TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
