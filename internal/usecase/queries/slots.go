package queries

import (
	"context"

	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/config"

	"github.com/google/uuid"
)

type BusinessReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BusinessView, error)
	FindStaff(ctx context.Context, businessID, staffID uuid.UUID) (*StaffView, error)
}

type AvailabilityReader interface {
	BlocksForDate(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]*availability.Block, error)
	ScheduledOccupants(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]availability.Occupant, error)
	ListBlocks(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]*BlockView, error)
}

type SlotQueries interface {
	FreeSlots(ctx context.Context, businessID uuid.UUID, staffFilter *uuid.UUID, date civil.Date, durationMinutes int) ([]string, error)
	FreeSlotsFor(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, staffFilter *uuid.UUID, date civil.Date, durationMinutes int) ([]string, error)
}

type slotQueriesImpl struct {
	businesses   BusinessReader
	availability AvailabilityReader
	cfg          config.SchedulingConfig
}

func NewSlotQueries(businesses BusinessReader, availability AvailabilityReader, cfg config.SchedulingConfig) SlotQueries {
	return &slotQueriesImpl{
		businesses:   businesses,
		availability: availability,
		cfg:          cfg,
	}
}

// FreeSlots answers the public slot search. Unknown businesses and staff yield no slots.
func (q *slotQueriesImpl) FreeSlots(ctx context.Context, businessID uuid.UUID, staffFilter *uuid.UUID, date civil.Date, durationMinutes int) ([]string, error) {
	if durationMinutes <= 0 {
		return []string{}, nil
	}

	if _, err := q.businesses.FindByID(ctx, businessID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []string{}, nil
		}
		return nil, markReadErr(err)
	}
	if staffFilter != nil {
		staff, err := q.businesses.FindStaff(ctx, businessID, *staffFilter)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return []string{}, nil
			}
			return nil, markReadErr(err)
		}
		if !staff.IsActive {
			return []string{}, nil
		}
	}

	blocks, err := q.availability.BlocksForDate(ctx, businessID, date)
	if err != nil {
		return nil, markReadErr(err)
	}
	if len(blocks) == 0 {
		return []string{}, nil
	}
	occupants, err := q.availability.ScheduledOccupants(ctx, businessID, date)
	if err != nil {
		return nil, markReadErr(err)
	}

	slots := availability.FreeSlots(blocks, occupants, availability.SlotQuery{
		StaffFilter:        staffFilter,
		DurationMinutes:    durationMinutes,
		GranularityMinutes: q.cfg.GranularityMinutes(),
	})
	return availability.FormatSlots(slots), nil
}

func (q *slotQueriesImpl) FreeSlotsFor(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, staffFilter *uuid.UUID, date civil.Date, durationMinutes int) ([]string, error) {
	if err := authorize(principal, businessID, user.RoleStaff); err != nil {
		return nil, err
	}
	return q.FreeSlots(ctx, businessID, staffFilter, date, durationMinutes)
}
