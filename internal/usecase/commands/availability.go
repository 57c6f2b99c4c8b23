package commands

import (
	"context"
	"errors"
	"log/slog"

	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/queries"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type MaterializeResult struct {
	Created  int
	Skipped  int
	Rejected []availability.RejectedCandidate
}

type AvailabilityCommands interface {
	Materialize(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, from, to civil.Date) (*MaterializeResult, error)
	// MaterializeSystem skips authorization; it is reserved for the horizon job.
	MaterializeSystem(ctx context.Context, businessID uuid.UUID, from, to civil.Date) (*MaterializeResult, error)
	CreateBlock(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, in CreateBlockInput) (*queries.BlockView, error)
	DeleteBlock(ctx context.Context, principal *auth.Principal, businessID, blockID uuid.UUID) error
}

type availabilityCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.SchedulingConfig
}

func NewAvailabilityCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.SchedulingConfig) AvailabilityCommands {
	return &availabilityCommandsImpl{uow: uow, clock: clk, cfg: cfg}
}

func (uc *availabilityCommandsImpl) Materialize(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, from, to civil.Date) (*MaterializeResult, error) {
	if err := authorize(principal, businessID, user.RoleManager); err != nil {
		return nil, err
	}
	return uc.MaterializeSystem(ctx, businessID, from, to)
}

// MaterializeSystem writes each planned block on its own. A failure part-way keeps the blocks
// written so far; re-running fills the gaps.
func (uc *availabilityCommandsImpl) MaterializeSystem(ctx context.Context, businessID uuid.UUID, from, to civil.Date) (*MaterializeResult, error) {
	if err := availability.ValidateRange(from, to, uc.cfg.MaxMaterializeDays); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	rules, err := uc.uow.CommandReads().ActiveRules(ctx, businessID)
	if err != nil {
		return nil, markRepoErr(err)
	}

	plan, err := availability.PlanBlocks(rules, availability.PlanOptions{
		From:     from,
		To:       to,
		Capacity: uc.cfg.DefaultCapacity,
		MaxDays:  uc.cfg.MaxMaterializeDays,
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	result := &MaterializeResult{Rejected: plan.Rejected}
	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, block := range plan.Blocks {
			created, ierr := tx.Blocks().InsertIfAbsent(ctx, tx.DB(), block)
			if ierr != nil {
				return markRepoErr(ierr)
			}
			if created {
				result.Created++
			} else {
				result.Skipped++
			}
		}
		return nil
	})

	logArgs := []any{
		"business_id", businessID.String(),
		"from", from.String(),
		"to", to.String(),
		"rules", len(rules),
		"created", result.Created,
		"skipped", result.Skipped,
		"rejected", len(result.Rejected),
	}
	if err != nil {
		slog.Error("materialization stopped early", append(logArgs, "error", err.Error())...)
		return nil, err
	}
	slog.Info("materialized availability blocks", logArgs...)
	return result, nil
}

func (uc *availabilityCommandsImpl) CreateBlock(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, in CreateBlockInput) (*queries.BlockView, error) {
	if err := authorize(principal, businessID, user.RoleManager); err != nil {
		return nil, err
	}

	capacity := in.Capacity
	if capacity == 0 {
		capacity = uc.cfg.DefaultCapacity
	}
	block, err := availability.NewBlock(availability.BlockParams{
		BusinessID: businessID,
		StaffID:    in.StaffID,
		Date:       in.Date,
		Start:      in.Start,
		End:        in.End,
		Capacity:   capacity,
		Source:     availability.SourceManual,
	}, uc.clock.Now())
	if err != nil {
		if errors.Is(err, availability.ErrInvalidBlockWindow) {
			return nil, errs.Mark(err, errs.ErrInvalidWindow)
		}
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if in.StaffID != nil {
			if _, serr := tx.Reads().StaffByID(ctx, businessID, *in.StaffID); serr != nil {
				return markRepoErr(serr)
			}
		}
		_, cerr := tx.Blocks().Create(ctx, tx.DB(), block)
		if infra.IsKind(cerr, infra.KindDuplicateKey) {
			return errs.Mark(cerr, errs.ErrDuplicateBlock)
		}
		return markRepoErr(cerr)
	})
	if err != nil {
		return nil, err
	}
	return queries.NewBlockView(block), nil
}

func (uc *availabilityCommandsImpl) DeleteBlock(ctx context.Context, principal *auth.Principal, businessID, blockID uuid.UUID) error {
	if err := authorize(principal, businessID, user.RoleManager); err != nil {
		return err
	}

	return uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return markRepoErr(tx.Blocks().Delete(ctx, tx.DB(), businessID, blockID))
	})
}
