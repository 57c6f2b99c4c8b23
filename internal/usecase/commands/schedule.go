package commands

import (
	"context"

	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/schedule"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/queries"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleCommands interface {
	CreateRule(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, in CreateRuleInput) (*queries.RuleView, error)
	DeactivateRule(ctx context.Context, principal *auth.Principal, businessID, ruleID uuid.UUID) error
}

type scheduleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewScheduleCommands(uow shared.UnitOfWork, clk clock.Clock) ScheduleCommands {
	return &scheduleCommandsImpl{uow: uow, clock: clk}
}

func (uc *scheduleCommandsImpl) CreateRule(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, in CreateRuleInput) (*queries.RuleView, error) {
	if err := authorize(principal, businessID, user.RoleManager); err != nil {
		return nil, err
	}

	rule, err := schedule.NewRule(schedule.RuleParams{
		BusinessID: businessID,
		StaffID:    in.StaffID,
		Weekday:    in.Weekday,
		WorkStart:  in.WorkStart,
		WorkEnd:    in.WorkEnd,
		BreakStart: in.BreakStart,
		BreakEnd:   in.BreakEnd,
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidWindow)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, serr := tx.Reads().StaffByID(ctx, businessID, in.StaffID); serr != nil {
			return markRepoErr(serr)
		}
		_, cerr := tx.Rules().Create(ctx, tx.DB(), rule)
		return markRepoErr(cerr)
	})
	if err != nil {
		return nil, err
	}
	return queries.NewRuleView(rule), nil
}

// DeactivateRule stops future materialization. Blocks already materialized stay.
func (uc *scheduleCommandsImpl) DeactivateRule(ctx context.Context, principal *auth.Principal, businessID, ruleID uuid.UUID) error {
	if err := authorize(principal, businessID, user.RoleManager); err != nil {
		return err
	}

	return uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return markRepoErr(tx.Rules().Deactivate(ctx, tx.DB(), businessID, ruleID, uc.clock.Now()))
	})
}
