package repository

import (
	"context"
	"time"

	"appointment-engine/internal/domain/schedule"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScheduleRuleWriteQueries interface {
	CreateScheduleRule(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateScheduleRuleParams) (uuid.UUID, error)
	DeactivateScheduleRule(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateScheduleRuleParams) (int64, error)
}

type ScheduleRuleRepository struct {
	queries ScheduleRuleWriteQueries
	db      sqlc.DBTX
}

func NewScheduleRuleRepository(queries ScheduleRuleWriteQueries, db sqlc.DBTX) *ScheduleRuleRepository {
	return &ScheduleRuleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleRuleRepository) Create(ctx context.Context, tx sqlc.DBTX, rule *schedule.Rule) (uuid.UUID, error) {
	id, err := r.queries.CreateScheduleRule(ctx, tx, converter.RuleToCreateParams(rule))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create schedule rule", err)
	}
	return id, nil
}

func (r *ScheduleRuleRepository) Deactivate(ctx context.Context, tx sqlc.DBTX, businessID, ruleID uuid.UUID, now time.Time) error {
	params := sqlc.DeactivateScheduleRuleParams{
		ID:         ruleID,
		BusinessID: businessID,
		UpdatedAt:  pgconv.TimeToPgtype(now),
	}

	affected, err := r.queries.DeactivateScheduleRule(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate schedule rule", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("schedule rule not found", nil, infra.KindNotFound)
	}
	return nil
}
