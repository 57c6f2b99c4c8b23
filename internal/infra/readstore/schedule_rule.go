package readstore

import (
	"context"

	"appointment-engine/internal/domain/schedule"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleRuleReadQueries interface {
	GetScheduleRule(ctx context.Context, db sqlc.DBTX, arg sqlc.GetScheduleRuleParams) (sqlc.WeeklyScheduleRules, error)
	ListActiveScheduleRules(ctx context.Context, db sqlc.DBTX, businessID uuid.UUID) ([]sqlc.WeeklyScheduleRules, error)
	ListScheduleRules(ctx context.Context, db sqlc.DBTX, arg sqlc.ListScheduleRulesParams) ([]sqlc.WeeklyScheduleRules, error)
}

type ScheduleRuleReadStore struct {
	queries ScheduleRuleReadQueries
	db      sqlc.DBTX
}

func NewScheduleRuleReadStore(queries ScheduleRuleReadQueries, db sqlc.DBTX) *ScheduleRuleReadStore {
	return &ScheduleRuleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleRuleReadStore) FindByID(ctx context.Context, businessID, ruleID uuid.UUID) (*queries.RuleView, error) {
	row, err := r.queries.GetScheduleRule(ctx, r.db, sqlc.GetScheduleRuleParams{ID: ruleID, BusinessID: businessID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get schedule rule", err)
	}
	return queries.NewRuleView(converter.RuleFromRow(row)), nil
}

// FindActive returns the rules the materializer expands.
func (r *ScheduleRuleReadStore) FindActive(ctx context.Context, businessID uuid.UUID) ([]*schedule.Rule, error) {
	rows, err := r.queries.ListActiveScheduleRules(ctx, r.db, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active schedule rules", err)
	}
	return converter.RulesFromRows(rows), nil
}

func (r *ScheduleRuleReadStore) List(ctx context.Context, businessID uuid.UUID, staffID *uuid.UUID) ([]*queries.RuleView, error) {
	params := sqlc.ListScheduleRulesParams{
		BusinessID: businessID,
		StaffID:    pgconv.UUIDPtrToPgtype(staffID),
	}

	rows, err := r.queries.ListScheduleRules(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedule rules", err)
	}

	views := make([]*queries.RuleView, len(rows))
	for i, row := range rows {
		views[i] = queries.NewRuleView(converter.RuleFromRow(row))
	}
	return views, nil
}
