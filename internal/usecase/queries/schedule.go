package queries

import (
	"context"

	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/user"

	"github.com/google/uuid"
)

type ScheduleRuleReader interface {
	List(ctx context.Context, businessID uuid.UUID, staffID *uuid.UUID) ([]*RuleView, error)
}

type ScheduleQueries interface {
	ListRules(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, staffID *uuid.UUID) ([]*RuleView, error)
	ListBlocks(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, date civil.Date) ([]*BlockView, error)
}

type scheduleQueriesImpl struct {
	rules        ScheduleRuleReader
	availability AvailabilityReader
}

func NewScheduleQueries(rules ScheduleRuleReader, availability AvailabilityReader) ScheduleQueries {
	return &scheduleQueriesImpl{rules: rules, availability: availability}
}

func (q *scheduleQueriesImpl) ListRules(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, staffID *uuid.UUID) ([]*RuleView, error) {
	if err := authorize(principal, businessID, user.RoleManager); err != nil {
		return nil, err
	}
	rules, err := q.rules.List(ctx, businessID, staffID)
	if err != nil {
		return nil, markReadErr(err)
	}
	return rules, nil
}

func (q *scheduleQueriesImpl) ListBlocks(ctx context.Context, principal *auth.Principal, businessID uuid.UUID, date civil.Date) ([]*BlockView, error) {
	if err := authorize(principal, businessID, user.RoleManager); err != nil {
		return nil, err
	}
	blocks, err := q.availability.ListBlocks(ctx, businessID, date)
	if err != nil {
		return nil, markReadErr(err)
	}
	return blocks, nil
}
