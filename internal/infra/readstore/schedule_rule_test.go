//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/readstore"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/tests/common/builder"
	readstoremock "appointment-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduleRuleReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: rule with break"},
		{name: "error: rule not found", queryErr: pgx.ErrNoRows, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("connection reset"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockScheduleRuleReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewScheduleRuleReadStore(mockQueries, mockDB)

			row := builder.NewRuleBuilder().WithBusiness(businessID).WithBreak("12:00", "13:00").BuildInfra()
			mockQueries.EXPECT().
				GetScheduleRule(ctx, mockDB, sqlc.GetScheduleRuleParams{ID: row.ID, BusinessID: businessID}).
				Return(row, tc.queryErr)

			view, err := store.FindByID(ctx, businessID, row.ID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int(time.Monday), view.Weekday)
			assert.Equal(t, "09:00", view.WorkStart)
			assert.Equal(t, "17:00", view.WorkEnd)
			require.NotNil(t, view.BreakStart)
			assert.Equal(t, "12:00", *view.BreakStart)
			assert.Equal(t, "13:00", *view.BreakEnd)
		})
	}
}

func TestScheduleRuleReadStore_FindActive(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockScheduleRuleReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewScheduleRuleReadStore(mockQueries, mockDB)

	rows := []sqlc.WeeklyScheduleRules{
		builder.NewRuleBuilder().WithBusiness(businessID).BuildInfra(),
		builder.NewRuleBuilder().WithBusiness(businessID).WithWeekday(time.Saturday).WithWork("10:00", "14:00").BuildInfra(),
	}
	mockQueries.EXPECT().ListActiveScheduleRules(ctx, mockDB, businessID).Return(rows, nil)

	rules, err := store.FindActive(ctx, businessID)

	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, time.Saturday, rules[1].Weekday())
	assert.Nil(t, rules[1].Break())
	assert.True(t, rules[0].IsActive())
}

func TestScheduleRuleReadStore_List(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	staffID := uuid.New()

	testCases := []struct {
		name       string
		staffID    *uuid.UUID
		expectSent bool
	}{
		{name: "success: all staff", staffID: nil, expectSent: false},
		{name: "success: one staff member", staffID: &staffID, expectSent: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockScheduleRuleReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewScheduleRuleReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().
				ListScheduleRules(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListScheduleRulesParams) ([]sqlc.WeeklyScheduleRules, error) {
					assert.Equal(t, tc.expectSent, arg.StaffID.Valid)
					return []sqlc.WeeklyScheduleRules{builder.NewRuleBuilder().WithBusiness(businessID).BuildInfra()}, nil
				})

			views, err := store.List(ctx, businessID, tc.staffID)

			require.NoError(t, err)
			assert.Len(t, views, 1)
		})
	}
}
