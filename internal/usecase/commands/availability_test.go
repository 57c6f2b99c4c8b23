//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/schedule"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/infra"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/shared"
	"appointment-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityCommands_Materialize(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	from := civil.NewDate(2025, time.June, 2)
	to := civil.NewDate(2025, time.June, 9)

	rulesFor := func() []*schedule.Rule {
		return []*schedule.Rule{
			builder.NewRuleBuilder().WithBusiness(businessID).WithBreak("12:00", "13:00").MustBuildDomain(),
		}
	}

	testCases := []struct {
		name            string
		from, to        civil.Date
		setupMock       func(*harness)
		expectedCreated int
		expectedSkipped int
		expectedErr     error
	}{
		{
			name: "success: two mondays split by a break",
			from: from, to: to,
			setupMock: func(h *harness) {
				h.reads.EXPECT().ActiveRules(gomock.Any(), businessID).Return(rulesFor(), nil)
				h.blocks.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *availability.Block) (bool, error) {
						assert.Equal(t, availability.SourceMaterialized, b.Source())
						return true, nil
					}).Times(4)
			},
			expectedCreated: 4,
		},
		{
			name: "success: rerun skips blocks already stored",
			from: from, to: to,
			setupMock: func(h *harness) {
				h.reads.EXPECT().ActiveRules(gomock.Any(), businessID).Return(rulesFor(), nil)
				gomock.InOrder(
					h.blocks.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2),
					h.blocks.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(2),
				)
			},
			expectedCreated: 2,
			expectedSkipped: 2,
		},
		{
			name: "success: no active rules",
			from: from, to: to,
			setupMock: func(h *harness) {
				h.reads.EXPECT().ActiveRules(gomock.Any(), businessID).Return(nil, nil)
			},
		},
		{
			name: "error: range ends before it starts",
			from: to, to: from,
			setupMock:   func(h *harness) {},
			expectedErr: errs.ErrInvalidRange,
		},
		{
			name: "error: range longer than the configured limit",
			from: from, to: from.AddDays(400),
			setupMock:   func(h *harness) {},
			expectedErr: errs.ErrInvalidRange,
		},
		{
			name: "error: insert fails part-way",
			from: from, to: to,
			setupMock: func(h *harness) {
				h.reads.EXPECT().ActiveRules(gomock.Any(), businessID).Return(rulesFor(), nil)
				gomock.InOrder(
					h.blocks.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
					h.blocks.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(false, infra.WrapRepoErr("failed to insert availability block", errors.New("connection reset"))),
				)
			},
			expectedErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			tc.setupMock(h)
			uc := commands.NewAvailabilityCommands(h.uow, h.clock, testSchedulingConfig())
			principal := builder.NewPrincipalBuilder().WithBusiness(businessID).Build()

			result, err := uc.Materialize(ctx, principal, businessID, tc.from, tc.to)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCreated, result.Created)
			assert.Equal(t, tc.expectedSkipped, result.Skipped)
			assert.Empty(t, result.Rejected)
		})
	}
}

func TestAvailabilityCommands_Materialize_Unauthorized(t *testing.T) {
	businessID := uuid.New()
	h := newHarness(t)
	uc := commands.NewAvailabilityCommands(h.uow, h.clock, testSchedulingConfig())
	principal := builder.NewPrincipalBuilder().WithBusiness(businessID).WithRole(user.RoleStaff).Build()

	_, err := uc.Materialize(context.Background(), principal, businessID, civil.NewDate(2025, time.June, 2), civil.NewDate(2025, time.June, 9))

	assert.True(t, errs.Is(err, errs.ErrUnauthorized))
}

func TestAvailabilityCommands_MaterializeSystem(t *testing.T) {
	businessID := uuid.New()
	h := newHarness(t)
	h.reads.EXPECT().ActiveRules(gomock.Any(), businessID).Return([]*schedule.Rule{
		builder.NewRuleBuilder().WithBusiness(businessID).WithBreak("09:00", "10:00").MustBuildDomain(),
	}, nil)
	h.blocks.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	uc := commands.NewAvailabilityCommands(h.uow, h.clock, testSchedulingConfig())

	result, err := uc.MaterializeSystem(context.Background(), businessID, civil.NewDate(2025, time.June, 2), civil.NewDate(2025, time.June, 2))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, "09:00", result.Rejected[0].Start.String())
}

func TestAvailabilityCommands_CreateBlock(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	staffID := uuid.New()

	testCases := []struct {
		name             string
		input            func() commands.CreateBlockInput
		setupMock        func(*harness)
		expectedCapacity int
		expectedErr      error
	}{
		{
			name: "success: shared block",
			input: func() commands.CreateBlockInput {
				return builder.NewBlockBuilder().WithCapacity(2).BuildInput()
			},
			setupMock: func(h *harness) {
				h.blocks.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
			},
			expectedCapacity: 2,
		},
		{
			name: "success: missing capacity takes the configured default",
			input: func() commands.CreateBlockInput {
				return builder.NewBlockBuilder().WithStaff(staffID).WithCapacity(0).BuildInput()
			},
			setupMock: func(h *harness) {
				h.reads.EXPECT().StaffByID(gomock.Any(), businessID, staffID).Return(&shared.StaffSnapshot{ID: staffID, IsActive: true}, nil)
				h.blocks.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
			},
			expectedCapacity: 1,
		},
		{
			name: "error: end before start",
			input: func() commands.CreateBlockInput {
				return builder.NewBlockBuilder().WithWindow("12:00", "10:00").BuildInput()
			},
			setupMock:   func(h *harness) {},
			expectedErr: errs.ErrInvalidWindow,
		},
		{
			name: "error: negative capacity",
			input: func() commands.CreateBlockInput {
				return builder.NewBlockBuilder().WithCapacity(-1).BuildInput()
			},
			setupMock:   func(h *harness) {},
			expectedErr: errs.ErrInvalidInput,
		},
		{
			name: "error: same window already exists",
			input: func() commands.CreateBlockInput {
				return builder.NewBlockBuilder().BuildInput()
			},
			setupMock: func(h *harness) {
				dup := infra.WrapRepoErr("failed to create availability block", &pgconn.PgError{Code: "23505"})
				h.blocks.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, dup)
			},
			expectedErr: errs.ErrDuplicateBlock,
		},
		{
			name: "error: staff member not in business",
			input: func() commands.CreateBlockInput {
				return builder.NewBlockBuilder().WithStaff(staffID).BuildInput()
			},
			setupMock: func(h *harness) {
				h.reads.EXPECT().StaffByID(gomock.Any(), businessID, staffID).
					Return(nil, infra.WrapRepoErr("staff member not found", nil, infra.KindNotFound))
			},
			expectedErr: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			tc.setupMock(h)
			uc := commands.NewAvailabilityCommands(h.uow, h.clock, testSchedulingConfig())
			principal := builder.NewPrincipalBuilder().WithBusiness(businessID).Build()

			view, err := uc.CreateBlock(ctx, principal, businessID, tc.input())

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCapacity, view.Capacity)
			assert.Equal(t, "manual", view.Source)
			assert.Equal(t, businessID, view.BusinessID)
		})
	}
}

func TestAvailabilityCommands_DeleteBlock(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	blockID := uuid.New()

	t.Run("success: block removed", func(t *testing.T) {
		h := newHarness(t)
		h.blocks.EXPECT().Delete(gomock.Any(), gomock.Any(), businessID, blockID).Return(nil)
		uc := commands.NewAvailabilityCommands(h.uow, h.clock, testSchedulingConfig())

		err := uc.DeleteBlock(ctx, builder.NewPrincipalBuilder().WithBusiness(businessID).Build(), businessID, blockID)

		assert.NoError(t, err)
	})

	t.Run("error: block not found", func(t *testing.T) {
		h := newHarness(t)
		h.blocks.EXPECT().Delete(gomock.Any(), gomock.Any(), businessID, blockID).
			Return(infra.WrapRepoErr("availability block not found", nil, infra.KindNotFound))
		uc := commands.NewAvailabilityCommands(h.uow, h.clock, testSchedulingConfig())

		err := uc.DeleteBlock(ctx, builder.NewPrincipalBuilder().WithBusiness(businessID).Build(), businessID, blockID)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
