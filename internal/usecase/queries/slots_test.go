//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/queries"
	"appointment-engine/tests/common/builder"
	queriesmock "appointment-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var slotDate = civil.NewDate(2025, time.June, 2)

func testSchedulingConfig() config.SchedulingConfig {
	return config.SchedulingConfig{
		SlotGranularity:    15 * time.Minute,
		MaxMaterializeDays: 366,
		IdempotencyTTL:     24 * time.Hour,
		DefaultCapacity:    1,
	}
}

func booked(staffID *uuid.UUID, start string, minutes int) availability.Occupant {
	w, err := civil.WindowFor(civil.MustTimeOfDay(start), minutes)
	if err != nil {
		panic(err)
	}
	return availability.Occupant{StaffID: staffID, Window: w}
}

func TestSlotQueries_FreeSlots(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	staffID := uuid.New()

	block := func(start, end string) *availability.Block {
		return builder.NewBlockBuilder().WithBusiness(businessID).WithWindow(start, end).MustBuildDomain()
	}
	businessFound := func(b *queriesmock.MockBusinessReader) {
		b.EXPECT().FindByID(gomock.Any(), businessID).Return(&queries.BusinessView{ID: businessID, TimeZone: "UTC"}, nil)
	}

	testCases := []struct {
		name        string
		staffFilter *uuid.UUID
		duration    int
		setupMock   func(*queriesmock.MockBusinessReader, *queriesmock.MockAvailabilityReader)
		expected    []string
		expectedErr error
	}{
		{
			name:     "success: hour block with one booking",
			duration: 30,
			setupMock: func(b *queriesmock.MockBusinessReader, a *queriesmock.MockAvailabilityReader) {
				businessFound(b)
				a.EXPECT().BlocksForDate(gomock.Any(), businessID, slotDate).Return([]*availability.Block{block("09:00", "11:00")}, nil)
				a.EXPECT().ScheduledOccupants(gomock.Any(), businessID, slotDate).Return([]availability.Occupant{booked(nil, "09:30", 30)}, nil)
			},
			expected: []string{"09:00", "10:00", "10:15", "10:30"},
		},
		{
			name:        "success: staff filter ignores other staff's bookings",
			staffFilter: &staffID,
			duration:    60,
			setupMock: func(b *queriesmock.MockBusinessReader, a *queriesmock.MockAvailabilityReader) {
				businessFound(b)
				b.EXPECT().FindStaff(gomock.Any(), businessID, staffID).Return(&queries.StaffView{ID: staffID, IsActive: true}, nil)
				other := uuid.New()
				a.EXPECT().BlocksForDate(gomock.Any(), businessID, slotDate).Return([]*availability.Block{block("09:00", "10:00")}, nil)
				a.EXPECT().ScheduledOccupants(gomock.Any(), businessID, slotDate).Return([]availability.Occupant{booked(&other, "09:00", 60)}, nil)
			},
			expected: []string{"09:00"},
		},
		{
			name:     "success: no blocks on date",
			duration: 30,
			setupMock: func(b *queriesmock.MockBusinessReader, a *queriesmock.MockAvailabilityReader) {
				businessFound(b)
				a.EXPECT().BlocksForDate(gomock.Any(), businessID, slotDate).Return(nil, nil)
			},
			expected: []string{},
		},
		{
			name:      "success: non-positive duration yields nothing",
			duration:  0,
			setupMock: func(*queriesmock.MockBusinessReader, *queriesmock.MockAvailabilityReader) {},
			expected:  []string{},
		},
		{
			name:     "success: unknown business yields nothing",
			duration: 30,
			setupMock: func(b *queriesmock.MockBusinessReader, _ *queriesmock.MockAvailabilityReader) {
				b.EXPECT().FindByID(gomock.Any(), businessID).Return(nil, infra.WrapRepoErr("business not found", nil, infra.KindNotFound))
			},
			expected: []string{},
		},
		{
			name:        "success: inactive staff yields nothing",
			staffFilter: &staffID,
			duration:    30,
			setupMock: func(b *queriesmock.MockBusinessReader, _ *queriesmock.MockAvailabilityReader) {
				businessFound(b)
				b.EXPECT().FindStaff(gomock.Any(), businessID, staffID).Return(&queries.StaffView{ID: staffID, IsActive: false}, nil)
			},
			expected: []string{},
		},
		{
			name:     "error: block read fails",
			duration: 30,
			setupMock: func(b *queriesmock.MockBusinessReader, a *queriesmock.MockAvailabilityReader) {
				businessFound(b)
				a.EXPECT().BlocksForDate(gomock.Any(), businessID, slotDate).
					Return(nil, infra.WrapRepoErr("failed to list availability blocks", errors.New("connection reset")))
			},
			expectedErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			businesses := queriesmock.NewMockBusinessReader(ctrl)
			avail := queriesmock.NewMockAvailabilityReader(ctrl)
			tc.setupMock(businesses, avail)
			q := queries.NewSlotQueries(businesses, avail, testSchedulingConfig())

			slots, err := q.FreeSlots(ctx, businessID, tc.staffFilter, slotDate, tc.duration)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, slots)
		})
	}
}

func TestSlotQueries_FreeSlotsFor(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := queries.NewSlotQueries(queriesmock.NewMockBusinessReader(ctrl), queriesmock.NewMockAvailabilityReader(ctrl), testSchedulingConfig())

	_, err := q.FreeSlotsFor(ctx, builder.NewPrincipalBuilder().WithRole(user.RoleOwner).Build(), businessID, nil, slotDate, 30)

	assert.True(t, errs.Is(err, errs.ErrUnauthorized))
}
