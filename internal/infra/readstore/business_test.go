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
	readstoremock "appointment-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBusinessReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	ownerID := uuid.New()

	testCases := []struct {
		name          string
		row           sqlc.Businesses
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: business found",
			row:  sqlc.Businesses{ID: businessID, OwnerUserID: ownerID, Name: "Salon", TimeZone: "Asia/Tokyo"},
		},
		{
			name:          "error: business not found",
			queryErr:      pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: database error occurs",
			queryErr:      errors.New("connection reset"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBusinessReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewBusinessReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().GetBusinessByID(ctx, mockDB, businessID).Return(tc.row, tc.queryErr)

			view, err := store.FindByID(ctx, businessID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ownerID, view.OwnerUserID)
			assert.Equal(t, "Salon", view.Name)
			assert.Equal(t, "Asia/Tokyo", view.TimeZone)
		})
	}
}

func TestBusinessReadStore_FindStaff(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	staffID := uuid.New()

	t.Run("success: staff member found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBusinessReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBusinessReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().
			GetStaffMember(ctx, mockDB, sqlc.GetStaffMemberParams{ID: staffID, BusinessID: businessID}).
			Return(sqlc.StaffMembers{ID: staffID, BusinessID: businessID, DisplayName: "Aiko", IsActive: true}, nil)

		view, err := store.FindStaff(ctx, businessID, staffID)

		require.NoError(t, err)
		assert.Equal(t, "Aiko", view.DisplayName)
		assert.True(t, view.IsActive)
	})

	t.Run("error: staff member of another business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBusinessReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewBusinessReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetStaffMember(ctx, mockDB, gomock.Any()).Return(sqlc.StaffMembers{}, pgx.ErrNoRows)

		view, err := store.FindStaff(ctx, businessID, staffID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}

func TestBusinessReadStore_ListZones(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockBusinessReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewBusinessReadStore(mockQueries, mockDB)

	utcID, unknownID := uuid.New(), uuid.New()
	mockQueries.EXPECT().ListBusinessZones(ctx, mockDB).Return([]sqlc.ListBusinessZonesRow{
		{ID: utcID, TimeZone: "UTC"},
		{ID: unknownID, TimeZone: "Mars/Olympus_Mons"},
	}, nil)

	got, err := store.ListZones(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, utcID, got[0].ID)
	assert.Equal(t, time.UTC, got[0].Location)
	assert.Equal(t, unknownID, got[1].ID)
	assert.Equal(t, time.UTC, got[1].Location)
}
