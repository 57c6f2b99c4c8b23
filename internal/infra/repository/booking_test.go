//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/tests/common/builder"
	repositorymock "appointment-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingLockKey(t *testing.T) {
	businessID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	date := civil.NewDate(2025, time.June, 2)

	assert.Equal(t, "booking:11111111-1111-1111-1111-111111111111:2025-06-02", repository.BookingLockKey(businessID, date))
	assert.NotEqual(t, repository.BookingLockKey(businessID, date), repository.BookingLockKey(businessID, date.AddDays(1)))
}

func TestBookingRepository_LockDay(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	date := civil.NewDate(2025, time.June, 2)

	t.Run("success: lock acquired with the day key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().AcquireBookingLock(ctx, mockDB, repository.BookingLockKey(businessID, date)).Return(nil)

		assert.NoError(t, repo.LockDay(ctx, mockDB, businessID, date))
	})

	t.Run("error: lock query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().AcquireBookingLock(ctx, mockDB, gomock.Any()).Return(errors.New("canceling statement due to lock timeout"))

		err := repo.LockDay(ctx, mockDB, businessID, date)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		returnID      uuid.UUID
		queryErr      error
		expectedError bool
	}{
		{name: "success: booking created", returnID: uuid.New()},
		{name: "error: database error occurs", returnID: uuid.Nil, queryErr: errors.New("connection reset"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().MustBuildDomain()
			mockQueries.EXPECT().
				CreateBooking(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error) {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, booking.StatusScheduled.String(), arg.Status)
					assert.False(t, arg.StaffID.Valid)
					return tc.returnID, tc.queryErr
				})

			id, err := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.returnID, id)
			}
		})
	}
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: status written", affected: 1},
		{name: "error: booking no longer scheduled", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("connection reset"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().BuildStored(booking.StatusScheduled)
			_, err := b.TransitionTo(booking.StatusCancelled, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
			require.NoError(t, err)

			mockQueries.EXPECT().
				UpdateBookingStatus(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
					assert.Equal(t, "cancelled", arg.Status)
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, b.BusinessID(), arg.BusinessID)
					return tc.affected, tc.queryErr
				})

			err = repo.UpdateStatus(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingEventRepository_Append(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
	}{
		{name: "success: event appended"},
		{name: "error: database error occurs", queryErr: errors.New("connection reset"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingEventWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingEventRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().BuildStored(booking.StatusScheduled)
			event, err := b.TransitionTo(booking.StatusNoShow, now)
			require.NoError(t, err)

			mockQueries.EXPECT().
				CreateBookingEvent(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingEventParams) error {
					assert.NotEqual(t, uuid.Nil, arg.ID)
					assert.Equal(t, b.ID(), arg.BookingID)
					assert.Equal(t, string(booking.EventNoShow), arg.Kind)
					assert.True(t, arg.OccurredAt.Time.Equal(now))

					var payload map[string]any
					require.NoError(t, json.Unmarshal(arg.Payload, &payload))
					assert.Equal(t, "scheduled", payload["from"])
					assert.Equal(t, "no_show", payload["to"])
					return tc.queryErr
				})

			err = repo.Append(ctx, mockDB, event)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
