//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"appointment-engine/internal/infra/readstore"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
	readstoremock "appointment-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingEventReadStore_FindFirstPage(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	occurredAt := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockBookingEventReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewBookingEventReadStore(mockQueries, mockDB)

	row := sqlc.BookingEvents{
		ID:         uuid.New(),
		BusinessID: businessID,
		BookingID:  uuid.New(),
		CustomerID: uuid.New(),
		Kind:       "booking.cancelled",
		Payload:    []byte(`{"to":"cancelled"}`),
		OccurredAt: pgconv.TimeToPgtype(occurredAt),
	}
	mockQueries.EXPECT().
		ListBookingEventsFirstPage(ctx, mockDB, sqlc.ListBookingEventsFirstPageParams{BusinessID: businessID, Limit: 21}).
		Return([]sqlc.BookingEvents{row}, nil)

	views, err := store.FindFirstPage(ctx, businessID, 21)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, row.ID, views[0].ID)
	assert.Equal(t, "booking.cancelled", views[0].Kind)
	assert.JSONEq(t, `{"to":"cancelled"}`, string(views[0].Payload))
	assert.True(t, views[0].OccurredAt.Equal(occurredAt))
}

func TestBookingEventReadStore_FindKeyset(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	lastID := uuid.New()
	lastAt := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockBookingEventReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewBookingEventReadStore(mockQueries, mockDB)

	mockQueries.EXPECT().
		ListBookingEventsKeyset(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListBookingEventsKeysetParams) ([]sqlc.BookingEvents, error) {
			assert.Equal(t, lastID, arg.ID)
			assert.True(t, arg.OccurredAt.Time.Equal(lastAt))
			assert.Equal(t, int32(11), arg.LimitCount)
			return []sqlc.BookingEvents{}, nil
		})

	views, err := store.FindKeyset(ctx, businessID, lastAt, lastID, 11)

	require.NoError(t, err)
	assert.Empty(t, views)
}
