//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/queries"
	"appointment-engine/tests/common/builder"
	queriesmock "appointment-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func eventViews(businessID uuid.UUID, n int) []*queries.BookingEventView {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	views := make([]*queries.BookingEventView, n)
	for i := range views {
		views[i] = &queries.BookingEventView{
			ID:         uuid.New(),
			BusinessID: businessID,
			BookingID:  uuid.New(),
			Kind:       "booking.completed",
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return views
}

func TestBookingEventQueries_List(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	principal := builder.NewPrincipalBuilder().WithBusiness(businessID).Build()

	t.Run("success: first page with a next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := queriesmock.NewMockBookingEventReader(ctrl)
		rows := eventViews(businessID, 3)
		reader.EXPECT().FindFirstPage(gomock.Any(), businessID, int32(3)).Return(rows, nil)

		items, next, err := queries.NewBookingEventQueries(reader).List(ctx, principal, businessID, nil, 2)

		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, at.Equal(rows[1].OccurredAt))
	})

	t.Run("success: last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := queriesmock.NewMockBookingEventReader(ctrl)
		last := eventViews(businessID, 1)[0]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.OccurredAt, last.ID)}
		reader.EXPECT().FindKeyset(gomock.Any(), businessID, gomock.Any(), last.ID, int32(21)).Return(eventViews(businessID, 1), nil)

		items, next, err := queries.NewBookingEventQueries(reader).List(ctx, principal, businessID, cursor, 0)

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("error: malformed cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, _, err := queries.NewBookingEventQueries(queriesmock.NewMockBookingEventReader(ctrl)).
			List(ctx, principal, businessID, &queries.Cursor{After: "not-a-cursor"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("error: caller from another business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, _, err := queries.NewBookingEventQueries(queriesmock.NewMockBookingEventReader(ctrl)).
			List(ctx, builder.NewPrincipalBuilder().Build(), businessID, nil, 10)

		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})
}

func TestCursor(t *testing.T) {
	at := time.Date(2025, 6, 2, 9, 30, 15, 123456789, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, gotAt.Equal(at.Truncate(time.Microsecond)))

	for _, bad := range []string{"", "%%%", "djE6MTIz"} {
		_, _, err := queries.DecodeAfterCursor(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
