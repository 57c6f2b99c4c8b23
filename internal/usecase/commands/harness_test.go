//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/usecase/shared"
	sharedmock "appointment-engine/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func testSchedulingConfig() config.SchedulingConfig {
	return config.SchedulingConfig{
		SlotGranularity:    15 * time.Minute,
		MaxMaterializeDays: 366,
		IdempotencyTTL:     24 * time.Hour,
		DefaultCapacity:    1,
	}
}

// harness wires a unit of work whose transactions run fn directly against the repository mocks.
type harness struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	rules    *sharedmock.MockScheduleRuleRepository
	blocks   *sharedmock.MockBlockRepository
	bookings *sharedmock.MockBookingRepository
	events   *sharedmock.MockBookingEventRepository
	idem     *sharedmock.MockIdempotencyRepository
	clock    *clock.Fixed
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)

	h := &harness{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		rules:    sharedmock.NewMockScheduleRuleRepository(ctrl),
		blocks:   sharedmock.NewMockBlockRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		events:   sharedmock.NewMockBookingEventRepository(ctrl),
		idem:     sharedmock.NewMockIdempotencyRepository(ctrl),
		clock:    clock.NewFixed(testNow),
	}

	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, h.tx)
	}
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	h.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().Rules().Return(h.rules).AnyTimes()
	h.tx.EXPECT().Blocks().Return(h.blocks).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Events().Return(h.events).AnyTimes()
	h.tx.EXPECT().Idempotency().Return(h.idem).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()

	return h
}
