package shared

import (
	"context"
	"time"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/schedule"
	sqlc "appointment-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Repositories bound to the pool, one implicit transaction per statement
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rules() ScheduleRuleRepository
	Blocks() BlockRepository
	Bookings() BookingRepository
	Events() BookingEventRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	BusinessByID(ctx context.Context, id uuid.UUID) (*BusinessSnapshot, error)
	StaffByID(ctx context.Context, businessID, staffID uuid.UUID) (*StaffSnapshot, error)
	ActiveRules(ctx context.Context, businessID uuid.UUID) ([]*schedule.Rule, error)
	BlocksForDate(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]*availability.Block, error)
	ScheduledOccupants(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]availability.Occupant, error)
	BookingByID(ctx context.Context, businessID, bookingID uuid.UUID) (*booking.Booking, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type ScheduleRuleRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rule *schedule.Rule) (uuid.UUID, error)
	Deactivate(ctx context.Context, tx sqlc.DBTX, businessID, ruleID uuid.UUID, now time.Time) error
}

type BlockRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, block *availability.Block) (uuid.UUID, error)
	InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, block *availability.Block) (bool, error)
	Delete(ctx context.Context, tx sqlc.DBTX, businessID, blockID uuid.UUID) error
}

type BookingRepository interface {
	LockDay(ctx context.Context, tx sqlc.DBTX, businessID uuid.UUID, date civil.Date) error
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type BookingEventRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, event booking.StatusChanged) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
