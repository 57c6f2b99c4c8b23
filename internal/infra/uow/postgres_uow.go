package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/booking"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/schedule"
	"appointment-engine/internal/infra/readstore"
	"appointment-engine/internal/infra/repository"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy covers conflicts between concurrent bookings: the day lock can
// deadlock against a status update holding row locks on the same day.
type retryPolicy struct {
	retries int
	base    time.Duration
}

var defaultRetry = retryPolicy{retries: 3, base: 100 * time.Millisecond}

// backoff doubles per attempt with up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	return wait + rand.N(wait/5+1)
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, retry: defaultRetry}
}

// Within runs fn in a ReadCommitted transaction. Booking writes serialize on the
// advisory day lock, so stronger isolation would only add aborts.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.withRetry(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// WithinReadOnly gives fn one snapshot across several tables.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, tx, "read-only")

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// WithDB binds repositories to the pool, so every write commits on its own.
func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &pgTx{dbtx: u.pool, uow: u})
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) withRetry(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = u.runOnce(ctx, opts, fn); err == nil || !retryable(err) {
			return err
		}
		if attempt == u.retry.retries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// runOnce owns exactly one pgx transaction; the rollback after a commit is a no-op.
func (u *PostgresUoW) runOnce(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, tx, "read-write")

	if err := fn(ctx, &pgTx{dbtx: tx, uow: u}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx, kind string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "tx", kind, "error", err.Error())
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	ruleRepo        shared.ScheduleRuleRepository
	blockRepo       shared.BlockRepository
	bookingRepo     shared.BookingRepository
	eventRepo       shared.BookingEventRepository
	idempotencyRepo shared.IdempotencyRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Rules() shared.ScheduleRuleRepository {
	if t.ruleRepo == nil {
		t.ruleRepo = repository.NewScheduleRuleRepository(t.uow.q, t.dbtx)
	}
	return t.ruleRepo
}

func (t *pgTx) Blocks() shared.BlockRepository {
	if t.blockRepo == nil {
		t.blockRepo = repository.NewBlockRepository(t.uow.q, t.dbtx)
	}
	return t.blockRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Events() shared.BookingEventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewBookingEventRepository(t.uow.q, t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	businessStore     *readstore.BusinessReadStore
	ruleStore         *readstore.ScheduleRuleReadStore
	availabilityStore *readstore.AvailabilityReadStore
	bookingStore      *readstore.BookingReadStore
	idempotencyStore  *readstore.IdempotencyLookup
}

func (r *commandReads) businesses() *readstore.BusinessReadStore {
	if r.businessStore == nil {
		r.businessStore = readstore.NewBusinessReadStore(r.uow.q, r.dbtx)
	}
	return r.businessStore
}

func (r *commandReads) availabilityReads() *readstore.AvailabilityReadStore {
	if r.availabilityStore == nil {
		r.availabilityStore = readstore.NewAvailabilityReadStore(r.uow.q, r.dbtx)
	}
	return r.availabilityStore
}

func (r *commandReads) BusinessByID(ctx context.Context, id uuid.UUID) (*shared.BusinessSnapshot, error) {
	business, err := r.businesses().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.BusinessSnapshot{
		ID:          business.ID,
		OwnerUserID: business.OwnerUserID,
		Name:        business.Name,
		Location:    civil.LoadLocation(business.TimeZone),
	}
	return snapshot, nil
}

func (r *commandReads) StaffByID(ctx context.Context, businessID, staffID uuid.UUID) (*shared.StaffSnapshot, error) {
	staff, err := r.businesses().FindStaff(ctx, businessID, staffID)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.StaffSnapshot{
		ID:         staff.ID,
		BusinessID: staff.BusinessID,
		IsActive:   staff.IsActive,
	}
	return snapshot, nil
}

func (r *commandReads) ActiveRules(ctx context.Context, businessID uuid.UUID) ([]*schedule.Rule, error) {
	if r.ruleStore == nil {
		r.ruleStore = readstore.NewScheduleRuleReadStore(r.uow.q, r.dbtx)
	}
	return r.ruleStore.FindActive(ctx, businessID)
}

func (r *commandReads) BlocksForDate(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]*availability.Block, error) {
	return r.availabilityReads().BlocksForDate(ctx, businessID, date)
}

func (r *commandReads) ScheduledOccupants(ctx context.Context, businessID uuid.UUID, date civil.Date) ([]availability.Occupant, error) {
	return r.availabilityReads().ScheduledOccupants(ctx, businessID, date)
}

func (r *commandReads) BookingByID(ctx context.Context, businessID, bookingID uuid.UUID) (*booking.Booking, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore.FindAggregate(ctx, businessID, bookingID)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyLookup(r.uow.q)
	}
	return r.idempotencyStore.Find(ctx, r.dbtx, key, userID)
}
