package job

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/config"
	"appointment-engine/internal/pkg/errs"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/shared"

	"github.com/robfig/cron/v3"
)

type BusinessLister interface {
	ListZones(ctx context.Context) ([]shared.BusinessZone, error)
}

type RunSummary struct {
	Businesses int
	Created    int
	Skipped    int
	Rejected   int
	Failed     int
	PurgedKeys int64
}

// Horizon keeps every business materialized a fixed number of days ahead and purges
// expired idempotency keys. It only ever adds blocks.
type Horizon struct {
	businesses BusinessLister
	cmds       commands.AvailabilityCommands
	uow        shared.UnitOfWork
	clock      clock.Clock
	cfg        config.HorizonConfig
}

func NewHorizon(businesses BusinessLister, cmds commands.AvailabilityCommands, uow shared.UnitOfWork, clk clock.Clock, cfg config.HorizonConfig) *Horizon {
	return &Horizon{
		businesses: businesses,
		cmds:       cmds,
		uow:        uow,
		clock:      clk,
		cfg:        cfg,
	}
}

// RunOnce materializes [today, today+Days-1] for every business, where today is the business's
// local date. A failing business does not stop the others; all failures are returned together.
func (h *Horizon) RunOnce(ctx context.Context) (RunSummary, error) {
	var summary RunSummary

	zones, err := h.businesses.ListZones(ctx)
	if err != nil {
		return summary, errs.Wrap(err, "failed to list businesses")
	}

	now := h.clock.Now()

	var failures []error
	for _, zone := range zones {
		if ctx.Err() != nil {
			failures = append(failures, ctx.Err())
			break
		}
		summary.Businesses++

		from, to := h.window(now, zone.Location)
		result, merr := h.cmds.MaterializeSystem(ctx, zone.ID, from, to)
		if merr != nil {
			summary.Failed++
			slog.Error("horizon materialization failed",
				"business_id", zone.ID.String(),
				"from", from.String(),
				"error", merr.Error())
			failures = append(failures, errs.Wrap(merr, "business "+zone.ID.String()))
			continue
		}
		summary.Created += result.Created
		summary.Skipped += result.Skipped
		summary.Rejected += len(result.Rejected)
	}

	purged, perr := h.purgeIdempotencyKeys(ctx)
	if perr != nil {
		failures = append(failures, perr)
	}
	summary.PurgedKeys = purged

	slog.Info("horizon run finished",
		"days", h.cfg.Days,
		"businesses", summary.Businesses,
		"created", summary.Created,
		"skipped", summary.Skipped,
		"rejected", summary.Rejected,
		"failed", summary.Failed,
		"purged_keys", summary.PurgedKeys)

	return summary, errors.Join(failures...)
}

func (h *Horizon) window(now time.Time, loc *time.Location) (civil.Date, civil.Date) {
	if loc == nil {
		loc = time.UTC
	}
	from := civil.DateOf(now.In(loc))
	return from, from.AddDays(h.cfg.Days - 1)
}

func (h *Horizon) purgeIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := h.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Idempotency().DeleteExpired(ctx, h.clock.Now())
		purged = n
		return derr
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to purge expired idempotency keys")
	}
	return purged, nil
}

// Schedule registers RunOnce on c. Overlapping runs are skipped rather than queued.
func (h *Horizon) Schedule(ctx context.Context, c *cron.Cron) (cron.EntryID, error) {
	job := cron.FuncJob(func() {
		if _, err := h.RunOnce(ctx); err != nil {
			slog.Warn("horizon run completed with errors", "error", err.Error())
		}
	})
	return c.AddJob(h.cfg.Schedule, cron.NewChain(cron.SkipIfStillRunning(NewCronLogger())).Then(job))
}

type cronLogger struct{}

// NewCronLogger adapts cron's logger interface onto slog.
func NewCronLogger() cron.Logger {
	return cronLogger{}
}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err.Error())...)
}
