package components

import (
	"appointment-engine/internal/infra/readstore"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/infra/uow"
	"appointment-engine/internal/job"
	"appointment-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Query-side stores are bound to the pool; command-side access goes through the UnitOfWork.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Business
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BusinessReadQueries)),
		),
		fx.Annotate(
			readstore.NewBusinessReadStore,
			fx.As(new(queries.BusinessReader)),
			fx.As(new(job.BusinessLister)),
		),
		// Schedule rules
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ScheduleRuleReadQueries)),
		),
		fx.Annotate(
			readstore.NewScheduleRuleReadStore,
			fx.As(new(queries.ScheduleRuleReader)),
		),
		// Availability blocks
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AvailabilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReader)),
		),
		// Bookings
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReader)),
		),
		// Booking events
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingEventReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingEventReadStore,
			fx.As(new(queries.BookingEventReader)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
