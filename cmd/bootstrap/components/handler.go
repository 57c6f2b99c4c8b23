package components

import (
	"appointment-engine/internal/handler"
	"appointment-engine/internal/handler/api"
	"appointment-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewScheduleHandler,
		api.NewAvailabilityHandler,
		api.NewBookingEventHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Slots        *api.SlotHandler
	Bookings     *api.BookingHandler
	Schedule     *api.ScheduleHandler
	Availability *api.AvailabilityHandler
	Events       *api.BookingEventHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Slots:        p.Slots,
		Bookings:     p.Bookings,
		Schedule:     p.Schedule,
		Availability: p.Availability,
		Events:       p.Events,
	}
}
