package components

import (
	"acacia-booking/internal/handler"
	"acacia-booking/internal/handler/api"
	"acacia-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewReservationHandler,
		api.NewEventHandler,
		api.NewTicketHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
