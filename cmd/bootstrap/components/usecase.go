package components

import (
	"acacia-booking/internal/pkg/clock"
	"acacia-booking/internal/usecase"
	"acacia-booking/internal/usecase/commands"
	"acacia-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRoomCommands,
		commands.NewRoomBookingCommands,
		commands.NewReservationCommands,
		commands.NewEventCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomQueries,
		queries.NewRoomBookingQueries,
		queries.NewReservationQueries,
		queries.NewEventBookingQueries,
		queries.NewTicketQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
