package components

import (
	"acacia-booking/internal/infra/db"
	"acacia-booking/internal/infra/readstore"
	"acacia-booking/internal/infra/uow"
	"acacia-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
	),
	readstoreModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomBookingReadStore,
			fx.As(new(queries.RoomBookingReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewEventBookingReadStore,
			fx.As(new(queries.EventBookingReadStore)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
