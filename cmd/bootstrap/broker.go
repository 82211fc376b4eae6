package bootstrap

import (
	"context"

	"acacia-booking/internal/infra/broker"
	"acacia-booking/internal/pkg/config"
	"acacia-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		fx.Annotate(
			NewPublisher,
			fx.As(new(commands.BookingEventPublisher)),
		),
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.BrokerConfig) *broker.Publisher {
	pub := broker.NewPublisher(cfg)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub
}
