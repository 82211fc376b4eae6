package components

import (
	"context"
	"log/slog"

	"acacia-booking/internal/infra/artifact"
	"acacia-booking/internal/infra/notifier"
	"acacia-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			artifact.NewFileStore,
			fx.As(new(worker.ArtifactRenderer)),
		),
		fx.Annotate(
			notifier.NewGatewayNotifier,
			fx.As(new(worker.TicketNotifier)),
		),
		worker.NewTicketIssuer,
	),
	fx.Invoke(StartTicketIssuer),
)

func StartTicketIssuer(lc fx.Lifecycle, issuer *worker.TicketIssuer) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := issuer.Run(ctx); err != nil && ctx.Err() == nil {
					slog.Error("ticket issuer stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
