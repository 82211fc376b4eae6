package bootstrap

import (
	"acacia-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BrokerConfig { return cfg.Broker },
		func(cfg config.Config) config.NotifierConfig { return cfg.Notifier },
		func(cfg config.Config) config.ArtifactConfig { return cfg.Artifact },
	),
)
