package bootstrap

import (
	"barberpro/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.PolicyConfig {
			return cfg.Policy
		},
	),
)
