package bootstrap

import (
	"lending-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

// The config is loaded before fx starts because the store driver decides
// which modules are installed.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
