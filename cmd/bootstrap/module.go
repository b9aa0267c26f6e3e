package bootstrap

import (
	"lending-ledger/cmd/bootstrap/components"
	"lending-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

// CoreModule is everything below the HTTP layer: store, use cases and the
// outbox worker pieces.
func CoreModule(cfg config.Config) fx.Option {
	opts := []fx.Option{
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		components.UseCaseModule,
		components.MessagingModule,
	}

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		opts = append(opts, components.MemoryStoreModule)
	default:
		opts = append(opts, DBModule, components.PostgresStoreModule)
	}

	if cfg.Redis.Enabled {
		opts = append(opts, components.DirectoryCacheModule)
	}

	return fx.Options(opts...)
}

// Module is the full API server.
func Module(cfg config.Config) fx.Option {
	opts := []fx.Option{
		CoreModule(cfg),
		components.HandlerModule,
	}
	if cfg.Outbox.Enabled {
		opts = append(opts, DispatcherModule)
	}
	return fx.Options(opts...)
}

var DispatcherModule = components.DispatcherModule
