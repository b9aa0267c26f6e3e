package bootstrap

import (
	"context"
	"log/slog"

	"lending-ledger/internal/infra/db"
	"lending-ledger/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB connects at construction so a bad DSN fails fx startup instead of
// the first request.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", cfg.DB.MaxConns)

	lc.Append(fx.StopHook(func() {
		closePool()
		logger.Info("database pool closed")
	}))
	return pool, nil
}
