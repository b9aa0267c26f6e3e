package components

import (
	"context"
	"log/slog"

	"lending-ledger/internal/infra/messaging"
	"lending-ledger/internal/pkg/clock"
	"lending-ledger/internal/pkg/config"
	"lending-ledger/internal/usecase/shared"
	"lending-ledger/internal/worker/outbox"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewDispatcher,
	),
)

// DispatcherModule runs the outbox dispatcher for the lifetime of the app.
var DispatcherModule = fx.Module("worker/outbox",
	fx.Invoke(RunDispatcher),
)

// NewPublisher falls back to logging events when no broker is configured.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) outbox.Publisher {
	var pub interface {
		outbox.Publisher
		Close() error
	}
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL not set, outbox events will be logged only")
		pub = messaging.NewLogPublisher(logger)
	} else {
		pub = messaging.NewAMQPPublisher(cfg.AMQP, logger)
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}

func NewDispatcher(uow shared.UnitOfWork, pub outbox.Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *outbox.Dispatcher {
	return outbox.NewDispatcher(uow, pub, clk, cfg.Outbox, logger)
}

func RunDispatcher(lc fx.Lifecycle, d *outbox.Dispatcher, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := d.Run(ctx); err != nil {
					logger.Error("outbox dispatcher stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
