package messaging

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the structured log. Used when no broker is
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.logger.InfoContext(ctx, "event published", "routing_key", routingKey, "payload", string(body))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
