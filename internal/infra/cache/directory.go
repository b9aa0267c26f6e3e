package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/pkg/config"
	"lending-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type cachedActor struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Group       string    `json:"group"`
	Role        string    `json:"role"`
}

// Directory is a read-through redis cache in front of another Directory.
// Redis failures are logged and the request falls through, so the cache
// can never make Resolve fail where the inner Directory would succeed.
type Directory struct {
	inner  shared.Directory
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewDirectory(inner shared.Directory, rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *Directory {
	return &Directory{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func actorKey(id uuid.UUID) string { return fmt.Sprintf("actor:%s", id) }

func (d *Directory) Resolve(ctx context.Context, id uuid.UUID) (*shared.Actor, error) {
	b, err := d.rdb.Get(ctx, actorKey(id)).Bytes()
	switch {
	case err == nil:
		var c cachedActor
		if jsonErr := json.Unmarshal(b, &c); jsonErr == nil {
			return &shared.Actor{ID: c.ID, DisplayName: c.DisplayName, Group: c.Group, Role: user.Role(c.Role)}, nil
		}
		d.logger.Warn("discarding undecodable cached actor", "actor_id", id)
	case !errors.Is(err, redis.Nil):
		d.logger.Warn("actor cache unavailable, falling through", "actor_id", id, "error", err.Error())
	}

	actor, err := d.inner.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(cachedActor{
		ID:          actor.ID,
		DisplayName: actor.DisplayName,
		Group:       actor.Group,
		Role:        actor.Role.String(),
	})
	if setErr := d.rdb.Set(ctx, actorKey(id), payload, d.ttl).Err(); setErr != nil {
		d.logger.Warn("failed to cache actor", "actor_id", id, "error", setErr.Error())
	}
	return actor, nil
}

// NewClient pings before returning; the caller decides whether to run
// without the cache.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
