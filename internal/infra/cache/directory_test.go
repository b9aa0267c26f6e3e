//go:build unit

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/infra/cache"
	"lending-ledger/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Resolve(ctx context.Context, id uuid.UUID) (*shared.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Actor), args.Error(1)
}

func newTestDirectory(t *testing.T, inner shared.Directory) (*cache.Directory, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cache.NewDirectory(inner, rdb, time.Minute, logger), mr
}

func TestDirectory_Resolve(t *testing.T) {
	actor := &shared.Actor{
		ID:          uuid.New(),
		DisplayName: "Ana Alvarez",
		Role:        user.RoleApprover,
	}

	t.Run("second lookup is served from redis", func(t *testing.T) {
		inner := new(MockDirectory)
		inner.On("Resolve", mock.Anything, actor.ID).Return(actor, nil).Once()
		dir, mr := newTestDirectory(t, inner)

		first, err := dir.Resolve(context.Background(), actor.ID)
		require.NoError(t, err)
		second, err := dir.Resolve(context.Background(), actor.ID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, user.RoleApprover, second.Role)
		assert.True(t, mr.Exists("actor:"+actor.ID.String()))
		assert.Equal(t, time.Minute, mr.TTL("actor:"+actor.ID.String()))
		inner.AssertExpectations(t)
	})

	t.Run("entry expires with the ttl", func(t *testing.T) {
		inner := new(MockDirectory)
		inner.On("Resolve", mock.Anything, actor.ID).Return(actor, nil).Twice()
		dir, mr := newTestDirectory(t, inner)

		_, err := dir.Resolve(context.Background(), actor.ID)
		require.NoError(t, err)
		mr.FastForward(2 * time.Minute)
		_, err = dir.Resolve(context.Background(), actor.ID)
		require.NoError(t, err)

		inner.AssertExpectations(t)
	})

	t.Run("inner errors are not cached", func(t *testing.T) {
		id := uuid.New()
		inner := new(MockDirectory)
		inner.On("Resolve", mock.Anything, id).Return(nil, user.ErrNotFound)
		dir, mr := newTestDirectory(t, inner)

		_, err := dir.Resolve(context.Background(), id)

		assert.ErrorIs(t, err, user.ErrNotFound)
		assert.False(t, mr.Exists("actor:"+id.String()))
	})

	t.Run("undecodable entry falls through", func(t *testing.T) {
		inner := new(MockDirectory)
		inner.On("Resolve", mock.Anything, actor.ID).Return(actor, nil).Once()
		dir, mr := newTestDirectory(t, inner)
		require.NoError(t, mr.Set("actor:"+actor.ID.String(), "not-json"))

		got, err := dir.Resolve(context.Background(), actor.ID)

		require.NoError(t, err)
		assert.Equal(t, "Ana Alvarez", got.DisplayName)
		inner.AssertExpectations(t)
	})

	t.Run("redis outage falls through", func(t *testing.T) {
		inner := new(MockDirectory)
		inner.On("Resolve", mock.Anything, actor.ID).Return(actor, nil)
		dir, mr := newTestDirectory(t, inner)
		mr.Close()

		got, err := dir.Resolve(context.Background(), actor.ID)

		require.NoError(t, err)
		assert.Equal(t, actor.ID, got.ID)
	})
}
