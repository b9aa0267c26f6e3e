//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lending-ledger/internal/domain/item"
	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/infra/memstore"
	"lending-ledger/internal/usecase/queries"
	"lending-ledger/internal/usecase/shared"
	"lending-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storeNow = time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC)

func TestWithin_RollsBackOnError(t *testing.T) {
	store := memstore.New()
	b := builder.NewItemBuilder().WithStock(2, 2)
	store.Load([]memstore.ItemRecord{b.BuildRecord()}, nil)
	boom := errors.New("boom")

	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Catalog().TakeUnit(ctx, b.ID, storeNow); err != nil {
			return err
		}
		if err := tx.Outbox().Enqueue(ctx, shared.NotificationJob{Kind: shared.EventRequestApproved, RunAt: storeNow}); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	view, err := store.Items().FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Available)

	err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		jobs, err := tx.Outbox().ClaimDue(ctx, storeNow.Add(time.Hour), 0)
		assert.Empty(t, jobs)
		return err
	})
	require.NoError(t, err)
}

func TestWithin_CancelledContext(t *testing.T) {
	store := memstore.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestCatalog_ConditionalWrites(t *testing.T) {
	store := memstore.New()
	b := builder.NewItemBuilder().WithStock(2, 1)
	store.Load([]memstore.ItemRecord{b.BuildRecord()}, nil)
	ctx := context.Background()

	t.Run("take the last unit then fail", func(t *testing.T) {
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Catalog().TakeUnit(ctx, b.ID, storeNow)
		})
		require.NoError(t, err)

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Catalog().TakeUnit(ctx, b.ID, storeNow)
		})
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.ErrorIs(t, err, item.ErrNoUnitAvailable)
	})

	t.Run("return clamps at quantity", func(t *testing.T) {
		var first, second, third bool
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			if first, err = tx.Catalog().ReturnUnit(ctx, b.ID, storeNow); err != nil {
				return err
			}
			if second, err = tx.Catalog().ReturnUnit(ctx, b.ID, storeNow); err != nil {
				return err
			}
			third, err = tx.Catalog().ReturnUnit(ctx, b.ID, storeNow)
			return err
		})

		require.NoError(t, err)
		assert.False(t, first)
		assert.False(t, second)
		assert.True(t, third)
		view, err := store.Items().FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, view.Available)
	})

	t.Run("update below zero available is a conflict", func(t *testing.T) {
		it, err := b.BuildDomain()
		require.NoError(t, err)

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Catalog().Update(ctx, it, -3)
		})

		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.ErrorIs(t, err, item.ErrNegativeAvailable)
	})
}

func TestLedger_ApplyTransitionCompareAndSet(t *testing.T) {
	store := memstore.New()
	rb := builder.NewRequestBuilder()
	store.Load(nil, []memstore.RequestRecord{rb.BuildRecord()})
	ctx := context.Background()

	req, err := rb.BuildDomain()
	require.NoError(t, err)
	require.NoError(t, req.Reject(storeNow))

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Ledger().ApplyTransition(ctx, req, lending.StatusApproved)
	})
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.ErrorIs(t, err, lending.ErrStatusChanged)

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Ledger().ApplyTransition(ctx, req, lending.StatusPending)
	})
	require.NoError(t, err)

	view, err := store.Requests().FindByID(ctx, rb.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", view.Status)
}

func TestRequestReader_KeysetPaging(t *testing.T) {
	store := memstore.New()
	requester := uuid.New()
	records := make([]memstore.RequestRecord, 0, 5)
	for i := range 5 {
		records = append(records, builder.NewRequestBuilder().
			ByRequester(requester, "Mina Park").
			CreatedAtTime(storeNow.Add(time.Duration(i)*time.Minute)).
			BuildRecord())
	}
	// Same timestamp as the newest; ties break on id.
	tie := builder.NewRequestBuilder().CreatedAtTime(storeNow.Add(4 * time.Minute)).BuildRecord()
	store.Load(nil, append(records, tie))
	ctx := context.Background()

	var seen []uuid.UUID
	var after *queries.Keyset
	for {
		page, err := store.Requests().List(ctx, queries.RequestFilter{}, after, 2)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		for _, v := range page {
			seen = append(seen, v.ID)
		}
		last := page[len(page)-1]
		after = &queries.Keyset{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	assert.Len(t, seen, 6)
	assert.ElementsMatch(t, append(idsOf(records), tie.ID), seen)

	mine, err := store.Requests().List(ctx, queries.RequestFilter{RequesterID: &requester}, nil, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 5)
	assert.Equal(t, records[4].ID, mine[0].ID)
}

func idsOf(recs []memstore.RequestRecord) []uuid.UUID {
	ids := make([]uuid.UUID, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}

func TestItemReader_Search(t *testing.T) {
	store := memstore.New()
	camera := builder.NewItemBuilder().BuildRecord()
	sensor := builder.NewItemBuilder().WithName("DHT22").With(func(b *builder.ItemBuilder) { b.Category = "Sensors" }).BuildRecord()
	tripod := builder.NewItemBuilder().WithName("Sensor mount tripod").BuildRecord()
	store.Load([]memstore.ItemRecord{camera, sensor, tripod}, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter queries.ItemFilter
		want   []uuid.UUID
	}{
		{name: "name match", filter: queries.ItemFilter{Search: "dht"}, want: []uuid.UUID{sensor.ID}},
		{name: "category match", filter: queries.ItemFilter{Search: "camer"}, want: []uuid.UUID{camera.ID, tripod.ID}},
		{name: "name or category", filter: queries.ItemFilter{Search: "SENSOR"}, want: []uuid.UUID{sensor.ID, tripod.ID}},
		{name: "category filter narrows search", filter: queries.ItemFilter{Category: "Sensors", Search: "sensor"}, want: []uuid.UUID{sensor.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := store.Items().List(ctx, tt.filter)
			require.NoError(t, err)

			got := make([]uuid.UUID, 0, len(views))
			for _, v := range views {
				got = append(got, v.ID)
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}
