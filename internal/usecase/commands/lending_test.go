//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/infra/memstore"
	"lending-ledger/internal/pkg/clock"
	"lending-ledger/internal/pkg/config"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/usecase/commands"
	"lending-ledger/internal/usecase/shared"
	"lending-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC)

type lendingFixture struct {
	store     *memstore.Store
	clock     *clock.MockClock
	cmds      commands.LendingCommands
	catalog   commands.CatalogCommands
	approver  uuid.UUID
	requester uuid.UUID
}

func newLendingFixture(t *testing.T) *lendingFixture {
	t.Helper()

	store := memstore.New()
	clk := clock.NewMockClock(baseTime)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	approver := builder.NewUserBuilder().WithEmail("alvarez@school.edu").WithName("Ana", "Alvarez").AsApprover()
	requester := builder.NewUserBuilder()
	store.LoadUsers([]memstore.UserRecord{approver.BuildRecord(), requester.BuildRecord()})

	return &lendingFixture{
		store:     store,
		clock:     clk,
		cmds:      commands.NewLendingCommands(store, store.Users(), clk, config.NewTestConfig().Lending, logger),
		catalog:   commands.NewCatalogCommands(store, clk, logger),
		approver:  approver.ID,
		requester: requester.ID,
	}
}

func (f *lendingFixture) addItem(t *testing.T, quantity, available int) uuid.UUID {
	t.Helper()
	it, err := builder.NewItemBuilder().WithStock(quantity, available).BuildDomain()
	require.NoError(t, err)
	err = f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().Create(ctx, it)
	})
	require.NoError(t, err)
	return it.ID()
}

func (f *lendingFixture) submit(t *testing.T, itemID uuid.UUID) uuid.UUID {
	t.Helper()
	id, err := f.cmds.SubmitRequest(context.Background(), commands.SubmitRequestInput{
		RequesterID:   f.requester,
		ItemID:        itemID,
		Justification: "Robotics club build night",
	})
	require.NoError(t, err)
	return id
}

func (f *lendingFixture) available(t *testing.T, itemID uuid.UUID) int {
	t.Helper()
	v, err := f.store.Items().FindByID(context.Background(), itemID)
	require.NoError(t, err)
	return v.Available
}

func (f *lendingFixture) status(t *testing.T, requestID uuid.UUID) string {
	t.Helper()
	v, err := f.store.Requests().FindByID(context.Background(), requestID)
	require.NoError(t, err)
	return v.Status
}

func (f *lendingFixture) queuedKinds(t *testing.T) []string {
	t.Helper()
	var kinds []string
	err := f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		jobs, err := tx.Outbox().ClaimDue(ctx, baseTime.Add(365*24*time.Hour), 0)
		for _, j := range jobs {
			kinds = append(kinds, j.Kind)
		}
		return err
	})
	require.NoError(t, err)
	return kinds
}

// =============================================================================
// Submit
// =============================================================================

func TestSubmitRequest(t *testing.T) {
	t.Run("申請者名とグループはディレクトリから補完", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 5, 5)

		id := f.submit(t, itemID)

		v, err := f.store.Requests().FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "pending", v.Status)
		assert.Equal(t, "Mina Park", v.RequesterName)
		assert.Equal(t, "Period 3", v.RequesterGroup)
		assert.Equal(t, "Canon EOS R50", v.ItemName)
		assert.Equal(t, baseTime, v.CreatedAt)
		assert.Equal(t, 5, f.available(t, itemID), "submitting never touches availability")
		assert.Equal(t, []string{shared.EventRequestSubmitted}, f.queuedKinds(t))
	})

	t.Run("入力値の申請者名を優先", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)

		id, err := f.cmds.SubmitRequest(context.Background(), commands.SubmitRequestInput{
			RequesterID:    uuid.New(),
			RequesterName:  "Guest Student",
			RequesterGroup: "Period 7",
			ItemID:         itemID,
			Justification:  "Lab",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", f.status(t, id))
	})

	t.Run("存在しない物品NG", func(t *testing.T) {
		f := newLendingFixture(t)
		_, err := f.cmds.SubmitRequest(context.Background(), commands.SubmitRequestInput{
			RequesterID:   f.requester,
			ItemID:        uuid.New(),
			Justification: "Lab",
		})
		require.ErrorIs(t, err, errs.ErrNotFound)
		assert.Empty(t, f.queuedKinds(t))
	})

	t.Run("理由なしNG", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		_, err := f.cmds.SubmitRequest(context.Background(), commands.SubmitRequestInput{
			RequesterID: f.requester,
			ItemID:      itemID,
		})
		require.ErrorIs(t, err, errs.ErrValidation)
		require.ErrorIs(t, err, lending.ErrJustificationRequired)
	})

	t.Run("グループ未設定の申請者NG", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		_, err := f.cmds.SubmitRequest(context.Background(), commands.SubmitRequestInput{
			RequesterID:   f.approver,
			ItemID:        itemID,
			Justification: "Lab",
		})
		require.ErrorIs(t, err, errs.ErrValidation)
		require.ErrorIs(t, err, lending.ErrGroupRequired)
	})
}

// =============================================================================
// Approve
// =============================================================================

func TestApproveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("在庫5/5から承認で4/5", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 5, 5)
		reqID := f.submit(t, itemID)

		require.NoError(t, f.cmds.ApproveRequest(ctx, reqID, f.approver, nil))

		assert.Equal(t, 4, f.available(t, itemID))
		v, err := f.store.Requests().FindByID(ctx, reqID)
		require.NoError(t, err)
		assert.Equal(t, "approved", v.Status)
		require.NotNil(t, v.DueAt)
		assert.Equal(t, baseTime.Add(7*24*time.Hour), *v.DueAt)
		require.NotNil(t, v.ApprovedBy)
		assert.Equal(t, "Ana Alvarez", *v.ApprovedBy)
		assert.ElementsMatch(t, []string{shared.EventRequestSubmitted, shared.EventRequestApproved}, f.queuedKinds(t))
	})

	t.Run("在庫3/3で4件目は在庫不足", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 3, 3)
		ids := []uuid.UUID{f.submit(t, itemID), f.submit(t, itemID), f.submit(t, itemID), f.submit(t, itemID)}

		for _, id := range ids[:3] {
			require.NoError(t, f.cmds.ApproveRequest(ctx, id, f.approver, nil))
		}
		err := f.cmds.ApproveRequest(ctx, ids[3], f.approver, nil)

		require.ErrorIs(t, err, errs.ErrInsufficientAvailability)
		assert.Equal(t, 0, f.available(t, itemID))
		assert.Equal(t, "pending", f.status(t, ids[3]), "failed approval must roll back the status write")
	})

	t.Run("二重承認は不正遷移", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 5, 5)
		reqID := f.submit(t, itemID)

		require.NoError(t, f.cmds.ApproveRequest(ctx, reqID, f.approver, nil))
		err := f.cmds.ApproveRequest(ctx, reqID, f.approver, nil)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, 4, f.available(t, itemID), "second approval must not take another unit")
	})

	t.Run("指定期限を採用", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		reqID := f.submit(t, itemID)
		due := baseTime.Add(48 * time.Hour)

		require.NoError(t, f.cmds.ApproveRequest(ctx, reqID, f.approver, &due))

		v, err := f.store.Requests().FindByID(ctx, reqID)
		require.NoError(t, err)
		assert.Equal(t, due, *v.DueAt)
	})

	t.Run("過去の期限はバリデーションエラー", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		reqID := f.submit(t, itemID)
		past := baseTime.Add(-time.Hour)

		err := f.cmds.ApproveRequest(ctx, reqID, f.approver, &past)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, 1, f.available(t, itemID))
		assert.Equal(t, "pending", f.status(t, reqID))
	})

	t.Run("承認者ロール以外は禁止", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		reqID := f.submit(t, itemID)

		err := f.cmds.ApproveRequest(ctx, reqID, f.requester, nil)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, "pending", f.status(t, reqID))
	})

	t.Run("未登録の承認者はNotFound", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		reqID := f.submit(t, itemID)

		err := f.cmds.ApproveRequest(ctx, reqID, uuid.New(), nil)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("存在しない申請はNotFound", func(t *testing.T) {
		f := newLendingFixture(t)
		err := f.cmds.ApproveRequest(ctx, uuid.New(), f.approver, nil)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("物品削除済みはNotFoundで申請は pending のまま", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 2, 2)
		reqID := f.submit(t, itemID)
		require.NoError(t, f.catalog.DeleteItem(ctx, itemID))

		err := f.cmds.ApproveRequest(ctx, reqID, f.approver, nil)

		require.ErrorIs(t, err, errs.ErrNotFound)
		assert.Equal(t, "pending", f.status(t, reqID))
	})
}

func TestApproveRequest_Concurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("最後の1台を並行承認すると1件だけ成功", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)

		const n = 8
		ids := make([]uuid.UUID, n)
		for i := range ids {
			ids[i] = f.submit(t, itemID)
		}

		results := make([]error, n)
		var wg sync.WaitGroup
		for i, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = f.cmds.ApproveRequest(ctx, id, f.approver, nil)
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range results {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, errs.ErrInsufficientAvailability)
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 0, f.available(t, itemID))
	})

	t.Run("同じ申請を並行承認すると1件だけ成功", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 5, 5)
		reqID := f.submit(t, itemID)

		results := make([]error, 2)
		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = f.cmds.ApproveRequest(ctx, reqID, f.approver, nil)
			}()
		}
		wg.Wait()

		failures := 0
		for _, err := range results {
			if err != nil {
				failures++
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		}
		assert.Equal(t, 1, failures)
		assert.Equal(t, 4, f.available(t, itemID))
	})
}

// =============================================================================
// Reject
// =============================================================================

func TestRejectRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("却下は在庫を変えない", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 2, 2)
		reqID := f.submit(t, itemID)

		require.NoError(t, f.cmds.RejectRequest(ctx, reqID))

		assert.Equal(t, "rejected", f.status(t, reqID))
		assert.Equal(t, 2, f.available(t, itemID))
	})

	t.Run("却下済みの再却下は不正遷移", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 2, 2)
		reqID := f.submit(t, itemID)
		require.NoError(t, f.cmds.RejectRequest(ctx, reqID))

		require.ErrorIs(t, f.cmds.RejectRequest(ctx, reqID), errs.ErrInvalidTransition)
	})

	t.Run("承認済みの却下は不正遷移", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 2, 2)
		reqID := f.submit(t, itemID)
		require.NoError(t, f.cmds.ApproveRequest(ctx, reqID, f.approver, nil))

		require.ErrorIs(t, f.cmds.RejectRequest(ctx, reqID), errs.ErrInvalidTransition)
		assert.Equal(t, 1, f.available(t, itemID))
	})

	t.Run("物品が削除されていても却下できる", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 2, 2)
		reqID := f.submit(t, itemID)
		require.NoError(t, f.catalog.DeleteItem(ctx, itemID))

		require.NoError(t, f.cmds.RejectRequest(ctx, reqID))
		assert.Equal(t, "rejected", f.status(t, reqID))
	})
}

// =============================================================================
// Return
// =============================================================================

func TestReturnRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("返却で在庫が戻る", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 5, 5)
		reqID := f.submit(t, itemID)
		require.NoError(t, f.cmds.ApproveRequest(ctx, reqID, f.approver, nil))

		res, err := f.cmds.ReturnRequest(ctx, reqID)

		require.NoError(t, err)
		assert.False(t, res.Clamped)
		assert.Equal(t, "returned", f.status(t, reqID))
		assert.Equal(t, 5, f.available(t, itemID))
	})

	t.Run("貸出中に数量を5から3へ減らしても整合する", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 5, 5)
		ids := []uuid.UUID{f.submit(t, itemID), f.submit(t, itemID), f.submit(t, itemID)}
		for _, id := range ids {
			require.NoError(t, f.cmds.ApproveRequest(ctx, id, f.approver, nil))
		}
		require.Equal(t, 2, f.available(t, itemID))

		quantity := 3
		require.NoError(t, f.catalog.UpdateItem(ctx, itemID, commands.ItemPatch{Quantity: &quantity}))
		require.Equal(t, 0, f.available(t, itemID))

		for i, id := range ids {
			res, err := f.cmds.ReturnRequest(ctx, id)
			require.NoError(t, err)
			assert.False(t, res.Clamped)
			assert.Equal(t, i+1, f.available(t, itemID))
		}
	})

	t.Run("available が上限の場合はクランプしてジョブを積む", func(t *testing.T) {
		f := newLendingFixture(t)
		itemB := builder.NewItemBuilder().WithStock(2, 2)
		reqB := builder.NewRequestBuilder().
			ForItem(itemB.ID, itemB.Name).
			ByRequester(f.requester, "Mina Park").
			Approved("Ana Alvarez", baseTime.Add(time.Hour))
		f.store.Load([]memstore.ItemRecord{itemB.BuildRecord()}, []memstore.RequestRecord{reqB.BuildRecord()})

		res, err := f.cmds.ReturnRequest(ctx, reqB.ID)

		require.NoError(t, err)
		assert.True(t, res.Clamped)
		assert.Equal(t, 2, f.available(t, itemB.ID))
		assert.Equal(t, "returned", f.status(t, reqB.ID))
		assert.ElementsMatch(t, []string{shared.EventRequestReturned, shared.EventInventoryClamped}, f.queuedKinds(t))
	})

	t.Run("pending の返却は不正遷移", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		reqID := f.submit(t, itemID)

		_, err := f.cmds.ReturnRequest(ctx, reqID)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("返却済みの再返却は不正遷移", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		reqID := f.submit(t, itemID)
		require.NoError(t, f.cmds.ApproveRequest(ctx, reqID, f.approver, nil))
		_, err := f.cmds.ReturnRequest(ctx, reqID)
		require.NoError(t, err)

		_, err = f.cmds.ReturnRequest(ctx, reqID)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, 1, f.available(t, itemID))
	})

	t.Run("物品削除済みの返却はNotFoundでロールバック", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		reqID := f.submit(t, itemID)
		require.NoError(t, f.cmds.ApproveRequest(ctx, reqID, f.approver, nil))
		require.NoError(t, f.catalog.DeleteItem(ctx, itemID))

		_, err := f.cmds.ReturnRequest(ctx, reqID)

		require.ErrorIs(t, err, errs.ErrNotFound)
		assert.Equal(t, "approved", f.status(t, reqID))
	})
}

// =============================================================================
// Amend due date
// =============================================================================

func TestAmendDueDate(t *testing.T) {
	ctx := context.Background()

	t.Run("承認済みの期限変更", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		reqID := f.submit(t, itemID)
		require.NoError(t, f.cmds.ApproveRequest(ctx, reqID, f.approver, nil))

		next := baseTime.Add(10 * 24 * time.Hour)
		require.NoError(t, f.cmds.AmendDueDate(ctx, reqID, next))

		v, err := f.store.Requests().FindByID(ctx, reqID)
		require.NoError(t, err)
		assert.Equal(t, next, *v.DueAt)
		assert.Equal(t, "approved", v.Status)
		assert.Equal(t, 0, f.available(t, itemID))
	})

	t.Run("pending の期限変更は状態エラー", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		reqID := f.submit(t, itemID)

		err := f.cmds.AmendDueDate(ctx, reqID, baseTime.Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("過去の期限はバリデーションエラー", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 1, 1)
		reqID := f.submit(t, itemID)
		require.NoError(t, f.cmds.ApproveRequest(ctx, reqID, f.approver, nil))

		f.clock.Add(24 * time.Hour)
		err := f.cmds.AmendDueDate(ctx, reqID, baseTime.Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestInventoryConservation(t *testing.T) {
	ctx := context.Background()

	t.Run("ランダムな操作列でも貸出数と在庫が一致", func(t *testing.T) {
		f := newLendingFixture(t)
		itemID := f.addItem(t, 3, 3)
		rng := rand.New(rand.NewPCG(7, 11))

		var requests []uuid.UUID
		pick := func(status string) (uuid.UUID, bool) {
			var ids []uuid.UUID
			for _, id := range requests {
				if f.status(t, id) == status {
					ids = append(ids, id)
				}
			}
			if len(ids) == 0 {
				return uuid.Nil, false
			}
			return ids[rng.IntN(len(ids))], true
		}

		for step := range 200 {
			switch rng.IntN(5) {
			case 0:
				requests = append(requests, f.submit(t, itemID))
			case 1:
				if id, ok := pick(string(lending.StatusPending)); ok {
					err := f.cmds.ApproveRequest(ctx, id, f.approver, nil)
					if err != nil {
						require.ErrorIs(t, err, errs.ErrInsufficientAvailability, "step %d", step)
					}
				}
			case 2:
				if id, ok := pick(string(lending.StatusPending)); ok {
					require.NoError(t, f.cmds.RejectRequest(ctx, id), "step %d", step)
				}
			case 3:
				if id, ok := pick(string(lending.StatusApproved)); ok {
					_, err := f.cmds.ReturnRequest(ctx, id)
					require.NoError(t, err, "step %d", step)
				}
			case 4:
				quantity := rng.IntN(6)
				err := f.catalog.UpdateItem(ctx, itemID, commands.ItemPatch{Quantity: &quantity})
				if err != nil {
					require.ErrorIs(t, err, errs.ErrValidation, "step %d", step)
				}
			}

			item, err := f.store.Items().FindByID(ctx, itemID)
			require.NoError(t, err)
			approved := 0
			for _, id := range requests {
				if f.status(t, id) == string(lending.StatusApproved) {
					approved++
				}
			}
			require.GreaterOrEqual(t, item.Available, 0, "step %d", step)
			require.LessOrEqual(t, item.Available, item.Quantity, "step %d", step)
			require.Equal(t, approved, item.Quantity-item.Available, "step %d", step)
		}
	})
}
