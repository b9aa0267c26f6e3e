package shared

import (
	"context"
	"time"

	"lending-ledger/internal/domain/item"
	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork runs fn atomically: every write made through tx is committed
// together or not at all. Implementations may call fn more than once when
// the store reports a retryable conflict, so fn must not keep side effects
// outside tx.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Catalog() Catalog
	Ledger() Ledger
	Users() UserRepository
	Outbox() Outbox
}

// Catalog is the write side of the item table.
type Catalog interface {
	Create(ctx context.Context, it *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	// Update persists descriptive fields and applies quantityDelta to both
	// quantity and available against the current stored row.
	Update(ctx context.Context, it *item.Item, quantityDelta int) error
	Delete(ctx context.Context, id uuid.UUID) error
	// TakeUnit decrements available only when it is positive.
	// Returns item.ErrNotFound or item.ErrNoUnitAvailable.
	TakeUnit(ctx context.Context, id uuid.UUID, now time.Time) error
	// ReturnUnit increments available, clamped at quantity.
	ReturnUnit(ctx context.Context, id uuid.UUID, now time.Time) (clamped bool, err error)
	Count(ctx context.Context) (int, error)
}

// Ledger is the write side of lending requests. Requests are never deleted.
type Ledger interface {
	Create(ctx context.Context, req *lending.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*lending.Request, error)
	// ApplyTransition writes the request's new status, due date and approver
	// only if the stored status still equals expected; otherwise it returns
	// lending.ErrStatusChanged.
	ApplyTransition(ctx context.Context, req *lending.Request, expected lending.Status) error
	UpdateDueDate(ctx context.Context, req *lending.Request) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type Outbox interface {
	Enqueue(ctx context.Context, job NotificationJob) error
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]NotificationJob, error)
	Lease(ctx context.Context, ids []uuid.UUID, until time.Time, now time.Time) error
	MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastErr string, terminal bool, retryAt time.Time, now time.Time) error
}

// Directory resolves user ids to the name and role shown on requests.
type Directory interface {
	Resolve(ctx context.Context, id uuid.UUID) (*Actor, error)
}
