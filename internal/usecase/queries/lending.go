package queries

import (
	"context"
	"time"

	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/pkg/clock"
	"lending-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor = errs.New("invalid cursor")
	ErrRequestAccess = errs.New("request belongs to another requester")
)

//go:generate mockgen -source=lending.go -destination=../../../tests/mock/queries/lending_mock.go -package=queriesmock

type RequestFilter struct {
	RequesterID *uuid.UUID
	ItemID      *uuid.UUID
	Status      *lending.Status
}

// Viewer is who is asking. Requesters only ever see their own requests.
type Viewer struct {
	ID   uuid.UUID
	Role user.Role
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	// List returns up to limit rows ordered by created_at DESC, id DESC,
	// strictly after the keyset when one is given.
	List(ctx context.Context, filter RequestFilter, after *Keyset, limit int) ([]*RequestView, error)
	CountByStatus(ctx context.Context) (map[lending.Status]int, error)
	CountOverdue(ctx context.Context, now time.Time) (int, error)
}

type LendingQueries interface {
	GetRequest(ctx context.Context, id uuid.UUID, viewer Viewer) (*RequestView, error)
	ListRequests(ctx context.Context, filter RequestFilter, viewer Viewer, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error)
	Summary(ctx context.Context) (*SummaryView, error)
}

type lendingQueriesImpl struct {
	requests RequestReadStore
	items    ItemReadStore
	clock    clock.Clock
}

func NewLendingQueries(requests RequestReadStore, items ItemReadStore, clk clock.Clock) LendingQueries {
	return &lendingQueriesImpl{requests: requests, items: items, clock: clk}
}

func (q *lendingQueriesImpl) GetRequest(ctx context.Context, id uuid.UUID, viewer Viewer) (*RequestView, error) {
	view, err := q.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(lending.ErrNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	if !viewer.Role.CanApprove() && view.RequesterID != viewer.ID {
		return nil, errs.Mark(ErrRequestAccess, errs.ErrForbidden)
	}
	q.decorate(view)
	return view, nil
}

func (q *lendingQueriesImpl) ListRequests(ctx context.Context, filter RequestFilter, viewer Viewer, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	if !viewer.Role.CanApprove() {
		filter.RequesterID = &viewer.ID
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, nil, errs.Mark(lending.ErrInvalidStatus, errs.ErrValidation)
	}

	limit = ValidateLimit(limit)
	var after *Keyset
	if cursor != nil && cursor.After != "" {
		k, derr := DecodeKeyset(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(ErrInvalidCursor, errs.ErrValidation)
		}
		after = &k
	}

	rows, err := q.requests.List(ctx, filter, after, limit+1)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeKeyset(Keyset{CreatedAt: last.CreatedAt, ID: last.ID})}
		rows = rows[:limit]
	}
	for _, row := range rows {
		q.decorate(row)
	}
	return rows, next, nil
}

func (q *lendingQueriesImpl) Summary(ctx context.Context) (*SummaryView, error) {
	totals, err := q.items.Totals(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := q.requests.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	overdue, err := q.requests.CountOverdue(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}

	return &SummaryView{
		ItemCount:      totals.ItemCount,
		TotalQuantity:  totals.TotalQuantity,
		TotalAvailable: totals.TotalAvailable,
		OnLoan:         totals.TotalQuantity - totals.TotalAvailable,
		Pending:        counts[lending.StatusPending],
		Approved:       counts[lending.StatusApproved],
		Rejected:       counts[lending.StatusRejected],
		Returned:       counts[lending.StatusReturned],
		Overdue:        overdue,
	}, nil
}

func (q *lendingQueriesImpl) decorate(view *RequestView) {
	view.Overdue = view.Status == lending.StatusApproved.String() &&
		view.DueAt != nil && q.clock.Now().After(*view.DueAt)
}
