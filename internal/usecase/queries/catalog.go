package queries

import (
	"context"
	"strings"

	"lending-ledger/internal/domain/item"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

// ItemFilter narrows the catalog listing. Search is a case-insensitive
// substring match on the item name.
type ItemFilter struct {
	Category string
	Search   string
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	List(ctx context.Context, filter ItemFilter) ([]*ItemView, error)
	Totals(ctx context.Context) (*InventoryTotals, error)
}

type CatalogQueries interface {
	GetItem(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]*ItemView, error)
}

type catalogQueriesImpl struct {
	store ItemReadStore
}

func NewCatalogQueries(store ItemReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetItem(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(item.ErrNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListItems(ctx context.Context, filter ItemFilter) ([]*ItemView, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)
	return q.store.List(ctx, filter)
}
