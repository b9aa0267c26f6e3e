package readstore

import (
	"context"

	"lending-ledger/internal/infra"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/pkg/pgconv"
	"lending-ledger/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=item.go -destination=../../../tests/mock/readstore/item_mock.go -package=readstoremock
type ItemReadQueries interface {
	GetItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Item, error)
	GetInventoryTotals(ctx context.Context, db sqlc.DBTX) (sqlc.GetInventoryTotalsRow, error)
}

var itemColumns = []any{"id", "name", "category", "image_url", "quantity", "available", "created_at", "updated_at"}

type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := s.queries.GetItem(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return toItemView(row), nil
}

func (s *ItemReadStore) List(ctx context.Context, filter queries.ItemFilter) ([]*queries.ItemView, error) {
	sqlQuery, args, err := buildItemListQuery(filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item list query", err)
	}

	rows, err := s.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ItemView, error) {
		var it sqlc.Item
		if scanErr := row.Scan(
			&it.ID, &it.Name, &it.Category, &it.ImageUrl,
			&it.Quantity, &it.Available, &it.CreatedAt, &it.UpdatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		return toItemView(it), nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan items", err)
	}
	return items, nil
}

func (s *ItemReadStore) Totals(ctx context.Context) (*queries.InventoryTotals, error) {
	row, err := s.queries.GetInventoryTotals(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load inventory totals", err)
	}
	return &queries.InventoryTotals{
		ItemCount:      int(row.ItemCount),
		TotalQuantity:  int(row.TotalQuantity),
		TotalAvailable: int(row.TotalAvailable),
	}, nil
}

func buildItemListQuery(filter queries.ItemFilter) (string, []any, error) {
	ds := dialect.From("items").
		Prepared(true).
		Select(itemColumns...).
		Order(goqu.I("name").Asc(), goqu.I("id").Asc())

	if filter.Category != "" {
		ds = ds.Where(goqu.C("category").Eq(filter.Category))
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		ds = ds.Where(goqu.Or(
			goqu.C("name").ILike(pattern),
			goqu.C("category").ILike(pattern),
		))
	}

	sqlQuery, args, err := ds.ToSQL()
	if err != nil {
		return "", nil, errs.Wrap(err, "goqu")
	}
	return sqlQuery, args, nil
}

func toItemView(row sqlc.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:        row.ID,
		Name:      row.Name,
		Category:  row.Category,
		ImageURL:  pgconv.StringPtrFromPgtype(row.ImageUrl),
		Quantity:  int(row.Quantity),
		Available: int(row.Available),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
