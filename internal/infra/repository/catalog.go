package repository

import (
	"context"
	"time"

	"lending-ledger/internal/domain/item"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/infra/repository/converter"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/repository/catalog_mock.go -package=repositorymock
type CatalogWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) error
	GetItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Item, error)
	ItemExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	UpdateItemDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemDetailsParams) (int64, error)
	DeleteItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	TakeItemUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.TakeItemUnitParams) (int64, error)
	ReturnItemUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.ReturnItemUnitParams) (bool, error)
	CountItems(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogWriteQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) Create(ctx context.Context, it *item.Item) error {
	if err := r.queries.CreateItem(ctx, r.db, converter.ItemToCreateParams(it)); err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	row, err := r.queries.GetItem(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("item not found", err, item.ErrNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	it, err := converter.ItemFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert item row", err)
	}
	return it, nil
}

// Update applies quantityDelta in SQL against the current row, so units
// lent out between FindByID and Update are not overwritten.
func (r *CatalogRepository) Update(ctx context.Context, it *item.Item, quantityDelta int) error {
	rows, err := r.queries.UpdateItemDetails(ctx, r.db, converter.ItemToUpdateParams(it, quantityDelta))
	if err != nil {
		if pgconv.IsCheckViolation(err) {
			return errs.Mark(infra.WrapRepoErr("item quantity update violates inventory bounds", err), item.ErrNegativeAvailable)
		}
		return infra.WrapRepoErr("failed to update item", err)
	}
	if rows == 0 {
		return r.missingOr(ctx, it.ID(), item.ErrNegativeAvailable)
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := r.queries.DeleteItem(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if rows == 0 {
		return infra.NotFound("item not found", nil, item.ErrNotFound)
	}
	return nil
}

func (r *CatalogRepository) TakeUnit(ctx context.Context, id uuid.UUID, now time.Time) error {
	rows, err := r.queries.TakeItemUnit(ctx, r.db, sqlc.TakeItemUnitParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to take item unit", err)
	}
	if rows == 0 {
		return r.missingOr(ctx, id, item.ErrNoUnitAvailable)
	}
	return nil
}

func (r *CatalogRepository) ReturnUnit(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	clamped, err := r.queries.ReturnItemUnit(ctx, r.db, sqlc.ReturnItemUnitParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, infra.NotFound("item not found", err, item.ErrNotFound)
		}
		return false, infra.WrapRepoErr("failed to return item unit", err)
	}
	return clamped, nil
}

func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	n, err := r.queries.CountItems(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count items", err)
	}
	return int(n), nil
}

// missingOr distinguishes a conditional write that matched nothing because
// the row is gone from one whose guard failed.
func (r *CatalogRepository) missingOr(ctx context.Context, id uuid.UUID, guardErr error) error {
	exists, err := r.queries.ItemExists(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to check item existence", err)
	}
	if !exists {
		return infra.NotFound("item not found", nil, item.ErrNotFound)
	}
	return errs.Mark(infra.WrapRepoErr("conditional item write matched no row", nil, infra.KindConflict), guardErr)
}
