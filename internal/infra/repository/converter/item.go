package converter

import (
	"lending-ledger/internal/domain/item"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/pgconv"
)

func ItemToCreateParams(it *item.Item) sqlc.CreateItemParams {
	return sqlc.CreateItemParams{
		ID:        it.ID(),
		Name:      it.Name().String(),
		Category:  it.Category().String(),
		ImageUrl:  pgconv.OptionalStringToPgtype(it.ImageURL().String()),
		Quantity:  pgconv.IntToInt32(it.Quantity()),
		Available: pgconv.IntToInt32(it.Available()),
		CreatedAt: pgconv.TimeToPgtype(it.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(it.UpdatedAt()),
	}
}

func ItemToUpdateParams(it *item.Item, quantityDelta int) sqlc.UpdateItemDetailsParams {
	return sqlc.UpdateItemDetailsParams{
		ID:            it.ID(),
		Name:          it.Name().String(),
		Category:      it.Category().String(),
		ImageUrl:      pgconv.OptionalStringToPgtype(it.ImageURL().String()),
		UpdatedAt:     pgconv.TimeToPgtype(it.UpdatedAt()),
		QuantityDelta: pgconv.IntToInt32(quantityDelta),
	}
}

func ItemFromRow(row sqlc.Item) (*item.Item, error) {
	name, err := item.NewName(row.Name)
	if err != nil {
		return nil, err
	}
	category, err := item.NewCategory(row.Category)
	if err != nil {
		return nil, err
	}
	imageURL, err := item.NewImageURL(pgconv.StringFromPgtype(row.ImageUrl))
	if err != nil {
		return nil, err
	}
	return item.ReconstructItem(
		row.ID,
		name,
		category,
		imageURL,
		int(row.Quantity),
		int(row.Available),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
