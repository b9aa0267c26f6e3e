package memstore

import (
	"context"
	"time"

	"lending-ledger/internal/domain/item"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type catalog struct {
	st *state
}

func (c *catalog) Create(_ context.Context, it *item.Item) error {
	if _, exists := c.st.items[it.ID()]; exists {
		return infra.WrapRepoErr("item already exists", nil, infra.KindDuplicateKey)
	}
	c.st.items[it.ID()] = itemRecordFrom(it)
	return nil
}

func (c *catalog) FindByID(_ context.Context, id uuid.UUID) (*item.Item, error) {
	rec, ok := c.st.items[id]
	if !ok {
		return nil, infra.NotFound("item not found", nil, item.ErrNotFound)
	}
	it, err := rec.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert item record", err)
	}
	return it, nil
}

func (c *catalog) Update(_ context.Context, it *item.Item, quantityDelta int) error {
	rec, ok := c.st.items[it.ID()]
	if !ok {
		return infra.NotFound("item not found", nil, item.ErrNotFound)
	}
	if rec.Available+quantityDelta < 0 {
		return errs.Mark(
			infra.WrapRepoErr("conditional item write matched no row", nil, infra.KindConflict),
			item.ErrNegativeAvailable,
		)
	}
	rec.Name = it.Name().String()
	rec.Category = it.Category().String()
	rec.ImageURL = it.ImageURL().String()
	rec.Quantity += quantityDelta
	rec.Available += quantityDelta
	rec.UpdatedAt = it.UpdatedAt()
	c.st.items[rec.ID] = rec
	return nil
}

func (c *catalog) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := c.st.items[id]; !ok {
		return infra.NotFound("item not found", nil, item.ErrNotFound)
	}
	delete(c.st.items, id)
	return nil
}

func (c *catalog) TakeUnit(_ context.Context, id uuid.UUID, now time.Time) error {
	rec, ok := c.st.items[id]
	if !ok {
		return infra.NotFound("item not found", nil, item.ErrNotFound)
	}
	if rec.Available <= 0 {
		return errs.Mark(
			infra.WrapRepoErr("conditional item write matched no row", nil, infra.KindConflict),
			item.ErrNoUnitAvailable,
		)
	}
	rec.Available--
	rec.UpdatedAt = now
	c.st.items[id] = rec
	return nil
}

func (c *catalog) ReturnUnit(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	rec, ok := c.st.items[id]
	if !ok {
		return false, infra.NotFound("item not found", nil, item.ErrNotFound)
	}
	clamped := rec.Available+1 > rec.Quantity
	rec.Available = min(rec.Available+1, rec.Quantity)
	rec.UpdatedAt = now
	c.st.items[id] = rec
	return clamped, nil
}

func (c *catalog) Count(_ context.Context) (int, error) {
	return len(c.st.items), nil
}

func itemRecordFrom(it *item.Item) ItemRecord {
	return ItemRecord{
		ID:        it.ID(),
		Name:      it.Name().String(),
		Category:  it.Category().String(),
		ImageURL:  it.ImageURL().String(),
		Quantity:  it.Quantity(),
		Available: it.Available(),
		CreatedAt: it.CreatedAt(),
		UpdatedAt: it.UpdatedAt(),
	}
}

func (r ItemRecord) toDomain() (*item.Item, error) {
	name, err := item.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	category, err := item.NewCategory(r.Category)
	if err != nil {
		return nil, err
	}
	imageURL, err := item.NewImageURL(r.ImageURL)
	if err != nil {
		return nil, err
	}
	return item.ReconstructItem(r.ID, name, category, imageURL, r.Quantity, r.Available, r.CreatedAt, r.UpdatedAt)
}
