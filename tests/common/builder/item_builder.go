//go:build unit || e2e

package builder

import (
	"time"

	"lending-ledger/internal/domain/item"
	reqdto "lending-ledger/internal/handler/dto/request"
	"lending-ledger/internal/infra/memstore"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/pgconv"
	"lending-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

var fixedTime = time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)

type ItemBuilder struct {
	ID        uuid.UUID
	Name      string
	Category  string
	ImageURL  string
	Quantity  int
	Available int
	CreatedAt time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:        uuid.New(),
		Name:      "Canon EOS R50",
		Category:  "Cameras",
		ImageURL:  "https://images.example.com/eos-r50.jpg",
		Quantity:  5,
		Available: 5,
		CreatedAt: fixedTime,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

// WithStock sets quantity and available together.
func (b *ItemBuilder) WithStock(quantity, available int) *ItemBuilder {
	b.Quantity = quantity
	b.Available = available
	return b
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	name, err := item.NewName(b.Name)
	if err != nil {
		return nil, err
	}
	category, err := item.NewCategory(b.Category)
	if err != nil {
		return nil, err
	}
	imageURL, err := item.NewImageURL(b.ImageURL)
	if err != nil {
		return nil, err
	}
	return item.ReconstructItem(b.ID, name, category, imageURL, b.Quantity, b.Available, b.CreatedAt, b.CreatedAt)
}

func (b *ItemBuilder) BuildRecord() memstore.ItemRecord {
	return memstore.ItemRecord{
		ID:        b.ID,
		Name:      b.Name,
		Category:  b.Category,
		ImageURL:  b.ImageURL,
		Quantity:  b.Quantity,
		Available: b.Available,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *ItemBuilder) BuildRow() sqlc.Item {
	return sqlc.Item{
		ID:        b.ID,
		Name:      b.Name,
		Category:  b.Category,
		ImageUrl:  pgconv.OptionalStringToPgtype(b.ImageURL),
		Quantity:  pgconv.IntToInt32(b.Quantity),
		Available: pgconv.IntToInt32(b.Available),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	var imageURL *string
	if b.ImageURL != "" {
		u := b.ImageURL
		imageURL = &u
	}
	return &queries.ItemView{
		ID:        b.ID,
		Name:      b.Name,
		Category:  b.Category,
		ImageURL:  imageURL,
		Quantity:  b.Quantity,
		Available: b.Available,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *ItemBuilder) BuildCreateDTO() reqdto.CreateItemRequest {
	quantity := b.Quantity
	return reqdto.CreateItemRequest{
		Name:     b.Name,
		Category: b.Category,
		ImageURL: b.ImageURL,
		Quantity: &quantity,
	}
}
