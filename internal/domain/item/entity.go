package item

import (
	"time"

	"lending-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errs.New("item name cannot be empty")
	ErrNameTooLong        = errs.New("item name exceeds maximum length")
	ErrEmptyCategory      = errs.New("item category cannot be empty")
	ErrCategoryTooLong    = errs.New("item category exceeds maximum length")
	ErrInvalidImageURL    = errs.New("item image url must be an absolute http(s) url")
	ErrNegativeQuantity   = errs.New("item quantity cannot be negative")
	ErrNegativeAvailable  = errs.New("quantity change would leave available below zero")
	ErrAvailableOverflow  = errs.New("available cannot exceed quantity")
	ErrNoUnitAvailable    = errs.New("no unit of the item is available")
	ErrInventoryCorrupted = errs.New("item inventory counts are inconsistent")
	ErrNotFound           = errs.New("item not found")
)

// Item is a catalog entry. Invariant: 0 <= available <= quantity.
type Item struct {
	id        uuid.UUID
	name      Name
	category  Category
	imageURL  ImageURL
	quantity  int
	available int
	createdAt time.Time
	updatedAt time.Time
}

func NewItem(name Name, category Category, imageURL ImageURL, quantity int, now time.Time) (*Item, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	return &Item{
		id:        uuid.New(),
		name:      name,
		category:  category,
		imageURL:  imageURL,
		quantity:  quantity,
		available: quantity,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructItem(id uuid.UUID, name Name, category Category, imageURL ImageURL, quantity, available int, createdAt, updatedAt time.Time) (*Item, error) {
	if quantity < 0 || available < 0 || available > quantity {
		return nil, ErrInventoryCorrupted
	}
	return &Item{
		id:        id,
		name:      name,
		category:  category,
		imageURL:  imageURL,
		quantity:  quantity,
		available: available,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) Name() Name           { return i.name }
func (i *Item) Category() Category   { return i.category }
func (i *Item) ImageURL() ImageURL   { return i.imageURL }
func (i *Item) Quantity() int        { return i.quantity }
func (i *Item) Available() int       { return i.available }
func (i *Item) OnLoan() int          { return i.quantity - i.available }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

func (i *Item) Rename(name Name, now time.Time) {
	i.name = name
	i.updatedAt = now
}

func (i *Item) Recategorize(category Category, now time.Time) {
	i.category = category
	i.updatedAt = now
}

func (i *Item) ChangeImage(imageURL ImageURL, now time.Time) {
	i.imageURL = imageURL
	i.updatedAt = now
}

// ChangeQuantity moves available by the same signed delta as quantity, so units
// currently on loan stay accounted for. It returns the applied delta.
func (i *Item) ChangeQuantity(newQuantity int, now time.Time) (int, error) {
	if newQuantity < 0 {
		return 0, ErrNegativeQuantity
	}
	delta := newQuantity - i.quantity
	if i.available+delta < 0 {
		return 0, ErrNegativeAvailable
	}
	i.quantity = newQuantity
	i.available += delta
	i.updatedAt = now
	return delta, nil
}

func (i *Item) TakeUnit(now time.Time) error {
	if i.available < 1 {
		return ErrNoUnitAvailable
	}
	i.available--
	i.updatedAt = now
	return nil
}

// ReturnUnit reports clamped=true when available was already at quantity,
// which happens after quantity was lowered while units were on loan.
func (i *Item) ReturnUnit(now time.Time) (clamped bool) {
	i.updatedAt = now
	if i.available >= i.quantity {
		i.available = i.quantity
		return true
	}
	i.available++
	return false
}
