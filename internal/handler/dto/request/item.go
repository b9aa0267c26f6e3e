package request

import (
	"lending-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Category string `json:"category" binding:"required,max=100"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
	Quantity *int   `json:"quantity" binding:"required"`
}

func (r CreateItemRequest) ToInput() commands.CreateItemInput {
	return commands.CreateItemInput{
		Name:     r.Name,
		Category: r.Category,
		ImageURL: r.ImageURL,
		Quantity: *r.Quantity,
	}
}

// UpsertItemRequest creates the item when id is absent or unknown.
type UpsertItemRequest struct {
	ID       *uuid.UUID `json:"id"`
	Name     string     `json:"name" binding:"required,max=200"`
	Category string     `json:"category" binding:"required,max=100"`
	ImageURL string     `json:"imageUrl" binding:"omitempty,url"`
	Quantity *int       `json:"quantity" binding:"required"`
}

func (r UpsertItemRequest) ToInput() commands.UpsertItemInput {
	return commands.UpsertItemInput{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
		ImageURL: r.ImageURL,
		Quantity: *r.Quantity,
	}
}

type UpdateItemRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=200"`
	Category *string `json:"category" binding:"omitempty,max=100"`
	ImageURL *string `json:"imageUrl"`
	Quantity *int    `json:"quantity"`
}

func (r UpdateItemRequest) ToPatch() commands.ItemPatch {
	return commands.ItemPatch{
		Name:     r.Name,
		Category: r.Category,
		ImageURL: r.ImageURL,
		Quantity: r.Quantity,
	}
}
