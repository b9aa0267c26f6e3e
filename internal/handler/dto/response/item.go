package response

import (
	"time"

	"lending-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	Quantity  int       `json:"quantity"`
	Available int       `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ItemIDResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	res := &ItemResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, 0, len(views))
	for _, v := range views {
		res = append(res, FromItemView(v))
	}
	return res
}
