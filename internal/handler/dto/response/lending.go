package response

import (
	"time"

	"lending-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LendingRequestResponse struct {
	ID             uuid.UUID  `json:"id"`
	RequesterID    uuid.UUID  `json:"requesterId"`
	RequesterName  string     `json:"requesterName"`
	RequesterGroup string     `json:"requesterGroup"`
	ItemID         uuid.UUID  `json:"itemId"`
	ItemName       string     `json:"itemName"`
	Justification  string     `json:"justification"`
	Status         string     `json:"status"`
	DueAt          *time.Time `json:"dueAt,omitempty"`
	ApprovedBy     *string    `json:"approvedBy,omitempty"`
	Overdue        bool       `json:"overdue"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type LendingRequestListResponse struct {
	Items      []*LendingRequestResponse `json:"items"`
	NextCursor *string                   `json:"nextCursor,omitempty"`
}

type ReturnResponse struct {
	Clamped bool `json:"clamped"`
}

type SummaryResponse struct {
	ItemCount      int `json:"itemCount"`
	TotalQuantity  int `json:"totalQuantity"`
	TotalAvailable int `json:"totalAvailable"`
	OnLoan         int `json:"onLoan"`
	Pending        int `json:"pending"`
	Approved       int `json:"approved"`
	Rejected       int `json:"rejected"`
	Returned       int `json:"returned"`
	Overdue        int `json:"overdue"`
}

func FromRequestView(v *queries.RequestView) *LendingRequestResponse {
	res := &LendingRequestResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromRequestPage(views []*queries.RequestView, next *queries.Cursor) *LendingRequestListResponse {
	items := make([]*LendingRequestResponse, 0, len(views))
	for _, v := range views {
		items = append(items, FromRequestView(v))
	}
	res := &LendingRequestListResponse{Items: items}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}

func FromSummaryView(v *queries.SummaryView) *SummaryResponse {
	res := &SummaryResponse{}
	_ = copier.Copy(res, v)
	return res
}
