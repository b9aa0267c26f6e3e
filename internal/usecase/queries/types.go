package queries

import (
	"time"

	"github.com/google/uuid"
)

// ItemView represents read-optimized catalog data
type ItemView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Quantity  int       `json:"quantity"`
	Available int       `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RequestView represents read-optimized lending request data
type RequestView struct {
	ID             uuid.UUID  `json:"id"`
	RequesterID    uuid.UUID  `json:"requester_id"`
	RequesterName  string     `json:"requester_name"`
	RequesterGroup string     `json:"requester_group"`
	ItemID         uuid.UUID  `json:"item_id"`
	ItemName       string     `json:"item_name"`
	Justification  string     `json:"justification"`
	Status         string     `json:"status"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	ApprovedBy     *string    `json:"approved_by,omitempty"`
	Overdue        bool       `json:"overdue"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Group     string    `json:"group"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}

func (u AuthorizedUserView) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

type InventoryTotals struct {
	ItemCount      int
	TotalQuantity  int
	TotalAvailable int
}

// SummaryView feeds the approver dashboard.
type SummaryView struct {
	ItemCount      int `json:"item_count"`
	TotalQuantity  int `json:"total_quantity"`
	TotalAvailable int `json:"total_available"`
	OnLoan         int `json:"on_loan"`
	Pending        int `json:"pending"`
	Approved       int `json:"approved"`
	Rejected       int `json:"rejected"`
	Returned       int `json:"returned"`
	Overdue        int `json:"overdue"`
}

// Keyset is the position after which a page starts, newest first.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}
