package request

import (
	"time"

	"github.com/google/uuid"
)

type SubmitLendingRequest struct {
	ItemID        uuid.UUID `json:"itemId" binding:"required"`
	Justification string    `json:"justification" binding:"required,max=2000"`
	// Group overrides the requester's registered group, e.g. a class section.
	Group string `json:"group" binding:"max=100"`
}

type ApproveLendingRequest struct {
	DueAt *time.Time `json:"dueAt"`
}

type AmendDueDateRequest struct {
	DueAt time.Time `json:"dueAt" binding:"required"`
}
