package shared

import (
	"time"

	"lending-ledger/internal/domain/user"

	"github.com/google/uuid"
)

type Actor struct {
	ID          uuid.UUID
	DisplayName string
	Group       string
	Role        user.Role
}

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    string
	LastError *string
	CreatedAt time.Time
}

// Event kinds written to the outbox alongside state changes. The kind is
// also used as the routing key.
const (
	EventRequestSubmitted = "lending.requested"
	EventRequestApproved  = "lending.approved"
	EventRequestRejected  = "lending.rejected"
	EventRequestReturned  = "lending.returned"
	EventDueDateAmended   = "lending.due_amended"
	EventInventoryClamped = "inventory.clamped"
	EventItemCreated      = "item.created"
	EventItemUpdated      = "item.updated"
	EventItemDeleted      = "item.deleted"
)

type LendingEvent struct {
	RequestID     uuid.UUID  `json:"requestId"`
	RequesterID   uuid.UUID  `json:"requesterId"`
	RequesterName string     `json:"requesterName"`
	ItemID        uuid.UUID  `json:"itemId"`
	ItemName      string     `json:"itemName"`
	Status        string     `json:"status"`
	DueAt         *time.Time `json:"dueAt,omitempty"`
	ApprovedBy    *string    `json:"approvedBy,omitempty"`
	OccurredAt    time.Time  `json:"occurredAt"`
}

type ItemEvent struct {
	ItemID     uuid.UUID `json:"itemId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Available  int       `json:"available"`
	OccurredAt time.Time `json:"occurredAt"`
}
