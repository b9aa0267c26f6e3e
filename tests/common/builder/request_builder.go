//go:build unit || e2e

package builder

import (
	"time"

	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/infra/memstore"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/pgconv"
	"lending-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID            uuid.UUID
	RequesterID   uuid.UUID
	RequesterName string
	Group         string
	ItemID        uuid.UUID
	ItemName      string
	Justification string
	Status        lending.Status
	DueAt         *time.Time
	ApprovedBy    *string
	CreatedAt     time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:            uuid.New(),
		RequesterID:   uuid.New(),
		RequesterName: "Mina Park",
		Group:         "Period 3",
		ItemID:        uuid.New(),
		ItemName:      "Canon EOS R50",
		Justification: "Yearbook photos for the spring concert",
		Status:        lending.StatusPending,
		CreatedAt:     fixedTime,
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) ForItem(itemID uuid.UUID, name string) *RequestBuilder {
	b.ItemID = itemID
	b.ItemName = name
	return b
}

func (b *RequestBuilder) ByRequester(id uuid.UUID, name string) *RequestBuilder {
	b.RequesterID = id
	b.RequesterName = name
	return b
}

// Approved marks the request approved by approver, due at dueAt.
func (b *RequestBuilder) Approved(approver string, dueAt time.Time) *RequestBuilder {
	b.Status = lending.StatusApproved
	b.ApprovedBy = &approver
	b.DueAt = &dueAt
	return b
}

func (b *RequestBuilder) WithStatus(status lending.Status) *RequestBuilder {
	b.Status = status
	return b
}

func (b *RequestBuilder) CreatedAtTime(t time.Time) *RequestBuilder {
	b.CreatedAt = t
	return b
}

func (b *RequestBuilder) BuildDomain() (*lending.Request, error) {
	group, err := lending.NewGroup(b.Group)
	if err != nil {
		return nil, err
	}
	justification, err := lending.NewJustification(b.Justification)
	if err != nil {
		return nil, err
	}
	return lending.ReconstructRequest(
		b.ID,
		lending.Requester{ID: b.RequesterID, Name: b.RequesterName},
		group,
		lending.ItemRef{ID: b.ItemID, Name: b.ItemName},
		justification,
		b.Status,
		b.CreatedAt,
		b.CreatedAt,
		b.DueAt,
		b.ApprovedBy,
	), nil
}

func (b *RequestBuilder) BuildRecord() memstore.RequestRecord {
	return memstore.RequestRecord{
		ID:             b.ID,
		RequesterID:    b.RequesterID,
		RequesterName:  b.RequesterName,
		RequesterGroup: b.Group,
		ItemID:         b.ItemID,
		ItemName:       b.ItemName,
		Justification:  b.Justification,
		Status:         b.Status.String(),
		DueAt:          b.DueAt,
		ApprovedBy:     b.ApprovedBy,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

func (b *RequestBuilder) BuildRow() sqlc.LendingRequest {
	return sqlc.LendingRequest{
		ID:             b.ID,
		RequesterID:    b.RequesterID,
		RequesterName:  b.RequesterName,
		RequesterGroup: b.Group,
		ItemID:         b.ItemID,
		ItemName:       b.ItemName,
		Justification:  b.Justification,
		Status:         b.Status.String(),
		DueAt:          pgconv.TimePtrToPgtype(b.DueAt),
		ApprovedBy:     pgconv.StringPtrToPgtype(b.ApprovedBy),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:      pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:             b.ID,
		RequesterID:    b.RequesterID,
		RequesterName:  b.RequesterName,
		RequesterGroup: b.Group,
		ItemID:         b.ItemID,
		ItemName:       b.ItemName,
		Justification:  b.Justification,
		Status:         b.Status.String(),
		DueAt:          b.DueAt,
		ApprovedBy:     b.ApprovedBy,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}
