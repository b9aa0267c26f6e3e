package lending

import (
	"strings"
	"time"

	"lending-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus         = errs.New("invalid lending status")
	ErrInvalidTransition     = errs.New("lending request cannot move to the requested status")
	ErrNotApproved           = errs.New("due date can only be changed while the request is approved")
	ErrDueDateInPast         = errs.New("due date must be in the future")
	ErrJustificationRequired = errs.New("justification is required")
	ErrJustificationTooLong  = errs.New("justification exceeds maximum length")
	ErrGroupRequired         = errs.New("requester group is required")
	ErrGroupTooLong          = errs.New("requester group exceeds maximum length")
	ErrRequesterRequired     = errs.New("requester id and name are required")
	ErrItemRequired          = errs.New("item id and name are required")
	ErrApproverRequired      = errs.New("approver name is required")
	ErrNotFound              = errs.New("lending request not found")
	// ErrStatusChanged is returned by stores when a conditional write finds
	// the request no longer in the status it was read in.
	ErrStatusChanged         = errs.New("lending request status changed concurrently")
)

type Requester struct {
	ID   uuid.UUID
	Name string
}

type ItemRef struct {
	ID   uuid.UUID
	Name string
}

// Request is one requester's ask for one unit of one item.
// Requester, item snapshot and createdAt never change after creation.
type Request struct {
	id            uuid.UUID
	requester     Requester
	group         Group
	item          ItemRef
	justification Justification
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
	dueAt         *time.Time
	approvedBy    *string
}

func NewRequest(requester Requester, group Group, item ItemRef, justification Justification, now time.Time) (*Request, error) {
	requester.Name = strings.TrimSpace(requester.Name)
	if requester.ID == uuid.Nil || requester.Name == "" {
		return nil, ErrRequesterRequired
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.ID == uuid.Nil || item.Name == "" {
		return nil, ErrItemRequired
	}
	return &Request{
		id:            uuid.New(),
		requester:     requester,
		group:         group,
		item:          item,
		justification: justification,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructRequest(
	id uuid.UUID,
	requester Requester,
	group Group,
	item ItemRef,
	justification Justification,
	status Status,
	createdAt, updatedAt time.Time,
	dueAt *time.Time,
	approvedBy *string,
) *Request {
	return &Request{
		id:            id,
		requester:     requester,
		group:         group,
		item:          item,
		justification: justification,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		dueAt:         dueAt,
		approvedBy:    approvedBy,
	}
}

// Approve moves pending -> approved. A nil dueAt defaults to now + loanPeriod.
func (r *Request) Approve(now time.Time, dueAt *time.Time, loanPeriod time.Duration, approverName string) error {
	if !r.status.CanTransitionTo(StatusApproved) {
		return ErrInvalidTransition
	}
	approverName = strings.TrimSpace(approverName)
	if approverName == "" {
		return ErrApproverRequired
	}
	due, err := resolveDueDate(now, dueAt, loanPeriod)
	if err != nil {
		return err
	}
	r.status = StatusApproved
	r.dueAt = &due
	r.approvedBy = &approverName
	r.updatedAt = now
	return nil
}

func (r *Request) Reject(now time.Time) error {
	if !r.status.CanTransitionTo(StatusRejected) {
		return ErrInvalidTransition
	}
	r.status = StatusRejected
	r.updatedAt = now
	return nil
}

func (r *Request) Return(now time.Time) error {
	if !r.status.CanTransitionTo(StatusReturned) {
		return ErrInvalidTransition
	}
	r.status = StatusReturned
	r.updatedAt = now
	return nil
}

// AmendDueDate is metadata only: the status stays approved.
func (r *Request) AmendDueDate(now time.Time, dueAt time.Time) error {
	if r.status != StatusApproved {
		return ErrNotApproved
	}
	if !dueAt.After(now) {
		return ErrDueDateInPast
	}
	r.dueAt = &dueAt
	r.updatedAt = now
	return nil
}

func (r *Request) IsOverdue(now time.Time) bool {
	return r.status == StatusApproved && r.dueAt != nil && now.After(*r.dueAt)
}

func (r *Request) ID() uuid.UUID                { return r.id }
func (r *Request) Requester() Requester         { return r.requester }
func (r *Request) Group() Group                 { return r.group }
func (r *Request) Item() ItemRef                { return r.item }
func (r *Request) Justification() Justification { return r.justification }
func (r *Request) Status() Status               { return r.status }
func (r *Request) CreatedAt() time.Time         { return r.createdAt }
func (r *Request) UpdatedAt() time.Time         { return r.updatedAt }
func (r *Request) DueAt() *time.Time            { return r.dueAt }
func (r *Request) ApprovedBy() *string          { return r.approvedBy }

func resolveDueDate(now time.Time, dueAt *time.Time, loanPeriod time.Duration) (time.Time, error) {
	if dueAt == nil {
		if loanPeriod <= 0 {
			loanPeriod = DefaultLoanPeriod
		}
		return now.Add(loanPeriod), nil
	}
	if !dueAt.After(now) {
		return time.Time{}, ErrDueDateInPast
	}
	return *dueAt, nil
}
