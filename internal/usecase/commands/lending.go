package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/pkg/clock"
	"lending-ledger/internal/pkg/config"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrApproverRoleRequired = errs.New("only approvers can approve requests")
)

type SubmitRequestInput struct {
	RequesterID    uuid.UUID
	RequesterName  string
	RequesterGroup string
	ItemID         uuid.UUID
	Justification  string
}

type ReturnResult struct {
	// Clamped reports that available was already at quantity, so the
	// return did not raise it.
	Clamped bool
}

//go:generate mockgen -source=lending.go -destination=../../../tests/mock/commands/lending_mock.go -package=commandsmock

// LendingCommands is the reservation engine: every transition of a lending
// request and the matching change to item availability commit together.
type LendingCommands interface {
	SubmitRequest(ctx context.Context, in SubmitRequestInput) (uuid.UUID, error)
	ApproveRequest(ctx context.Context, requestID, approverID uuid.UUID, dueAt *time.Time) error
	RejectRequest(ctx context.Context, requestID uuid.UUID) error
	ReturnRequest(ctx context.Context, requestID uuid.UUID) (*ReturnResult, error)
	AmendDueDate(ctx context.Context, requestID uuid.UUID, dueAt time.Time) error
}

type lendingCommandsImpl struct {
	uow        shared.UnitOfWork
	directory  shared.Directory
	clock      clock.Clock
	loanPeriod time.Duration
	logger     *slog.Logger
}

func NewLendingCommands(uow shared.UnitOfWork, directory shared.Directory, clk clock.Clock, cfg config.LendingConfig, logger *slog.Logger) LendingCommands {
	return &lendingCommandsImpl{
		uow:        uow,
		directory:  directory,
		clock:      clk,
		loanPeriod: cfg.DefaultLoanPeriod,
		logger:     logger,
	}
}

func (e *lendingCommandsImpl) SubmitRequest(ctx context.Context, in SubmitRequestInput) (uuid.UUID, error) {
	if in.RequesterID == uuid.Nil {
		return uuid.Nil, markKind(lending.ErrRequesterRequired)
	}
	if in.ItemID == uuid.Nil {
		return uuid.Nil, markKind(lending.ErrItemRequired)
	}
	justification, err := lending.NewJustification(in.Justification)
	if err != nil {
		return uuid.Nil, markKind(err)
	}

	name, groupName := in.RequesterName, in.RequesterGroup
	if name == "" || groupName == "" {
		actor, rerr := e.directory.Resolve(ctx, in.RequesterID)
		if rerr != nil {
			return uuid.Nil, markKind(rerr)
		}
		if name == "" {
			name = actor.DisplayName
		}
		if groupName == "" {
			groupName = actor.Group
		}
	}
	group, err := lending.NewGroup(groupName)
	if err != nil {
		return uuid.Nil, markKind(err)
	}

	now := e.now()
	var requestID uuid.UUID
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, ferr := tx.Catalog().FindByID(ctx, in.ItemID)
		if ferr != nil {
			return ferr
		}

		req, derr := lending.NewRequest(
			lending.Requester{ID: in.RequesterID, Name: name},
			group,
			lending.ItemRef{ID: it.ID(), Name: it.Name().String()},
			justification,
			now,
		)
		if derr != nil {
			return derr
		}
		if cerr := tx.Ledger().Create(ctx, req); cerr != nil {
			return cerr
		}
		requestID = req.ID()
		return enqueue(ctx, tx, shared.EventRequestSubmitted, lendingEvent(req, now), now)
	})
	if err != nil {
		return uuid.Nil, markKind(err)
	}

	e.logger.Info("lending request submitted",
		"request_id", requestID,
		"item_id", in.ItemID,
		"requester_id", in.RequesterID)
	return requestID, nil
}

// ApproveRequest writes the request row before the item row, as every
// engine path does. Two approvals of the same request therefore serialise
// on the request and the loser sees InvalidTransition; two requests racing
// for the last unit serialise on the item and the loser sees
// InsufficientAvailability.
func (e *lendingCommandsImpl) ApproveRequest(ctx context.Context, requestID, approverID uuid.UUID, dueAt *time.Time) error {
	approver, err := e.directory.Resolve(ctx, approverID)
	if err != nil {
		return markKind(err)
	}
	if !approver.Role.CanApprove() {
		return errs.Mark(ErrApproverRoleRequired, errs.ErrForbidden)
	}

	now := e.now()
	var approved *lending.Request
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ferr := tx.Ledger().FindByID(ctx, requestID)
		if ferr != nil {
			return ferr
		}
		if derr := req.Approve(now, dueAt, e.loanPeriod, approver.DisplayName); derr != nil {
			return derr
		}
		if terr := tx.Ledger().ApplyTransition(ctx, req, lending.StatusPending); terr != nil {
			return terr
		}
		if uerr := tx.Catalog().TakeUnit(ctx, req.Item().ID, now); uerr != nil {
			return uerr
		}
		approved = req
		return enqueue(ctx, tx, shared.EventRequestApproved, lendingEvent(req, now), now)
	})
	if err != nil {
		return markKind(err)
	}

	e.logger.Info("lending request approved",
		"request_id", requestID,
		"item_id", approved.Item().ID,
		"approver_id", approverID,
		"due_at", approved.DueAt())
	return nil
}

func (e *lendingCommandsImpl) RejectRequest(ctx context.Context, requestID uuid.UUID) error {
	now := e.now()
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ferr := tx.Ledger().FindByID(ctx, requestID)
		if ferr != nil {
			return ferr
		}
		if derr := req.Reject(now); derr != nil {
			return derr
		}
		if terr := tx.Ledger().ApplyTransition(ctx, req, lending.StatusPending); terr != nil {
			return terr
		}
		return enqueue(ctx, tx, shared.EventRequestRejected, lendingEvent(req, now), now)
	})
	if err != nil {
		return markKind(err)
	}

	e.logger.Info("lending request rejected", "request_id", requestID)
	return nil
}

func (e *lendingCommandsImpl) ReturnRequest(ctx context.Context, requestID uuid.UUID) (*ReturnResult, error) {
	now := e.now()
	var (
		returned *lending.Request
		clamped  bool
	)
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ferr := tx.Ledger().FindByID(ctx, requestID)
		if ferr != nil {
			return ferr
		}
		if derr := req.Return(now); derr != nil {
			return derr
		}
		if terr := tx.Ledger().ApplyTransition(ctx, req, lending.StatusApproved); terr != nil {
			return terr
		}
		c, uerr := tx.Catalog().ReturnUnit(ctx, req.Item().ID, now)
		if uerr != nil {
			return uerr
		}
		clamped = c
		returned = req

		if err := enqueue(ctx, tx, shared.EventRequestReturned, lendingEvent(req, now), now); err != nil {
			return err
		}
		if clamped {
			return enqueue(ctx, tx, shared.EventInventoryClamped, lendingEvent(req, now), now)
		}
		return nil
	})
	if err != nil {
		return nil, markKind(err)
	}

	if clamped {
		e.logger.Warn("return clamped: item availability was already at quantity",
			"request_id", requestID,
			"item_id", returned.Item().ID)
	}
	e.logger.Info("lending request returned", "request_id", requestID, "item_id", returned.Item().ID)
	return &ReturnResult{Clamped: clamped}, nil
}

func (e *lendingCommandsImpl) AmendDueDate(ctx context.Context, requestID uuid.UUID, dueAt time.Time) error {
	now := e.now()
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, ferr := tx.Ledger().FindByID(ctx, requestID)
		if ferr != nil {
			return ferr
		}
		if derr := req.AmendDueDate(now, dueAt); derr != nil {
			return derr
		}
		if uerr := tx.Ledger().UpdateDueDate(ctx, req); uerr != nil {
			if errs.Is(uerr, lending.ErrStatusChanged) {
				return errs.Mark(uerr, lending.ErrNotApproved)
			}
			return uerr
		}
		return enqueue(ctx, tx, shared.EventDueDateAmended, lendingEvent(req, now), now)
	})
	if err != nil {
		// a request that left approved concurrently is a state error here,
		// not a transition error
		if errs.Is(err, lending.ErrNotApproved) {
			return errs.Mark(err, errs.ErrInvalidState)
		}
		return markKind(err)
	}

	e.logger.Info("lending request due date amended", "request_id", requestID, "due_at", dueAt)
	return nil
}

// Timestamps are kept at microsecond precision so they survive a round
// trip through Postgres and through list cursors unchanged.
func (e *lendingCommandsImpl) now() time.Time {
	return e.clock.Now().UTC().Truncate(time.Microsecond)
}

func lendingEvent(req *lending.Request, now time.Time) shared.LendingEvent {
	return shared.LendingEvent{
		RequestID:     req.ID(),
		RequesterID:   req.Requester().ID,
		RequesterName: req.Requester().Name,
		ItemID:        req.Item().ID,
		ItemName:      req.Item().Name,
		Status:        req.Status().String(),
		DueAt:         req.DueAt(),
		ApprovedBy:    req.ApprovedBy(),
		OccurredAt:    now,
	}
}

func enqueue(ctx context.Context, tx shared.Tx, kind string, payload any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event payload")
	}
	return tx.Outbox().Enqueue(ctx, shared.NotificationJob{
		ID:        uuid.New(),
		Kind:      kind,
		Topic:     kind,
		Payload:   body,
		RunAt:     now,
		CreatedAt: now,
	})
}
