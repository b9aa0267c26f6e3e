package memstore

import (
	"context"

	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type ledger struct {
	st *state
}

func (l *ledger) Create(_ context.Context, req *lending.Request) error {
	if _, exists := l.st.requests[req.ID()]; exists {
		return infra.WrapRepoErr("lending request already exists", nil, infra.KindDuplicateKey)
	}
	l.st.requests[req.ID()] = RequestRecord{
		ID:             req.ID(),
		RequesterID:    req.Requester().ID,
		RequesterName:  req.Requester().Name,
		RequesterGroup: req.Group().String(),
		ItemID:         req.Item().ID,
		ItemName:       req.Item().Name,
		Justification:  req.Justification().String(),
		Status:         req.Status().String(),
		DueAt:          req.DueAt(),
		ApprovedBy:     req.ApprovedBy(),
		CreatedAt:      req.CreatedAt(),
		UpdatedAt:      req.UpdatedAt(),
	}
	return nil
}

func (l *ledger) FindByID(_ context.Context, id uuid.UUID) (*lending.Request, error) {
	rec, ok := l.st.requests[id]
	if !ok {
		return nil, infra.NotFound("lending request not found", nil, lending.ErrNotFound)
	}
	req, err := rec.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert lending request record", err)
	}
	return req, nil
}

func (l *ledger) ApplyTransition(_ context.Context, req *lending.Request, expected lending.Status) error {
	rec, ok := l.st.requests[req.ID()]
	if !ok || rec.Status != expected.String() {
		return errs.Mark(
			infra.WrapRepoErr("lending request is no longer "+expected.String(), nil, infra.KindConflict),
			lending.ErrStatusChanged,
		)
	}
	rec.Status = req.Status().String()
	rec.DueAt = req.DueAt()
	rec.ApprovedBy = req.ApprovedBy()
	rec.UpdatedAt = req.UpdatedAt()
	l.st.requests[rec.ID] = rec
	return nil
}

func (l *ledger) UpdateDueDate(_ context.Context, req *lending.Request) error {
	rec, ok := l.st.requests[req.ID()]
	if !ok || rec.Status != lending.StatusApproved.String() {
		return errs.Mark(
			infra.WrapRepoErr("lending request is no longer approved", nil, infra.KindConflict),
			lending.ErrStatusChanged,
		)
	}
	rec.DueAt = req.DueAt()
	rec.UpdatedAt = req.UpdatedAt()
	l.st.requests[rec.ID] = rec
	return nil
}

func (r RequestRecord) toDomain() (*lending.Request, error) {
	status, err := lending.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	group, err := lending.NewGroup(r.RequesterGroup)
	if err != nil {
		return nil, err
	}
	justification, err := lending.NewJustification(r.Justification)
	if err != nil {
		return nil, err
	}
	return lending.ReconstructRequest(
		r.ID,
		lending.Requester{ID: r.RequesterID, Name: r.RequesterName},
		group,
		lending.ItemRef{ID: r.ItemID, Name: r.ItemName},
		justification,
		status,
		r.CreatedAt,
		r.UpdatedAt,
		r.DueAt,
		r.ApprovedBy,
	), nil
}
