package repository

import (
	"context"

	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/infra/repository/converter"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/repository/ledger_mock.go -package=repositorymock
type LedgerWriteQueries interface {
	CreateLendingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLendingRequestParams) error
	GetLendingRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LendingRequest, error)
	TransitionLendingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionLendingRequestParams) (int64, error)
	UpdateLendingRequestDueDate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLendingRequestDueDateParams) (int64, error)
}

type LedgerRepository struct {
	queries LedgerWriteQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerWriteQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LedgerRepository) Create(ctx context.Context, req *lending.Request) error {
	if err := r.queries.CreateLendingRequest(ctx, r.db, converter.RequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create lending request", err)
	}
	return nil
}

func (r *LedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*lending.Request, error) {
	row, err := r.queries.GetLendingRequest(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("lending request not found", err, lending.ErrNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lending request by ID", err)
	}

	req, err := converter.RequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert lending request row", err)
	}
	return req, nil
}

// ApplyTransition is the row's compare-and-set: the UPDATE takes the row
// lock and re-checks the status, so of two concurrent transitions from the
// same status exactly one matches.
func (r *LedgerRepository) ApplyTransition(ctx context.Context, req *lending.Request, expected lending.Status) error {
	rows, err := r.queries.TransitionLendingRequest(ctx, r.db, converter.RequestToTransitionParams(req, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to transition lending request", err)
	}
	if rows == 0 {
		return errs.Mark(
			infra.WrapRepoErr("lending request is no longer "+expected.String(), nil, infra.KindConflict),
			lending.ErrStatusChanged,
		)
	}
	return nil
}

func (r *LedgerRepository) UpdateDueDate(ctx context.Context, req *lending.Request) error {
	rows, err := r.queries.UpdateLendingRequestDueDate(ctx, r.db, sqlc.UpdateLendingRequestDueDateParams{
		ID:        req.ID(),
		DueAt:     pgconv.TimePtrToPgtype(req.DueAt()),
		UpdatedAt: pgconv.TimeToPgtype(req.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update lending request due date", err)
	}
	if rows == 0 {
		return errs.Mark(
			infra.WrapRepoErr("lending request is no longer approved", nil, infra.KindConflict),
			lending.ErrStatusChanged,
		)
	}
	return nil
}
