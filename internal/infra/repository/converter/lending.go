package converter

import (
	"lending-ledger/internal/domain/lending"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/pgconv"
)

func RequestToCreateParams(r *lending.Request) sqlc.CreateLendingRequestParams {
	return sqlc.CreateLendingRequestParams{
		ID:             r.ID(),
		RequesterID:    r.Requester().ID,
		RequesterName:  r.Requester().Name,
		RequesterGroup: r.Group().String(),
		ItemID:         r.Item().ID,
		ItemName:       r.Item().Name,
		Justification:  r.Justification().String(),
		Status:         r.Status().String(),
		DueAt:          pgconv.TimePtrToPgtype(r.DueAt()),
		ApprovedBy:     pgconv.StringPtrToPgtype(r.ApprovedBy()),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RequestToTransitionParams(r *lending.Request, expected lending.Status) sqlc.TransitionLendingRequestParams {
	return sqlc.TransitionLendingRequestParams{
		Status:         r.Status().String(),
		DueAt:          pgconv.TimePtrToPgtype(r.DueAt()),
		ApprovedBy:     pgconv.StringPtrToPgtype(r.ApprovedBy()),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
		ID:             r.ID(),
		ExpectedStatus: expected.String(),
	}
}

// RequestFromRow fails on a status outside the known set, which means the
// row was written by something other than this service.
func RequestFromRow(row sqlc.LendingRequest) (*lending.Request, error) {
	status, err := lending.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	group, err := lending.NewGroup(row.RequesterGroup)
	if err != nil {
		return nil, err
	}
	justification, err := lending.NewJustification(row.Justification)
	if err != nil {
		return nil, err
	}
	return lending.ReconstructRequest(
		row.ID,
		lending.Requester{ID: row.RequesterID, Name: row.RequesterName},
		group,
		lending.ItemRef{ID: row.ItemID, Name: row.ItemName},
		justification,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.DueAt),
		pgconv.StringPtrFromPgtype(row.ApprovedBy),
	), nil
}
