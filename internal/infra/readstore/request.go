package readstore

import (
	"context"
	"time"

	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/infra"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/pkg/pgconv"
	"lending-ledger/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=request.go -destination=../../../tests/mock/readstore/request_mock.go -package=readstoremock
type RequestReadQueries interface {
	GetLendingRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LendingRequest, error)
	CountLendingRequestsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountLendingRequestsByStatusRow, error)
	CountOverdueLendingRequests(ctx context.Context, db sqlc.DBTX, dueAt pgtype.Timestamptz) (int64, error)
}

var requestColumns = []any{
	"id", "requester_id", "requester_name", "requester_group", "item_id", "item_name",
	"justification", "status", "due_at", "approved_by", "created_at", "updated_at",
}

type RequestReadStore struct {
	queries RequestReadQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries RequestReadQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row, err := s.queries.GetLendingRequest(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lending request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lending request by ID", err)
	}
	return toRequestView(row), nil
}

func (s *RequestReadStore) List(ctx context.Context, filter queries.RequestFilter, after *queries.Keyset, limit int) ([]*queries.RequestView, error) {
	sqlQuery, args, err := buildRequestListQuery(filter, after, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build request list query", err)
	}

	rows, err := s.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lending requests", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.RequestView, error) {
		var r sqlc.LendingRequest
		if scanErr := row.Scan(
			&r.ID, &r.RequesterID, &r.RequesterName, &r.RequesterGroup, &r.ItemID, &r.ItemName,
			&r.Justification, &r.Status, &r.DueAt, &r.ApprovedBy, &r.CreatedAt, &r.UpdatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		return toRequestView(r), nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan lending requests", err)
	}
	return views, nil
}

func (s *RequestReadStore) CountByStatus(ctx context.Context) (map[lending.Status]int, error) {
	rows, err := s.queries.CountLendingRequestsByStatus(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count lending requests", err)
	}
	counts := make(map[lending.Status]int, len(rows))
	for _, row := range rows {
		counts[lending.Status(row.Status)] = int(row.Count)
	}
	return counts, nil
}

func (s *RequestReadStore) CountOverdue(ctx context.Context, now time.Time) (int, error) {
	n, err := s.queries.CountOverdueLendingRequests(ctx, s.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overdue lending requests", err)
	}
	return int(n), nil
}

// Rows come newest first; the keyset predicate matches the
// (created_at DESC, id DESC) index.
func buildRequestListQuery(filter queries.RequestFilter, after *queries.Keyset, limit int) (string, []any, error) {
	ds := dialect.From("lending_requests").
		Prepared(true).
		Select(requestColumns...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(uint(limit))

	if filter.RequesterID != nil {
		ds = ds.Where(goqu.C("requester_id").Eq(filter.RequesterID.String()))
	}
	if filter.ItemID != nil {
		ds = ds.Where(goqu.C("item_id").Eq(filter.ItemID.String()))
	}
	if filter.Status != nil {
		ds = ds.Where(goqu.C("status").Eq(filter.Status.String()))
	}
	if after != nil {
		createdAt := after.CreatedAt.UTC()
		ds = ds.Where(goqu.Or(
			goqu.C("created_at").Lt(createdAt),
			goqu.And(
				goqu.C("created_at").Eq(createdAt),
				goqu.C("id").Lt(after.ID.String()),
			),
		))
	}

	sqlQuery, args, err := ds.ToSQL()
	if err != nil {
		return "", nil, errs.Wrap(err, "goqu")
	}
	return sqlQuery, args, nil
}

func toRequestView(row sqlc.LendingRequest) *queries.RequestView {
	return &queries.RequestView{
		ID:             row.ID,
		RequesterID:    row.RequesterID,
		RequesterName:  row.RequesterName,
		RequesterGroup: row.RequesterGroup,
		ItemID:         row.ItemID,
		ItemName:       row.ItemName,
		Justification:  row.Justification,
		Status:         row.Status,
		DueAt:          pgconv.TimePtrFromPgtype(row.DueAt),
		ApprovedBy:     pgconv.StringPtrFromPgtype(row.ApprovedBy),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
