package repository

import (
	"context"
	"time"

	"lending-ledger/internal/infra"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/pgconv"
	"lending-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=outbox.go -destination=../../../tests/mock/repository/outbox_mock.go -package=repositorymock
type OutboxWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJob, error)
	LeaseNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.LeaseNotificationJobsParams) error
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, job shared.NotificationJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	params := sqlc.CreateNotificationJobParams{
		ID:        job.ID,
		Kind:      job.Kind,
		Topic:     job.Topic,
		Payload:   job.Payload,
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
		CreatedAt: pgconv.TimeToPgtype(job.CreatedAt),
	}
	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue locks the returned rows until the surrounding transaction ends;
// concurrent dispatchers skip them.
func (r *OutboxRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, sqlc.ClaimDueNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Attempts:  int(row.Attempts),
			Status:    row.Status,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return jobs, nil
}

// Lease moves run_at of the given queued jobs to until, so they are not due
// again while the caller publishes them outside the transaction.
func (r *OutboxRepository) Lease(ctx context.Context, ids []uuid.UUID, until time.Time, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.queries.LeaseNotificationJobs(ctx, r.db, sqlc.LeaseNotificationJobsParams{
		Ids:       ids,
		RunAt:     pgconv.TimeToPgtype(until),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to lease notification jobs", err)
	}
	return nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error {
	err := r.queries.MarkNotificationJobSent(ctx, r.db, sqlc.MarkNotificationJobSentParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastErr string, terminal bool, retryAt time.Time, now time.Time) error {
	status := shared.JobStatusQueued
	if terminal {
		status = shared.JobStatusFailed
	}
	err := r.queries.MarkNotificationJobFailed(ctx, r.db, sqlc.MarkNotificationJobFailedParams{
		ID:        id,
		Status:    status,
		Attempts:  pgconv.IntToInt32(attempts),
		LastError: pgconv.StringToPgtype(lastErr),
		RunAt:     pgconv.TimeToPgtype(retryAt),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
