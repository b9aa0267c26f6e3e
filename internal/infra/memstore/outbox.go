package memstore

import (
	"bytes"
	"context"
	"slices"
	"time"

	"lending-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type outbox struct {
	st *state
}

func (o *outbox) Enqueue(_ context.Context, job shared.NotificationJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	job.Status = shared.JobStatusQueued
	job.Attempts = 0
	o.st.jobs[job.ID] = job
	return nil
}

func (o *outbox) ClaimDue(_ context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	due := make([]shared.NotificationJob, 0)
	for _, job := range o.st.jobs {
		if job.Status == shared.JobStatusQueued && !job.RunAt.After(now) {
			due = append(due, job)
		}
	}
	slices.SortFunc(due, func(a, b shared.NotificationJob) int {
		if c := a.RunAt.Compare(b.RunAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (o *outbox) Lease(_ context.Context, ids []uuid.UUID, until time.Time, _ time.Time) error {
	for _, id := range ids {
		job, ok := o.st.jobs[id]
		if !ok || job.Status != shared.JobStatusQueued {
			continue
		}
		job.RunAt = until
		o.st.jobs[id] = job
	}
	return nil
}

func (o *outbox) MarkSent(_ context.Context, id uuid.UUID, _ time.Time) error {
	job, ok := o.st.jobs[id]
	if !ok {
		return nil
	}
	job.Status = shared.JobStatusSent
	job.Attempts++
	job.LastError = nil
	o.st.jobs[id] = job
	return nil
}

func (o *outbox) MarkFailed(_ context.Context, id uuid.UUID, attempts int, lastErr string, terminal bool, retryAt time.Time, _ time.Time) error {
	job, ok := o.st.jobs[id]
	if !ok {
		return nil
	}
	job.Attempts = attempts
	job.LastError = &lastErr
	job.RunAt = retryAt
	job.Status = shared.JobStatusQueued
	if terminal {
		job.Status = shared.JobStatusFailed
	}
	o.st.jobs[id] = job
	return nil
}
