//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"lending-ledger/internal/infra"
	"lending-ledger/internal/infra/repository"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/pgconv"
	"lending-ledger/internal/usecase/shared"
	repositorymock "lending-ledger/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Enqueue(t *testing.T) {
	t.Run("assigns an id when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockQueries.EXPECT().CreateNotificationJob(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p sqlc.CreateNotificationJobParams) error {
				assert.NotEqual(t, uuid.Nil, p.ID)
				assert.Equal(t, shared.EventRequestApproved, p.Kind)
				assert.JSONEq(t, `{"requestId":"x"}`, string(p.Payload))
				return nil
			})

		err := repository.NewOutboxRepository(mockQueries, nil).Enqueue(context.Background(), shared.NotificationJob{
			Kind:    shared.EventRequestApproved,
			Topic:   shared.EventRequestApproved,
			Payload: []byte(`{"requestId":"x"}`),
			RunAt:   repoNow,
		})
		require.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockQueries.EXPECT().CreateNotificationJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := repository.NewOutboxRepository(mockQueries, nil).Enqueue(context.Background(), shared.NotificationJob{ID: uuid.New()})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOutboxRepository_ClaimDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	lastErr := "broker unavailable"
	row := sqlc.NotificationJob{
		ID:        uuid.New(),
		Kind:      shared.EventInventoryClamped,
		Topic:     shared.EventInventoryClamped,
		Payload:   []byte(`{}`),
		RunAt:     pgconv.TimeToPgtype(repoNow.Add(-time.Minute)),
		Attempts:  2,
		Status:    shared.JobStatusQueued,
		LastError: pgconv.StringPtrToPgtype(&lastErr),
		CreatedAt: pgconv.TimeToPgtype(repoNow.Add(-time.Hour)),
	}
	mockQueries.EXPECT().ClaimDueNotificationJobs(gomock.Any(), gomock.Any(), sqlc.ClaimDueNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(repoNow),
		Limit: 10,
	}).Return([]sqlc.NotificationJob{row}, nil)

	jobs, err := repository.NewOutboxRepository(mockQueries, nil).ClaimDue(context.Background(), repoNow, 10)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, row.ID, jobs[0].ID)
	assert.Equal(t, 2, jobs[0].Attempts)
	require.NotNil(t, jobs[0].LastError)
	assert.Equal(t, lastErr, *jobs[0].LastError)
	assert.True(t, jobs[0].RunAt.Equal(repoNow.Add(-time.Minute)))
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	tests := []struct {
		name       string
		terminal   bool
		wantStatus string
	}{
		{name: "retryable failure stays queued", terminal: false, wantStatus: shared.JobStatusQueued},
		{name: "terminal failure", terminal: true, wantStatus: shared.JobStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			retryAt := repoNow.Add(4 * time.Second)

			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
			mockQueries.EXPECT().MarkNotificationJobFailed(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p sqlc.MarkNotificationJobFailedParams) error {
					assert.Equal(t, id, p.ID)
					assert.Equal(t, tt.wantStatus, p.Status)
					assert.Equal(t, int32(3), p.Attempts)
					assert.Equal(t, "boom", p.LastError.String)
					assert.True(t, p.RunAt.Time.Equal(retryAt))
					return nil
				})

			err := repository.NewOutboxRepository(mockQueries, nil).
				MarkFailed(context.Background(), id, 3, "boom", tt.terminal, retryAt, repoNow)
			require.NoError(t, err)
		})
	}
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	id := uuid.New()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockQueries.EXPECT().MarkNotificationJobSent(gomock.Any(), gomock.Any(), sqlc.MarkNotificationJobSentParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(repoNow),
	}).Return(assert.AnError)

	err := repository.NewOutboxRepository(mockQueries, nil).MarkSent(context.Background(), id, repoNow)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestOutboxRepository_Lease(t *testing.T) {
	t.Run("moves run_at of the claimed jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		until := repoNow.Add(time.Minute)
		mockQueries.EXPECT().LeaseNotificationJobs(gomock.Any(), gomock.Any(), sqlc.LeaseNotificationJobsParams{
			RunAt:     pgconv.TimeToPgtype(until),
			UpdatedAt: pgconv.TimeToPgtype(repoNow),
			Ids:       ids,
		}).Return(nil)

		err := repository.NewOutboxRepository(mockQueries, nil).Lease(context.Background(), ids, until, repoNow)
		require.NoError(t, err)
	})

	t.Run("empty batch skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)

		err := repository.NewOutboxRepository(mockQueries, nil).Lease(context.Background(), nil, repoNow, repoNow)
		require.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
		mockQueries.EXPECT().LeaseNotificationJobs(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := repository.NewOutboxRepository(mockQueries, nil).Lease(context.Background(), []uuid.UUID{uuid.New()}, repoNow, repoNow)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, assert.AnError)
	})
}
