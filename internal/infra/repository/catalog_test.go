//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"lending-ledger/internal/domain/item"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/infra/repository"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/tests/common/builder"
	repositorymock "lending-ledger/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var repoNow = time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC)

// =============================================================================
// FindByID
// =============================================================================

func TestCatalogRepository_FindByID(t *testing.T) {
	b := builder.NewItemBuilder().WithStock(5, 3)

	tests := []struct {
		name      string
		setupMock func(m *repositorymock.MockCatalogWriteQueries)
		wantKind  infra.RepositoryErrorKind
		wantIs    error
	}{
		{
			name: "success",
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().GetItem(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildRow(), nil)
			},
		},
		{
			name: "not found",
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().GetItem(gomock.Any(), gomock.Any(), b.ID).Return(sqlc.Item{}, pgx.ErrNoRows)
			},
			wantKind: infra.KindNotFound,
			wantIs:   item.ErrNotFound,
		},
		{
			name: "database error",
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().GetItem(gomock.Any(), gomock.Any(), b.ID).Return(sqlc.Item{}, assert.AnError)
			},
			wantKind: infra.KindDBFailure,
			wantIs:   errs.ErrDatabaseOperationFailed,
		},
		{
			name: "corrupted row",
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				row := b.BuildRow()
				row.Available = row.Quantity + 1
				m.EXPECT().GetItem(gomock.Any(), gomock.Any(), b.ID).Return(row, nil)
			},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
			tt.setupMock(mockQueries)

			repo := repository.NewCatalogRepository(mockQueries, nil)
			it, err := repo.FindByID(context.Background(), b.ID)

			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, b.ID, it.ID())
				assert.Equal(t, 5, it.Quantity())
				assert.Equal(t, 3, it.Available())
				assert.Equal(t, "Canon EOS R50", it.Name().String())
				return
			}
			assert.Nil(t, it)
			assert.True(t, infra.IsKind(err, tt.wantKind))
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

// =============================================================================
// Update
// =============================================================================

func TestCatalogRepository_Update(t *testing.T) {
	it, err := builder.NewItemBuilder().WithStock(5, 5).BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		delta     int
		setupMock func(m *repositorymock.MockCatalogWriteQueries)
		wantKind  infra.RepositoryErrorKind
		wantIs    error
	}{
		{
			name:  "success passes the delta through",
			delta: -2,
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().
					UpdateItemDetails(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p sqlc.UpdateItemDetailsParams) (int64, error) {
						assert.Equal(t, it.ID(), p.ID)
						assert.Equal(t, int32(-2), p.QuantityDelta)
						return 1, nil
					})
			},
		},
		{
			name:  "check violation",
			delta: -9,
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().UpdateItemDetails(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23514", ConstraintName: "items_available_check"})
			},
			wantKind: infra.KindCheckViolated,
			wantIs:   item.ErrNegativeAvailable,
		},
		{
			name:  "row gone",
			delta: 0,
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().UpdateItemDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.EXPECT().ItemExists(gomock.Any(), gomock.Any(), it.ID()).Return(false, nil)
			},
			wantKind: infra.KindNotFound,
			wantIs:   item.ErrNotFound,
		},
		{
			name:  "guard failed",
			delta: -5,
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().UpdateItemDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.EXPECT().ItemExists(gomock.Any(), gomock.Any(), it.ID()).Return(true, nil)
			},
			wantKind: infra.KindConflict,
			wantIs:   item.ErrNegativeAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
			tt.setupMock(mockQueries)

			repo := repository.NewCatalogRepository(mockQueries, nil)
			err := repo.Update(context.Background(), it, tt.delta)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

// =============================================================================
// TakeUnit / ReturnUnit
// =============================================================================

func TestCatalogRepository_TakeUnit(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		setupMock func(m *repositorymock.MockCatalogWriteQueries)
		wantKind  infra.RepositoryErrorKind
		wantIs    error
	}{
		{
			name: "success",
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().
					TakeItemUnit(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p sqlc.TakeItemUnitParams) (int64, error) {
						assert.Equal(t, id, p.ID)
						assert.True(t, p.UpdatedAt.Time.Equal(repoNow))
						return 1, nil
					})
			},
		},
		{
			name: "no unit available",
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().TakeItemUnit(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.EXPECT().ItemExists(gomock.Any(), gomock.Any(), id).Return(true, nil)
			},
			wantKind: infra.KindConflict,
			wantIs:   item.ErrNoUnitAvailable,
		},
		{
			name: "item deleted",
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().TakeItemUnit(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.EXPECT().ItemExists(gomock.Any(), gomock.Any(), id).Return(false, nil)
			},
			wantKind: infra.KindNotFound,
			wantIs:   item.ErrNotFound,
		},
		{
			name: "existence check fails",
			setupMock: func(m *repositorymock.MockCatalogWriteQueries) {
				m.EXPECT().TakeItemUnit(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.EXPECT().ItemExists(gomock.Any(), gomock.Any(), id).Return(false, assert.AnError)
			},
			wantKind: infra.KindDBFailure,
			wantIs:   assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
			tt.setupMock(mockQueries)

			repo := repository.NewCatalogRepository(mockQueries, nil)
			err := repo.TakeUnit(context.Background(), id, repoNow)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

func TestCatalogRepository_ReturnUnit(t *testing.T) {
	id := uuid.New()

	t.Run("clamped flag is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
		mockQueries.EXPECT().ReturnItemUnit(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		clamped, err := repository.NewCatalogRepository(mockQueries, nil).ReturnUnit(context.Background(), id, repoNow)

		require.NoError(t, err)
		assert.True(t, clamped)
	})

	t.Run("missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
		mockQueries.EXPECT().ReturnItemUnit(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, pgx.ErrNoRows)

		_, err := repository.NewCatalogRepository(mockQueries, nil).ReturnUnit(context.Background(), id, repoNow)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.ErrorIs(t, err, item.ErrNotFound)
	})
}

// =============================================================================
// Delete / Count
// =============================================================================

func TestCatalogRepository_DeleteAndCount(t *testing.T) {
	id := uuid.New()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
	repo := repository.NewCatalogRepository(mockQueries, nil)

	mockQueries.EXPECT().DeleteItem(gomock.Any(), gomock.Any(), id).Return(int64(1), nil)
	require.NoError(t, repo.Delete(context.Background(), id))

	mockQueries.EXPECT().DeleteItem(gomock.Any(), gomock.Any(), id).Return(int64(0), nil)
	err := repo.Delete(context.Background(), id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.ErrorIs(t, err, item.ErrNotFound)

	mockQueries.EXPECT().CountItems(gomock.Any(), gomock.Any()).Return(int64(12), nil)
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}
