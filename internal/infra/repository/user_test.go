//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/infra/repository"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestUserRepository_Create(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
		wantTaken bool
	}{
		{
			name: "success",
		},
		{
			name:      "duplicate email",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_lower_key"},
			wantKind:  infra.KindDuplicateKey,
			wantTaken: true,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
				return p.ID == u.ID() && p.Email == "test@example.com" && p.Role == "requester"
			})).Return(tt.mockError)

			repo := repository.NewUserRepository(mockQueries, nil)
			err := repo.Create(context.Background(), u)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, tt.wantTaken, errs.Is(err, user.ErrEmailTaken))
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_TouchLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateUserLastLoginParams) bool {
				return p.ID == testUserID && p.LastLogin.Time.Equal(at)
			})).Return(tt.mockError)

			repo := repository.NewUserRepository(mockQueries, nil)

			err := repo.TouchLastLogin(context.Background(), testUserID, at)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
