//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/infra"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/errs"
	"lending-ledger/tests/common/builder"
	readstoremock "lending-ledger/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildRow()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildRow()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.User
		mockError  error
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:      "user not found",
			email:     "notfound@example.com",
			mockError: sql.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			email:     testUser.Email,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
			mockQueries.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any(), tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, view.Email)
			assert.Equal(t, tt.wantHash, hash)
			assert.Equal(t, "Period 3", view.Group)
		})
	}
}

func TestResolve(t *testing.T) {
	approver := builder.NewUserBuilder().WithName("Ana", "Alvarez").AsApprover().BuildRow()
	inactive := builder.NewUserBuilder().AsInactive().BuildRow()

	t.Run("active approver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		mockQueries.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), approver.ID).Return(approver, nil)

		actor, err := NewUserReadStore(mockQueries, nil).Resolve(context.Background(), approver.ID)

		require.NoError(t, err)
		assert.Equal(t, "Ana Alvarez", actor.DisplayName)
		assert.Equal(t, user.RoleApprover, actor.Role)
		assert.Empty(t, actor.Group)
	})

	t.Run("inactive user is unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		mockQueries.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), inactive.ID).Return(inactive, nil)

		_, err := NewUserReadStore(mockQueries, nil).Resolve(context.Background(), inactive.ID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, user.ErrNotFound))
	})

	t.Run("missing user", func(t *testing.T) {
		id := uuid.New()
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
		mockQueries.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), id).Return(sqlc.User{}, sql.ErrNoRows)

		_, err := NewUserReadStore(mockQueries, nil).Resolve(context.Background(), id)

		assert.True(t, errs.Is(err, user.ErrNotFound))
	})
}
