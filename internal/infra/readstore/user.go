package readstore

import (
	"context"

	"github.com/google/uuid"

	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/infra"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/pgconv"
	"lending-ledger/internal/usecase/queries"
	"lending-ledger/internal/usecase/shared"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/readstore/user_mock.go -package=readstoremock
type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.User, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.User, error)
}

// UserReadStore also serves as the Postgres-backed shared.Directory.
type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("user not found", err, user.ErrNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toAuthorizedUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.NotFound("user not found", err, user.ErrNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

// Resolve treats inactive users as unknown.
func (r *UserReadStore) Resolve(ctx context.Context, id uuid.UUID) (*shared.Actor, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !view.IsActive {
		return nil, infra.NotFound("user is inactive", nil, user.ErrNotFound)
	}
	return &shared.Actor{
		ID:          view.ID,
		DisplayName: view.DisplayName(),
		Group:       view.Group,
		Role:        user.Role(view.Role),
	}, nil
}

func toAuthorizedUserView(row sqlc.User) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Group:     pgconv.StringFromPgtype(row.GroupName),
		Role:      row.Role,
		IsActive:  row.IsActive,
	}
}
