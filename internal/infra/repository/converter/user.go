package converter

import (
	"lending-ledger/internal/domain/user"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		FirstName:    u.Name().First(),
		LastName:     u.Name().Last(),
		GroupName:    pgconv.OptionalStringToPgtype(u.Group()),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}
