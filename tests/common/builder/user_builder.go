//go:build unit || e2e

package builder

import (
	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/infra/memstore"
	sqlc "lending-ledger/internal/infra/sqlc/generated"
	"lending-ledger/internal/pkg/pgconv"
	"lending-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	Group        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		FirstName:    "Mina",
		LastName:     "Park",
		Group:        "Period 3",
		PasswordHash: "hashed_password",
		Role:         "requester",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	name, err := user.NewPersonName(u.FirstName, u.LastName)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, name, u.Group, u.PasswordHash, role, fixedTime)
}

func (u *UserBuilder) BuildRow() sqlc.User {
	return sqlc.User{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		GroupName:    pgconv.OptionalStringToPgtype(u.Group),
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    pgconv.TimeToPgtype(fixedTime),
		UpdatedAt:    pgconv.TimeToPgtype(fixedTime),
	}
}

func (u *UserBuilder) BuildRecord() memstore.UserRecord {
	return memstore.UserRecord{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Group:        u.Group,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    fixedTime,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Group:     u.Group,
		Role:      u.Role,
		IsActive:  u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName = first
	u.LastName = last
	return u
}

func (u *UserBuilder) WithGroup(group string) *UserBuilder {
	u.Group = group
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsApprover() *UserBuilder {
	u.Role = string(user.RoleApprover)
	u.Group = ""
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
