package memstore

import (
	"context"
	"strings"
	"time"

	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type users struct {
	st *state
}

func (u *users) Create(_ context.Context, usr *user.User) error {
	email := usr.Email().Value()
	for _, existing := range u.st.users {
		if strings.EqualFold(existing.Email, email) {
			return errs.Mark(infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey), user.ErrEmailTaken)
		}
	}
	u.st.users[usr.ID()] = UserRecord{
		ID:           usr.ID(),
		Email:        email,
		FirstName:    usr.Name().First(),
		LastName:     usr.Name().Last(),
		Group:        usr.Group(),
		PasswordHash: usr.PasswordHash(),
		Role:         usr.Role().String(),
		IsActive:     usr.IsActive(),
		CreatedAt:    usr.CreatedAt(),
	}
	return nil
}

func (u *users) TouchLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	rec, ok := u.st.users[id]
	if !ok {
		return nil
	}
	rec.LastLogin = &at
	u.st.users[id] = rec
	return nil
}
