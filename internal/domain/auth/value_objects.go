package auth

import (
	"lending-ledger/internal/domain/user"
)

// Credentials are scoped to a role: the same email cannot sign in as an approver
// through a requester login.
type Credentials struct {
	role     user.Role
	email    user.Email
	password user.Password
}

func NewCredentials(roleStr, emailStr, passwordStr string) (Credentials, error) {
	role, err := user.NewRole(roleStr)
	if err != nil {
		return Credentials{}, err
	}

	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		role:     role,
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Role() user.Role {
	return c.role
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}
