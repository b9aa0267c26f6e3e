//go:build unit || e2e

package builder

import (
	"lending-ledger/internal/domain/auth"
	reqdto "lending-ledger/internal/handler/dto/request"
)

type AuthBuilder struct {
	Role     string
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Role:     "requester",
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) AsApprover() *AuthBuilder {
	a.Role = "approver"
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Role:     a.Role,
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildCredentials() (auth.Credentials, error) {
	return auth.NewCredentials(a.Role, a.Email, a.Password)
}
