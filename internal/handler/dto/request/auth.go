package request

import (
	"lending-ledger/internal/domain/auth"
	"lending-ledger/internal/usecase/commands"
)

type LoginRequest struct {
	Role     string `json:"role" binding:"required,oneof=requester approver"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Role, r.Email, r.Password)
}

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=requester approver"`
	Group     string `json:"group" binding:"max=100"`
}

func (r RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
		Group:     r.Group,
	}
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
