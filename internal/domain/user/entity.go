package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account in the directory. Requesters carry a group (class or cohort).
type User struct {
	id           uuid.UUID
	email        Email
	name         PersonName
	group        string
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
}

func NewUser(email Email, name PersonName, group string, passwordHash string, role Role, now time.Time) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	group = strings.TrimSpace(group)
	if len(group) > MaxGroupLength {
		return nil, ErrGroupTooLong
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		group:        group,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, name PersonName, group, passwordHash string, role Role, isActive bool, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		group:        group,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() PersonName     { return u.name }
func (u *User) DisplayName() string  { return u.name.DisplayName() }
func (u *User) Group() string        { return u.group }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
