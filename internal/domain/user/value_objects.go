package user

import (
	"regexp"
	"strings"

	"lending-ledger/internal/pkg/errs"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
	MaxNameLength     = 100
	MaxGroupLength    = 100
)

var (
	ErrInvalidEmail    = errs.New("invalid email format")
	ErrInvalidRole     = errs.New("invalid role")
	ErrPasswordTooWeak = errs.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errs.New("password must be at most 72 bytes")
	ErrInvalidName     = errs.New("first and last name are required")
	ErrGroupTooLong    = errs.New("group exceeds maximum length")
	ErrNotFound        = errs.New("user not found")
	ErrEmailTaken      = errs.New("email is already registered")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is normalized to lower case; lookups are case-insensitive.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > MaxPasswordLength {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type PersonName struct {
	first string
	last  string
}

func NewPersonName(first, last string) (PersonName, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" || last == "" || len(first) > MaxNameLength || len(last) > MaxNameLength {
		return PersonName{}, ErrInvalidName
	}
	return PersonName{first: first, last: last}, nil
}

func (n PersonName) First() string { return n.first }
func (n PersonName) Last() string  { return n.last }

func (n PersonName) DisplayName() string {
	return n.first + " " + n.last
}
