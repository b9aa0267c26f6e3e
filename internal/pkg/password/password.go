package password

import (
	"lending-ledger/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes
const maxBytes = 72

var (
	ErrEmpty    = errs.New("password is empty")
	ErrTooLong  = errs.New("password exceeds 72 bytes")
	ErrMismatch = errs.New("password does not match")
)

func HashPassword(plain string) (string, error) {
	switch {
	case plain == "":
		return "", ErrEmpty
	case len(plain) > maxBytes:
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmpty
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return errs.Wrap(err, "compare password")
}
