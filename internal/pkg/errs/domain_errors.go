package errs

import "errors"

// Error kinds shared by the use-case and delivery layers.
// Precise errors are marked with one of these via Mark.
var (
	ErrNotFound                 = errors.New("not found")
	ErrInvalidTransition        = errors.New("invalid transition")
	ErrInsufficientAvailability = errors.New("insufficient availability")
	ErrValidation               = errors.New("validation error")
	ErrInvalidState             = errors.New("invalid state")
	ErrForbidden                = errors.New("forbidden")
	ErrConflict                 = errors.New("conflict")
	ErrUnauthorized             = errors.New("unauthorized")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
