package infra

import (
	"errors"

	"lending-ledger/internal/pkg/errs"
	"lending-ledger/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a driver error. An explicit kind wins; otherwise
// unique and check violations are detected and everything else is a DB failure.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	switch {
	case len(kinds) > 0:
		kind = kinds[0]
	case pgconv.IsUniqueViolation(err):
		kind = KindDuplicateKey
	case pgconv.IsCheckViolation(err):
		kind = KindCheckViolated
	}

	wrapped := RepositoryError{Kind: kind, msg: msg, err: err}
	if kind == KindDBFailure {
		return errs.Mark(wrapped, errs.ErrDatabaseOperationFailed)
	}
	return wrapped
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound      RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure     RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey  RepositoryErrorKind = "DUPLICATE_KEY"
	KindCheckViolated RepositoryErrorKind = "CHECK_VIOLATED"
	KindConflict      RepositoryErrorKind = "CONFLICT"
)

// NotFound builds a KindNotFound repository error that also carries the
// domain sentinel, so both infra.IsKind and errs.Is recognise it.
func NotFound(msg string, err error, sentinel error) error {
	return errs.Mark(WrapRepoErr(msg, err, KindNotFound), sentinel)
}
