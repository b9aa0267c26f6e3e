package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/errbase"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as an identity to err, so Is(err, markErr) holds
// while the original cause stays reachable. The stdlib errors.Is sees the
// mark as well.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: cr.Mark(err, markErr), mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (m *markedError) Error() string { return m.cause.Error() }
func (m *markedError) Unwrap() error { return m.cause }

func (m *markedError) Is(target error) bool {
	return target == m.mark
}

func (m *markedError) Format(s fmt.State, verb rune) { errbase.FormatError(m, s, verb) }

// Is understands both wrapped chains and marks.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func IsAny(err error, references ...error) bool {
	return cr.IsAny(err, references...)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// Cause returns the innermost error, skipping wrap and mark layers.
func Cause(err error) error {
	return cr.UnwrapAll(err)
}
