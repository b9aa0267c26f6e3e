//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"lending-ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoUnit = errors.New("no unit available")

func TestMark(t *testing.T) {
	t.Run("kind and cause are visible to both Is implementations", func(t *testing.T) {
		err := errs.Mark(errs.Wrap(errNoUnit, "take unit"), errs.ErrInsufficientAvailability)

		require.ErrorIs(t, err, errs.ErrInsufficientAvailability)
		require.ErrorIs(t, err, errNoUnit)
		assert.True(t, errs.Is(err, errs.ErrInsufficientAvailability))
		assert.True(t, errs.Is(err, errNoUnit))
		assert.False(t, errors.Is(err, errs.ErrNotFound))
		assert.False(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("marks survive further wrapping", func(t *testing.T) {
		err := fmt.Errorf("approve: %w", errs.Wrap(errs.Mark(errNoUnit, errs.ErrInsufficientAvailability), "tx"))

		assert.ErrorIs(t, err, errs.ErrInsufficientAvailability)
		assert.True(t, errs.IsAny(err, errs.ErrNotFound, errs.ErrInsufficientAvailability))
	})

	t.Run("stacked marks", func(t *testing.T) {
		err := errs.Mark(errs.Mark(errNoUnit, errs.ErrDatabaseOperationFailed), errs.ErrConflict)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
		assert.Equal(t, errNoUnit.Error(), err.Error())
	})

	t.Run("nil error yields the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
	})
}

func TestCause(t *testing.T) {
	err := errs.Mark(errs.Wrap(errNoUnit, "outer"), errs.ErrConflict)

	assert.Same(t, errNoUnit, errs.Cause(err))
}
