//go:build unit

package infra_test

import (
	"errors"
	"strings"
	"testing"

	"lending-ledger/internal/domain/item"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	driverErr := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		kinds    []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
		wantDB   bool
	}{
		{name: "plain driver error is a DB failure", err: driverErr, wantKind: infra.KindDBFailure, wantDB: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, wantKind: infra.KindCheckViolated},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kinds: []infra.RepositoryErrorKind{infra.KindConflict}, wantKind: infra.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to find item by ID", tt.err, tt.kinds...)

			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.wantDB, errors.Is(err, errs.ErrDatabaseOperationFailed))
		})
	}

	t.Run("message appears once", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to find item by ID", driverErr)

		assert.Equal(t, "DB_FAILURE: failed to find item by ID: connection reset", err.Error())
		assert.Equal(t, 1, strings.Count(err.Error(), "failed to find item by ID"))
	})
}

func TestNotFound(t *testing.T) {
	err := infra.NotFound("item not found", nil, item.ErrNotFound)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.ErrorIs(t, err, item.ErrNotFound)
	assert.Equal(t, "NOT_FOUND: item not found", err.Error())
}
