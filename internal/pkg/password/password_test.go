//go:build unit

package password_test

import (
	"strings"
	"testing"

	"lending-ledger/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	require.NoError(t, password.ComparePassword(hash, "correct horse"))
	require.ErrorIs(t, password.ComparePassword(hash, "wrong horse"), password.ErrMismatch)
}

func TestHashPassword_Rejects(t *testing.T) {
	_, err := password.HashPassword("")
	require.ErrorIs(t, err, password.ErrEmpty)

	_, err = password.HashPassword(strings.Repeat("x", 73))
	require.ErrorIs(t, err, password.ErrTooLong)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := password.ComparePassword("not-a-bcrypt-hash", "whatever1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrMismatch)
}
