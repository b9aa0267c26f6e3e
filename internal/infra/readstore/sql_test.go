//go:build unit

package readstore

import (
	"testing"
	"time"

	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%tripod%", containsPattern("tripod"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\d%`, containsPattern(`c:\d`))
}

func TestBuildItemListQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		sql, args, err := buildItemListQuery(queries.ItemFilter{})

		require.NoError(t, err)
		assert.Contains(t, sql, `FROM "items"`)
		assert.NotContains(t, sql, "WHERE")
		assert.Contains(t, sql, `ORDER BY "name" ASC, "id" ASC`)
		assert.Empty(t, args)
	})

	t.Run("category and search are parameterised", func(t *testing.T) {
		sql, args, err := buildItemListQuery(queries.ItemFilter{Category: "Sensors", Search: "dht_"})

		require.NoError(t, err)
		assert.Contains(t, sql, `"category" = $1`)
		assert.Contains(t, sql, `"name" ILIKE $2`)
		assert.Contains(t, sql, `"category" ILIKE $3`)
		assert.Contains(t, sql, " OR ")
		assert.NotContains(t, sql, "Sensors")
		assert.Equal(t, []any{"Sensors", `%dht\_%`, `%dht\_%`}, args)
	})
}

func TestBuildRequestListQuery(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		sql, args, err := buildRequestListQuery(queries.RequestFilter{}, nil, 20)

		require.NoError(t, err)
		assert.Contains(t, sql, `FROM "lending_requests"`)
		assert.Contains(t, sql, `ORDER BY "created_at" DESC, "id" DESC`)
		assert.Contains(t, sql, "LIMIT")
		assert.NotContains(t, sql, "WHERE")
		assert.NotEmpty(t, args)
	})

	t.Run("filters and keyset", func(t *testing.T) {
		requester := uuid.New()
		status := lending.StatusApproved
		after := &queries.Keyset{
			CreatedAt: time.Date(2025, 9, 2, 10, 0, 0, 123000, time.UTC),
			ID:        uuid.New(),
		}

		sql, args, err := buildRequestListQuery(queries.RequestFilter{RequesterID: &requester, Status: &status}, after, 50)

		require.NoError(t, err)
		assert.Contains(t, sql, `"requester_id" = $`)
		assert.Contains(t, sql, `"status" = $`)
		assert.Contains(t, sql, `"created_at" < $`)
		assert.Contains(t, sql, `"id" < $`)
		assert.NotContains(t, sql, `"item_id" =`)
		assert.Contains(t, args, requester.String())
		assert.Contains(t, args, "approved")
		assert.Contains(t, args, after.ID.String())
	})
}
