//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lending-ledger/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

// bcrypt is slow on purpose; hash the shared fixture password once per process.
func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(DefaultPassword)
		require.NoError(t, err)
		defaultHash = h
	})
	return defaultHash
}

type UserFixture struct {
	Email     string
	FirstName string
	LastName  string
	Group     string
	Role      string
	IsActive  bool
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()
	return CreateUser(t, db, UserFixture{
		Email:     email,
		FirstName: "Test",
		LastName:  strings.ToUpper(role[:1]) + role[1:],
		Group:     "Period 1",
		Role:      role,
		IsActive:  true,
	})
}

func CreateUser(t *testing.T, db DBLike, f UserFixture) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, first_name, last_name, group_name, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)
		ON CONFLICT (lower(email)) DO NOTHING`,
		userID, f.Email, f.FirstName, f.LastName, f.Group, defaultPasswordHash(t), f.Role, f.IsActive)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", f.Email).Scan(&userID)
		require.NoError(t, err)
	}
	return userID
}

func CreateTestItem(t *testing.T, db DBLike, name string, quantity, available int) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO items (id, name, category, quantity, available) VALUES ($1, $2, 'Electronics', $3, $4)`,
		itemID, name, quantity, available)
	require.NoError(t, err)
	return itemID
}

func ItemAvailability(t *testing.T, db DBLike, itemID uuid.UUID) (quantity, available int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		`SELECT quantity, available FROM items WHERE id = $1`, itemID).Scan(&quantity, &available)
	require.NoError(t, err)
	return quantity, available
}

func RequestStatus(t *testing.T, db DBLike, requestID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		`SELECT status FROM lending_requests WHERE id = $1`, requestID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM notification_jobs WHERE kind = $1`, kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT tablename
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, "public."+pq.QuoteIdentifier(name))
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
