// Package dbtest opens the PostgreSQL database used by integration tests.
package dbtest

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/mazabin/bookshop/internal/infrastructure/database"
)

// EnvURL names the variable holding the test database connection string.
const EnvURL = "TEST_DATABASE_URL"

// Open connects to TEST_DATABASE_URL, bootstraps the schema and empties
// both tables. The test is skipped when the variable is unset.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv(EnvURL)
	if url == "" {
		t.Skipf("%s not set", EnvURL)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))
	require.NoError(t, database.Bootstrap(ctx, pool))

	_, err = pool.Exec(ctx, `TRUNCATE books, authors`)
	require.NoError(t, err)

	return pool
}
