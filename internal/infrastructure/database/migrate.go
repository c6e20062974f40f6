package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mazabin/bookshop/pkg/logger"
)

//go:embed schema.sql
var schema string

// Bootstrap creates the authors and books tables when they are missing.
// It is idempotent and runs on every start when DB_AUTO_MIGRATE is on.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return errPoolNotInitialized
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	l := logger.Component("database")
	l.Info().Msg("schema ready")
	return nil
}
