package database

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var errPoolNotInitialized = errors.New("database pool is not initialized")

// HealthCheck pings the database with a short timeout.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return errPoolNotInitialized
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	stats := db.Pool.Stat()
	db.log.Debug().
		Int32("total", stats.TotalConns()).
		Int32("idle", stats.IdleConns()).
		Int32("acquired", stats.AcquiredConns()).
		Msg("health check passed")

	return nil
}

// Close shuts the pool down, waiting for acquired connections to be
// released. Safe to call more than once.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}

	db.log.Info().Msg("closing connection pool")
	db.Pool.Close()
	db.Pool = nil
}
