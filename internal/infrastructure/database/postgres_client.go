package database

import (
	"context"
	"log"
	"time"

	"idea_api/internal/infrastructure/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

// ConnectPostgres opens the shared connection pool used by every repository.
// The pool hands one connection per query and reclaims it when the rows are
// closed, so no request can hold a connection past its own lifetime.
func ConnectPostgres(ctx context.Context, settings config.Settings) *pgxpool.Pool {
	cfg, err := pgxpool.ParseConfig(settings.DatabaseURL())
	if err != nil {
		log.Fatalf("failed to parse postgres config: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create postgres pool: %v", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		log.Fatalf("failed to reach postgres: %v", err)
	}

	return pool
}
