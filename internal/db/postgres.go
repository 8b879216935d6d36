package db

import (
	"context"
	"fmt"
	"time"

	"impacttracker/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultSchema = "impacttracker"

func poolConfig(config *types.Config) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	if _, ok := cfg.ConnConfig.RuntimeParams["search_path"]; !ok {
		cfg.ConnConfig.RuntimeParams["search_path"] = defaultSchema
	}

	if config.DatabaseMaxConns > 0 {
		cfg.MaxConns = config.DatabaseMaxConns
	}
	cfg.MaxConnIdleTime = 15 * time.Minute
	cfg.MaxConnLifetime = 45 * time.Minute

	return cfg, nil
}

// Connect opens a pool and pings it before handing it back.
func Connect(ctx context.Context, config *types.Config) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(config)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
