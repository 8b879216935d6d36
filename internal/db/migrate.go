package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.up.sql
var migrationsFS embed.FS

// migrationFiles lists the embedded up migrations in apply order.
func migrationFiles() ([]string, error) {
	files, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to glob migration files: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// Migrate applies every embedded migration. Migrations are written to be
// idempotent so rerunning them is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *logrus.Logger) error {
	files, err := migrationFiles()
	if err != nil {
		return err
	}

	for _, file := range files {
		content, err := migrationsFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		logger.WithField("file", strings.TrimPrefix(file, "migrations/")).Info("running migration")

		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}

	return nil
}
