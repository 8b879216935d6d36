package main

import (
	"context"
	"net/http"
	"time"

	"impacttracker/internal/db"
	"impacttracker/internal/server"
	"impacttracker/internal/storage"
	"impacttracker/internal/store"
	"impacttracker/pkg/types"

	"github.com/sirupsen/logrus"
)

// openBackend builds the configured data backend. The returned func releases
// whatever the backend holds open.
func openBackend(ctx context.Context, config *types.Config, logger *logrus.Logger) (server.Backend, func(), error) {
	if config.Backend == types.BackendSupabase {
		logger.WithField("url", config.SupabaseURL).Info("using supabase backend")

		client := &http.Client{Timeout: 10 * time.Second}
		return storage.NewSupabaseTables(config.SupabaseURL, config.SupabaseAnonKey, client), client.CloseIdleConnections, nil
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("using postgres backend")
	return store.NewBackend(pool), pool.Close, nil
}
