package main

import (
	"fmt"

	"impacttracker/pkg/types"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func loadConfig() (*types.Config, error) {
	// .env files are optional, real environment variables win
	_ = godotenv.Load(".env", ".env.local")

	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if err := validateConfig(c); err != nil {
		return nil, err
	}

	return c, nil
}

func validateConfig(c *types.Config) error {
	switch c.Backend {
	case types.BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("set DATABASE_URL")
		}
	case types.BackendSupabase:
		if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
			return fmt.Errorf("set SUPABASE_URL and SUPABASE_ANON_KEY")
		}
	default:
		return fmt.Errorf("unknown BACKEND %q, expected %q or %q", c.Backend, types.BackendPostgres, types.BackendSupabase)
	}

	if c.ReferenceLatitude < -90 || c.ReferenceLatitude > 90 {
		return fmt.Errorf("REFERENCE_LATITUDE out of range: %v", c.ReferenceLatitude)
	}
	if c.ReferenceLongitude < -180 || c.ReferenceLongitude > 180 {
		return fmt.Errorf("REFERENCE_LONGITUDE out of range: %v", c.ReferenceLongitude)
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 10
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 15
	}

	return nil
}

// requirePostgres is for commands that only make sense against the database.
func requirePostgres(c *types.Config) error {
	if c.Backend != types.BackendPostgres {
		return fmt.Errorf("this command needs BACKEND=%s", types.BackendPostgres)
	}
	return nil
}
