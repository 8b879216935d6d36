package main

import (
	"testing"

	"impacttracker/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *types.Config {
	return &types.Config{
		Backend:            types.BackendPostgres,
		DatabaseURL:        "postgres://localhost:5432/impact",
		ReferenceLatitude:  51.5074,
		ReferenceLongitude: -0.1278,
	}
}

func TestValidateConfigDefaults(t *testing.T) {
	c := baseConfig()

	require.NoError(t, validateConfig(c))
	assert.Equal(t, uint(8080), c.ServerPort)
	assert.Equal(t, uint(10), c.ReadTimeoutSec)
	assert.Equal(t, uint(15), c.WriteTimeoutSec)
}

func TestValidateConfigBackends(t *testing.T) {
	c := baseConfig()
	c.DatabaseURL = ""
	assert.EqualError(t, validateConfig(c), "set DATABASE_URL")

	c = baseConfig()
	c.Backend = types.BackendSupabase
	assert.EqualError(t, validateConfig(c), "set SUPABASE_URL and SUPABASE_ANON_KEY")

	c.SupabaseURL = "https://abcd.supabase.co"
	c.SupabaseAnonKey = "anon"
	assert.NoError(t, validateConfig(c))

	c = baseConfig()
	c.Backend = "mysql"
	assert.ErrorContains(t, validateConfig(c), `unknown BACKEND "mysql"`)
}

func TestValidateConfigReferencePoint(t *testing.T) {
	c := baseConfig()
	c.ReferenceLatitude = 91
	assert.ErrorContains(t, validateConfig(c), "REFERENCE_LATITUDE")

	c = baseConfig()
	c.ReferenceLongitude = -181
	assert.ErrorContains(t, validateConfig(c), "REFERENCE_LONGITUDE")
}

func TestRequirePostgres(t *testing.T) {
	assert.NoError(t, requirePostgres(baseConfig()))

	c := baseConfig()
	c.Backend = types.BackendSupabase
	assert.Error(t, requirePostgres(c))
}
