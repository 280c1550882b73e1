package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, "planner-service", cfg.App.Name)
	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Equal(t, DefaultDepotLatitude, cfg.Depot.Latitude)
	assert.Equal(t, DefaultDepotLongitude, cfg.Depot.Longitude)
	assert.Equal(t, 4000.0, cfg.Depot.RadiusMeters)
	assert.Equal(t, 11, cfg.Planner.MaxWaypoints)
	assert.Equal(t, "https://www.google.com/maps/dir", cfg.Planner.DirectionsBaseURL)
	assert.Equal(t, 600, cfg.Planner.CacheTTLSeconds)
	assert.Equal(t, int64(10<<20), cfg.Planner.UploadMaxBytes)
	assert.Equal(t, 30, cfg.Planner.UploadRateLimit)
	assert.Equal(t, 60, cfg.Planner.UploadRatePeriod)
}

func TestInitConfig_LocalEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planner.env")
	content := "ROUTE_MAX_WAYPOINTS=5\nDEPOT_LAT=13.5\nREDIS_PORT=6380\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that already exist, so make sure
	// these keys are unset before loading.
	for _, key := range []string{"ROUTE_MAX_WAYPOINTS", "DEPOT_LAT", "REDIS_PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := InitConfig(path)

	assert.Equal(t, 5, cfg.Planner.MaxWaypoints)
	assert.Equal(t, 13.5, cfg.Depot.Latitude)
	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestGetEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	t.Setenv("TEST_INT64", "1.5")
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_FLOAT", "north")

	assert.Equal(t, 7, GetEnvAsInt("TEST_INT", 7))
	assert.Equal(t, int64(9), GetEnvAsInt64("TEST_INT64", 9))
	assert.True(t, GetEnvAsBool("TEST_BOOL", true))
	assert.Equal(t, 1.25, GetEnvAsFloat("TEST_FLOAT", 1.25))
	assert.Equal(t, "fallback", GetEnv("TEST_MISSING_KEY", "fallback"))
}
