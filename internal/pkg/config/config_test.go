package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, 10.0, cfg.Listings.NearbyRadiusKm)
	assert.Equal(t, time.Minute, cfg.Listings.CacheTTL)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "localhost:4150", cfg.NSQ.NSQDAddress)
	assert.Empty(t, cfg.NSQ.LookupdAddresses)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestInitConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("LISTINGS_NEARBY_RADIUS_KM", "2.5")
	t.Setenv("LISTINGS_CACHE_TTL", "300")
	t.Setenv("NSQ_LOOKUPD_ADDRESSES", "lookupd-1:4161, lookupd-2:4161,")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := InitConfig("")

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 2.5, cfg.Listings.NearbyRadiusKm)
	assert.Equal(t, 5*time.Minute, cfg.Listings.CacheTTL)
	assert.Equal(t, []string{"lookupd-1:4161", "lookupd-2:4161"}, cfg.NSQ.LookupdAddresses)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
}

func TestInitConfig_LoadsEnvFileForLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "houses.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=houses-service\nREDIS_PORT=6380\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// register for cleanup; godotenv does not override existing values
	t.Setenv("APP_NAME", "")
	t.Setenv("REDIS_PORT", "")
	os.Unsetenv("APP_NAME")
	os.Unsetenv("REDIS_PORT")

	cfg := InitConfig(path)

	assert.Equal(t, "houses-service", cfg.App.Name)
	assert.Equal(t, 6380, cfg.Redis.Port)
}

func TestInitConfig_CacheTTLInSeconds(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("LISTINGS_CACHE_TTL", "45")

	cfg := InitConfig("")

	assert.Equal(t, 45*time.Second, cfg.Listings.CacheTTL)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_PRESENT_STRING", "value")

	assert.Equal(t, "value", GetEnv("TEST_PRESENT_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_MISSING_STRING", "fallback"))
}
