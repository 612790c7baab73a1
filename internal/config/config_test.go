package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PUBLISHER_STORE", "CACHE_TTL", "CACHE_ENABLED", "DB_AUTO_MIGRATE", "JWT_SECRET", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, StorePostgres, cfg.App.Store)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PUBLISHER_STORE", "Memory")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("JWT_ACCESS_EXPIRY", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.App.Store)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTTL())
}

func TestLoad_InvalidCacheTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "CACHE_TTL")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:   AppConfig{Environment: "development", Store: StorePostgres},
			JWT:   JWTConfig{Secret: defaultJWTSecret},
			Cache: CacheConfig{TTL: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"development defaults", func(c *Config) {}, ""},
		{"unknown store", func(c *Config) { c.App.Store = "mongo" }, "PUBLISHER_STORE"},
		{"empty secret", func(c *Config) { c.JWT.Secret = "" }, "JWT_SECRET"},
		{"enabled cache without ttl", func(c *Config) { c.Cache = CacheConfig{Enabled: true} }, "CACHE_TTL"},
		{"production default secret", func(c *Config) { c.App.Environment = "production" }, "JWT_SECRET"},
		{"production without db password", func(c *Config) {
			c.App.Environment = "production"
			c.JWT.Secret = "prod-secret"
		}, "DB_PASSWORD"},
		{"production memory store needs no db password", func(c *Config) {
			c.App.Environment = "production"
			c.App.Store = StoreMemory
			c.JWT.Secret = "prod-secret"
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_CONNS", "10")
	t.Setenv("DB_RETRY_DELAY", "250ms")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)

	t.Setenv("DB_PORT", "not-a-port")
	_, err = LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_PORT")
}

func TestLoad_DatabaseSectionComesFromLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DB_MAX_CONNS", "7")
	t.Setenv("DB_PASSWORD", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	dbCfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, *dbCfg, cfg.Database.DBConfig)
	assert.Equal(t, int32(7), cfg.Database.MaxConns)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoad_InvalidDatabaseEnv(t *testing.T) {
	t.Setenv("DB_PORT", "five-four-three-two")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PORT")
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{App: AppConfig{Environment: "production"}}
	assert.False(t, cfg.IsDevelopment())

	cfg.App.Environment = "development"
	assert.True(t, cfg.IsDevelopment())
}
