// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "/keys/private.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/public.pem")
}

/*
TestLoad_Defaults checks the sqlite driver with default settings.
*/
func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", config.DriverSQLite)
	t.Setenv("ALLOWED_ORIGINS", "https://a.dev, https://b.dev")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, int64(5242880), cfg.AssetMaxBytes)
	assert.Equal(t, 15*time.Second, cfg.StatementTimeout)
	assert.Empty(t, cfg.MigrationPath)
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.Origins())
}

/*
TestLoad_Invalid covers the driver-specific requirements.
*/
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres_without_dsn", map[string]string{"STORE_DRIVER": config.DriverPostgres}},
		{"unknown_driver", map[string]string{"STORE_DRIVER": "mongo"}},
		{"non_positive_asset_limit", map[string]string{"STORE_DRIVER": config.DriverSQLite, "ASSET_MAX_BYTES": "0"}},
		{"min_over_max_conns", map[string]string{
			"STORE_DRIVER": config.DriverPostgres,
			"DATABASE_URL": "postgres://localhost/producthunt",
			"DB_MIN_CONNS": "30",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

/*
TestLoad_MissingRequired fails without the session store URL.
*/
func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("STORE_DRIVER", config.DriverSQLite)
	t.Setenv("REDIS_URL", "unset")
	require.NoError(t, os.Unsetenv("REDIS_URL"))
	t.Setenv("JWT_PRIVATE_KEY_PATH", "/keys/private.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/public.pem")

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestLoad_DotEnv reads settings from a local .env file without overriding the
process environment.
*/
func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_PORT=9090\nSTORE_DRIVER=postgres\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DotEnvFile), []byte(content), 0o600))
	t.Chdir(dir)

	setRequired(t)
	t.Setenv("STORE_DRIVER", config.DriverSQLite)
	t.Setenv("SERVER_PORT", "")
	require.NoError(t, os.Unsetenv("SERVER_PORT"))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, config.DriverSQLite, cfg.StoreDriver)
}
