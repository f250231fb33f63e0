package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleToml = `
[mainConfig]
appName = "library"
port = 9000

[databaseConfig]
driver = "mysql"
host = "db.local"
databaseName = "library"

[paginationConfig]
defaultPerPage = 20
`

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleToml), 0o644))

	cfg, err := LoadConfig(filepath.Join(dir, "missing.toml"), path)
	require.NoError(t, err)

	assert.Equal(t, "library", cfg.AppName)
	assert.Equal(t, 9000, cfg.MainConfig.Port)
	assert.Equal(t, "mysql", cfg.DatabaseConfig.Driver)
	assert.Equal(t, "db.local", cfg.DatabaseConfig.Host)
	assert.Equal(t, 3306, cfg.DatabaseConfig.Port)
	assert.Equal(t, 20, cfg.DefaultPerPage)
	// 未配置的字段取默认值
	assert.Equal(t, "none", cfg.MessageMode)
	assert.Equal(t, 120, cfg.AccessTokenExpiry)
}

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "sqlite", cfg.DatabaseConfig.Driver)
	assert.Equal(t, 8000, cfg.MainConfig.Port)
	assert.Equal(t, 10, cfg.DefaultPerPage)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LIBRARY_DB_DRIVER", "sqlite")
	t.Setenv("LIBRARY_PORT", "8088")
	t.Setenv("LIBRARY_REDIS_ADDR", "cache:6380")
	t.Setenv("LIBRARY_JWT_SECRET", "from-env")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleToml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DatabaseConfig.Driver)
	assert.Equal(t, 8088, cfg.MainConfig.Port)
	assert.Equal(t, "cache", cfg.RedisConfig.Host)
	assert.Equal(t, 6380, cfg.RedisConfig.Port)
	assert.Equal(t, "from-env", cfg.JWTConfig.Secret)
}

func TestGetConfigSingleton(t *testing.T) {
	SetConfig(&Config{MainConfig: MainConfig{AppName: "fixed"}})
	defer SetConfig(nil)
	assert.Equal(t, "fixed", GetConfig().AppName)
}
