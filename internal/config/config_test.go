package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{Path: "latin_vocabulary.sqlite3"},
		Server:   ServerConfig{Host: "127.0.0.1", Port: 8080},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "uppercase level", mutate: func(c *Config) { c.Log.Level = "DEBUG" }},
		{name: "empty path", mutate: func(c *Config) { c.Database.Path = " " }, wantErr: "database.path"},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: "log.level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "latin_vocabulary.sqlite3", cfg.Database.Path)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins())
	assert.Equal(t, []string{"GET", "OPTIONS"}, cfg.CORS.Methods())
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_PATH", "/data/vocab.sqlite3")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/data/vocab.sqlite3", cfg.Database.Path)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeYAML(t, `
database:
  path: ./testdata/vocab.sqlite3
server:
  port: 3000
  shutdown_timeout: 2s
log:
  level: debug
cors:
  allowed_origins: "http://localhost:3000, https://example.org"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./testdata/vocab.sqlite3", cfg.Database.Path)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.org"}, cfg.CORS.Origins())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeYAML(t, "log:\n  level: debug\n")
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeYAML(t, "log:\n  format: xml\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})
}
