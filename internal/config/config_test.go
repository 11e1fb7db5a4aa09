package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airiskcouncil/arcctl/internal/errors"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "api_url: http://localhost:4000/api\nlog_level: debug\ntimeout: 30s\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/api", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, ".", cfg.DownloadDir)
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [broken\n"), 0o600))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://from-file:4000\n"), 0o600))

	t.Setenv(EnvAPIURL, "http://from-env:4000")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvTimeout, "5s")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:4000", cfg.APIURL)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "bad url", mutate: func(c *Config) { c.APIURL = "not a url" }, wantErr: true},
		{name: "empty url", mutate: func(c *Config) { c.APIURL = "" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.APIURL = "http://localhost:4000/api"
	cfg.DownloadDir = "/tmp/frameworks"
	require.NoError(t, SaveTo(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSetAndGet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("api_url", "http://localhost:9999"))
	require.NoError(t, cfg.Set("timeout", "45s"))
	assert.Equal(t, 45*time.Second, cfg.Timeout)

	got, err := cfg.Get("api_url")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", got)

	assert.Error(t, cfg.Set("timeout", "soon"))
	assert.Error(t, cfg.Set("colour", "red"))
	_, err = cfg.Get("colour")
	assert.Error(t, err)

	err = cfg.Set("log_level", "loud")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))
}
