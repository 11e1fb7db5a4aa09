// Package config loads and persists arcctl settings.
//
// Settings live in ~/.arcctl/config.yaml. Environment variables with the
// ARCCTL_ prefix override the file, and flags override both; the caller
// applies flag overrides after Load.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/airiskcouncil/arcctl/internal/errors"
)

// Environment variables recognised by Load.
const (
	EnvAPIURL      = "ARCCTL_API_URL"
	EnvLogLevel    = "ARCCTL_LOG_LEVEL"
	EnvTimeout     = "ARCCTL_TIMEOUT"
	EnvDownloadDir = "ARCCTL_DOWNLOAD_DIR"
)

const fileName = "config.yaml"

// Config holds the persisted settings.
type Config struct {
	// APIURL is the base URL of the council API.
	APIURL string `yaml:"api_url"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Timeout bounds each API request.
	Timeout time.Duration `yaml:"timeout"`

	// DownloadDir is where framework downloads are written.
	// Defaults to the current directory.
	DownloadDir string `yaml:"download_dir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIURL:      "https://api.airiskcouncil.org/api",
		LogLevel:    "warn",
		Timeout:     15 * time.Second,
		DownloadDir: ".",
	}
}

// Dir returns the arcctl config directory (~/.arcctl).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigNotFound, "cannot determine home directory", err)
	}
	return filepath.Join(home, ".arcctl"), nil
}

// Path returns the config file location (~/.arcctl/config.yaml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the config file if present, layers environment overrides on
// top of the defaults, and validates the result. A missing file is not an
// error; the defaults apply.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(filepath.Join(dir, fileName))
}

// LoadFrom is Load with an explicit file path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run, nothing persisted yet.
	case err != nil:
		return Config{}, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("cannot read %s", path), err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.NewConfigInvalidError(path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv(EnvDownloadDir); v != "" {
		cfg.DownloadDir = v
	}
}

func invalid(message string) error {
	return errors.New(errors.ErrCodeConfigInvalid, message).
		WithSuggestion("Run 'arcctl config' to inspect the current settings")
}

// Validate checks the settings for values Save or Load should refuse.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return invalid(fmt.Sprintf("api_url %q is not a valid URL", c.APIURL))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return invalid(fmt.Sprintf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if c.Timeout <= 0 {
		return invalid("timeout must be positive")
	}
	return nil
}

// Save writes the config to ~/.arcctl/config.yaml, creating the directory
// if needed.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return SaveTo(cfg, filepath.Join(dir, fileName))
}

// SaveTo is Save with an explicit file path.
func SaveTo(cfg Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "cannot create config directory", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "cannot encode config", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("cannot write %s", path), err)
	}
	return nil
}

// Set updates a single key by its yaml name. Used by `arcctl config set`.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api_url":
		c.APIURL = value
	case "log_level":
		c.LogLevel = value
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return invalid(fmt.Sprintf("timeout %q is not a duration", value))
		}
		c.Timeout = d
	case "download_dir":
		c.DownloadDir = value
	default:
		return invalid(fmt.Sprintf("unknown setting %q", key))
	}
	return c.Validate()
}

// Get returns a single key's value by its yaml name.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "api_url":
		return c.APIURL, nil
	case "log_level":
		return c.LogLevel, nil
	case "timeout":
		return c.Timeout.String(), nil
	case "download_dir":
		return c.DownloadDir, nil
	default:
		return "", invalid(fmt.Sprintf("unknown setting %q", key))
	}
}

// Keys lists the settable configuration keys.
func Keys() []string {
	return []string{"api_url", "download_dir", "log_level", "timeout"}
}
