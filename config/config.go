// Package config loads client settings from the environment or a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Config holds the settings of one client.
// Environment variables are parsed from the VEREINSFLIEGER_ prefix.
type Config struct {
	AppKey   string `envconfig:"APPKEY" required:"true"`
	BaseURL  string `envconfig:"BASE_URL" default:"https://vereinsflieger.de/"`
	TenantID string `envconfig:"TENANT_ID" default:""`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`

	// RateLimit is requests per second; 0 disables throttling.
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"0"`
	RateBurst int     `envconfig:"RATE_BURST" default:"1"`
}

const (
	envPrefix          = "VEREINSFLIEGER"
	defaultConfigPath  = "~/.config/vereinsflieger/config.toml"
	defaultBaseURL     = "https://vereinsflieger.de/"
	defaultHTTPTimeout = 30 * time.Second
)

// LoadOption adjusts FromEnv and Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	log zerolog.Logger
}

// WithLogger reports the loaded settings on l at debug level. Loading is
// silent without it.
func WithLogger(l zerolog.Logger) LoadOption {
	return func(o *loadOptions) { o.log = l }
}

func newLoadOptions(opts []LoadOption) loadOptions {
	o := loadOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{BaseURL: defaultBaseURL, HTTPTimeout: defaultHTTPTimeout, RateBurst: 1}
}

// FromEnv creates a Config by parsing environment variables.
// Example: VEREINSFLIEGER_APPKEY, VEREINSFLIEGER_TENANT_ID
func FromEnv(opts ...LoadOption) (Config, error) {
	o := newLoadOptions(opts)
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.logLoaded(o.log, "env")
	return cfg, nil
}

// Load parses the TOML file at path. An empty path selects
// ~/.config/vereinsflieger/config.toml. A missing file yields Default()
// unvalidated, so the caller can still fill in AppKey; a file that exists
// must pass Validate.
func Load(path string, opts ...LoadOption) (Config, error) {
	o := newLoadOptions(opts)
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			o.log.Debug().Str("source", resolved).Msg("Configuration file not found, using defaults")
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		AppKey      string  `toml:"app_key"`
		BaseURL     string  `toml:"base_url"`
		TenantID    string  `toml:"tenant_id"`
		HTTPTimeout string  `toml:"http_timeout"`
		Debug       bool    `toml:"debug"`
		RateLimit   float64 `toml:"rate_limit"`
		RateBurst   int     `toml:"rate_burst"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.AppKey = strings.TrimSpace(raw.AppKey)
	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	cfg.TenantID = strings.TrimSpace(raw.TenantID)
	if v := strings.TrimSpace(raw.HTTPTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: http_timeout: %w", err)
		}
		cfg.HTTPTimeout = d
	}
	cfg.Debug = raw.Debug
	cfg.RateLimit = raw.RateLimit
	if raw.RateBurst > 0 {
		cfg.RateBurst = raw.RateBurst
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.logLoaded(o.log, resolved)
	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AppKey) == "" {
		return fmt.Errorf("app key is required")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must not be negative")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	return nil
}

func (c Config) logLoaded(l zerolog.Logger, source string) {
	l.Debug().
		Str("source", source).
		Str("base_url", c.BaseURL).
		Bool("tenant_set", c.TenantID != "").
		Dur("http_timeout", c.HTTPTimeout).
		Float64("rate_limit", c.RateLimit).
		Bool("debug", c.Debug).
		Msg("Configuration loaded")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
