package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"openmat-server/models"
)

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

// RedisConfig contains the connection settings for the redis backend
type RedisConfig struct {
	Addr     string `yaml:"addr" validate:"required"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0"`
}

// StorageConfig selects and configures the cache backend
type StorageConfig struct {
	Backend    string      `yaml:"backend" validate:"oneof=sqlite redis"`
	SQLitePath string      `yaml:"sqlitePath" validate:"required_if=Backend sqlite"`
	Redis      RedisConfig `yaml:"redis"`
}

// SyncConfig tunes the schedule fetch path
type SyncConfig struct {
	RequestTimeoutMS       int   `yaml:"requestTimeoutMS" validate:"gte=0"`
	CoalesceFetches        *bool `yaml:"coalesceFetches"`
	WarmUp                 bool  `yaml:"warmUp"`
	RefreshIntervalMinutes int   `yaml:"refreshIntervalMinutes" validate:"gte=0"`
}

// LogConfig sets the minimum log level
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// RegionSource is the schedule sheet URL for one region
type RegionSource struct {
	Region string `yaml:"region" validate:"required"`
	URL    string `yaml:"url" validate:"required,url"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Env     string         `yaml:"env" validate:"oneof=prod dev"`
	Server  ServerConfig   `yaml:"server"`
	Storage StorageConfig  `yaml:"storage"`
	Sync    SyncConfig     `yaml:"sync"`
	Log     LogConfig      `yaml:"log"`
	Sources []RegionSource `yaml:"sources" validate:"dive"`
}

// Default returns the configuration used when no config file is present.
func Default() AppConfig {
	coalesce := true
	return AppConfig{
		Env:    ENV_DEV,
		Server: ServerConfig{Addr: SERVER_ADDRESS},
		Storage: StorageConfig{
			Backend:    STORAGE_BACKEND_SQLITE,
			SQLitePath: SQLITE_DB_PATH,
			Redis: RedisConfig{
				Addr:     REDIS_DB_ADDRESS,
				Password: REDIS_DB_PASSWORD,
				DB:       REDIS_DB,
			},
		},
		Sync: SyncConfig{
			RequestTimeoutMS: int(SCHEDULE_REQUEST_TIMEOUT / time.Millisecond),
			CoalesceFetches:  &coalesce,
			WarmUp:           true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads and validates the YAML config at path. A missing file yields
// the defaults. The OPENMAT_ENV environment variable overrides env.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return AppConfig{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if env := os.Getenv(ENV_VAR); env != "" {
		cfg.Env = env
	}
	if cfg.Sync.CoalesceFetches == nil {
		coalesce := true
		cfg.Sync.CoalesceFetches = &coalesce
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and the region source table.
func (c AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seen := make(map[models.Region]struct{}, len(c.Sources))
	for _, s := range c.Sources {
		r, err := models.ParseRegion(s.Region)
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if _, dup := seen[r]; dup {
			return fmt.Errorf("invalid config: duplicate source for region %q", r)
		}
		seen[r] = struct{}{}
	}

	if c.Env == ENV_PROD {
		for _, r := range models.AllRegions {
			if _, ok := seen[r]; !ok {
				return fmt.Errorf("invalid config: no source url for region %q", r)
			}
		}
	}
	return nil
}

// SourceURLs returns the region -> URL table.
func (c AppConfig) SourceURLs() map[models.Region]string {
	urls := make(map[models.Region]string, len(c.Sources))
	for _, s := range c.Sources {
		if r, err := models.ParseRegion(s.Region); err == nil {
			urls[r] = s.URL
		}
	}
	return urls
}

// RequestTimeout returns the schedule fetch timeout.
func (c AppConfig) RequestTimeout() time.Duration {
	if c.Sync.RequestTimeoutMS <= 0 {
		return SCHEDULE_REQUEST_TIMEOUT
	}
	return time.Duration(c.Sync.RequestTimeoutMS) * time.Millisecond
}

// CoalesceFetches reports whether same-region fetches share one request.
func (c AppConfig) CoalesceFetches() bool {
	return c.Sync.CoalesceFetches == nil || *c.Sync.CoalesceFetches
}

// RefreshInterval returns how often cached regions are re-checked, or 0 when
// periodic refresh is off.
func (c AppConfig) RefreshInterval() time.Duration {
	return time.Duration(c.Sync.RefreshIntervalMinutes) * time.Minute
}
