// Package config loads stackcheck settings from a TOML file and the
// environment.
//
// Settings are layered: built-in defaults, then the config file, then
// environment variables (optionally read from a .env file), then command
// line flags, which the CLI applies itself.
//
//	[check]
//	timeout = "10s"
//	memoize = true
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	"github.com/matzehuels/stackcheck/pkg/generate"
)

// Backend names.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"

	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Environment variables that override the config file.
const (
	EnvCacheBackend = "STACKCHECK_CACHE"
	EnvRedisAddr    = "STACKCHECK_REDIS_ADDR"
	EnvRedisPass    = "STACKCHECK_REDIS_PASSWORD"
	EnvStoreBackend = "STACKCHECK_STORE"
	EnvMongoURI     = "STACKCHECK_MONGO_URI"
	EnvAddr         = "STACKCHECK_ADDR"
)

// Config holds every configurable setting.
type Config struct {
	Check    CheckConfig    `toml:"check"`
	Generate GenerateConfig `toml:"generate"`
	Cache    CacheConfig    `toml:"cache"`
	Store    StoreConfig    `toml:"store"`
	Server   ServerConfig   `toml:"server"`
}

// CheckConfig controls grading.
type CheckConfig struct {
	Timeout       Duration `toml:"timeout"`
	Memoize       bool     `toml:"memoize"`
	MaxContainers int      `toml:"max_containers"`
}

// GenerateConfig holds generator defaults.
type GenerateConfig struct {
	Lines     int    `toml:"lines"`
	MaxID     int    `toml:"max_id"`
	MinLength int    `toml:"min_length"`
	MaxLength int    `toml:"max_length"`
	Seed      uint64 `toml:"seed"`
}

// Options converts the section to generator options.
func (g GenerateConfig) Options() generate.Options {
	return generate.Options{
		Lines:     g.Lines,
		MaxID:     g.MaxID,
		MinLength: g.MinLength,
		MaxLength: g.MaxLength,
		Seed:      g.Seed,
	}
}

// CacheConfig selects the solution cache.
type CacheConfig struct {
	Backend       string   `toml:"backend"`
	Dir           string   `toml:"dir"` // file backend; empty means the XDG cache dir
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
	Prefix        string   `toml:"prefix"`
	TTL           Duration `toml:"ttl"`
}

// StoreConfig selects where runs are kept.
type StoreConfig struct {
	Backend  string `toml:"backend"`
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	RequestTimeout Duration `toml:"request_timeout"`
}

// Duration is a time.Duration written as a string such as "10s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Check: CheckConfig{
			Timeout:       Duration{10 * time.Second},
			Memoize:       true,
			MaxContainers: serrors.DefaultMaxContainers,
		},
		Generate: GenerateConfig{
			Lines:     generate.DefaultLines,
			MaxID:     generate.DefaultMaxID,
			MaxLength: generate.DefaultMaxLength,
			Seed:      generate.DefaultSeed,
		},
		Cache: CacheConfig{
			Backend:   CacheFile,
			RedisAddr: "localhost:6379",
			TTL:       Duration{30 * 24 * time.Hour},
		},
		Store: StoreConfig{
			Backend:  StoreMemory,
			MongoURI: "mongodb://localhost:27017",
			Database: "stackcheck",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			RequestTimeout: Duration{30 * time.Second},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/stackcheck/config.toml, falling
// back to ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "stackcheck", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "stackcheck", "config.toml"), nil
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. An empty path skips the file. Missing files are
// an error only when explicit is true.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		case err != nil:
			return nil, serrors.Wrap(serrors.ErrCodeInvalidConfig, err, "read config")
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, serrors.Wrap(serrors.ErrCodeInvalidConfig, err, "parse %s", path)
			}
		}
	}

	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv adds variables from the given .env files (default ".env") to
// the process environment. Variables already set are kept, and missing
// files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return serrors.Wrap(serrors.ErrCodeInvalidConfig, err, "load %s", f)
		}
	}
	return nil
}

// ApplyEnv overrides settings from environment variables looked up with
// getenv. Empty values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Cache.Backend, EnvCacheBackend)
	set(&c.Cache.RedisAddr, EnvRedisAddr)
	set(&c.Cache.RedisPassword, EnvRedisPass)
	set(&c.Store.Backend, EnvStoreBackend)
	set(&c.Store.MongoURI, EnvMongoURI)
	set(&c.Server.Addr, EnvAddr)
}

// Validate checks backend names and bounds.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return serrors.New(serrors.ErrCodeInvalidConfig, "unknown cache backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case StoreMemory, StoreMongo:
	default:
		return serrors.New(serrors.ErrCodeInvalidConfig, "unknown store backend %q (must be one of: memory, mongo)", c.Store.Backend)
	}
	if c.Check.Timeout.Duration < 0 {
		return serrors.New(serrors.ErrCodeInvalidConfig, "check timeout must not be negative")
	}
	if c.Server.RequestTimeout.Duration < 0 {
		return serrors.New(serrors.ErrCodeInvalidConfig, "request timeout must not be negative")
	}
	if err := c.Generate.Options().Validate(); err != nil {
		return serrors.Wrap(serrors.ErrCodeInvalidConfig, err, "generate")
	}
	return nil
}
