// Package config resolves lvsearch settings from defaults, an optional YAML
// file, an optional .env file and the process environment, in that order
// of increasing precedence. Command-line flags are applied on top by the
// CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvDataDir     = "LVSEARCH_DATA_DIR"
	EnvLogLevel    = "LVSEARCH_LOG_LEVEL"
	EnvLogFormat   = "LVSEARCH_LOG_FORMAT"
	EnvMetricsAddr = "LVSEARCH_METRICS_ADDR"
	EnvSolverCache = "LVSEARCH_SOLVER_CACHE"
	EnvParallel    = "LVSEARCH_PARALLEL"
)

// Defaults.
const (
	DefaultDataDir   = "large"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultCacheSize = 8192
	DefaultDotEnv    = ".env"
)

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SolverConfig tunes the game solver.
type SolverConfig struct {
	CacheSize int  `yaml:"cache_size"`
	Parallel  bool `yaml:"parallel"`
}

// Config is the resolved configuration.
type Config struct {
	DataDir     string       `yaml:"data_dir"`
	Log         LogConfig    `yaml:"log"`
	MetricsAddr string       `yaml:"metrics_addr"`
	Solver      SolverConfig `yaml:"solver"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Solver: SolverConfig{
			CacheSize: DefaultCacheSize,
		},
	}
}

// Option adjusts how Load reads its sources.
type Option func(*loadOptions)

type loadOptions struct {
	dotenv string
	logger *slog.Logger
	lookup func(string) (string, bool)
}

// WithDotEnv reads variables from path instead of ".env". An empty path
// disables the .env source.
func WithDotEnv(path string) Option {
	return func(o *loadOptions) { o.dotenv = path }
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLookup replaces os.LookupEnv as the environment source.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(o *loadOptions) {
		if fn != nil {
			o.lookup = fn
		}
	}
}

// Load resolves the configuration. path names an optional YAML file; an
// empty path skips it, while a named file that does not exist is an error.
// A missing .env file is not an error.
func Load(path string, opts ...Option) (*Config, error) {
	const op = "config.Load"

	lo := loadOptions{dotenv: DefaultDotEnv, logger: slog.Default(), lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(&lo)
	}

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: read %s: %w", op, path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, path, err)
		}
	}

	dotenv := map[string]string{}
	if lo.dotenv != "" {
		vals, err := godotenv.Read(lo.dotenv)
		switch {
		case err == nil:
			dotenv = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("%s: read %s: %w", op, lo.dotenv, err)
		}
	}

	env := func(key string) string {
		if v, ok := lo.lookup(key); ok {
			return v
		}
		return dotenv[key]
	}
	if v := env(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := env(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := env(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := env(EnvMetricsAddr); v != "" {
		cfg.MetricsAddr = v
	}
	cfg.Solver.CacheSize = getEnvAsInt(lo.logger, EnvSolverCache, env(EnvSolverCache), cfg.Solver.CacheSize)
	cfg.Solver.Parallel = getEnvAsBool(lo.logger, EnvParallel, env(EnvParallel), cfg.Solver.Parallel)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cfg, nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Solver.CacheSize <= 0 {
		return fmt.Errorf("%w: solver cache size %d", ErrInvalidConfig, c.Solver.CacheSize)
	}
	if c.DataDir == "" {
		return fmt.Errorf("%w: empty data dir", ErrInvalidConfig)
	}

	return nil
}

func getEnvAsInt(log *slog.Logger, key, strValue string, defaultValue int) int {
	const op = "config.getEnvAsInt"
	if strValue == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strValue)
	if err != nil {
		log.Warn("invalid value, using default", "op", op, "key", key, "value", strValue, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(log *slog.Logger, key, strValue string, defaultValue bool) bool {
	const op = "config.getEnvAsBool"
	if strValue == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(strValue)
	if err != nil {
		log.Warn("invalid value, using default", "op", op, "key", key, "value", strValue, "default", defaultValue)
		return defaultValue
	}
	return value
}
