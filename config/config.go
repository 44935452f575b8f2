// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/boukman/shortest"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Inventory drivers.
const (
	DriverSQLite = "sqlite"
	DriverYAML   = "yaml"
)

// Defaults applied to keys left unset.
const (
	DefaultLogLevel  = "info"
	DefaultAlgorithm = "bellman-ford"
)

// ErrInvalidConfig wraps every validation failure of a loaded file.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the TOML configuration of the boukman CLI.
//
//	log_level = "debug"
//	log_file = "logs/boukman.log"
//	algorithm = "johnson"
//	log_transform = true
//	workers = 8
//
//	[inventory]
//	driver = "sqlite"
//	path = "inventory.db"
type Config struct {
	LogLevel     string    `toml:"log_level"`
	LogFile      string    `toml:"log_file"`
	Algorithm    string    `toml:"algorithm"`
	LogTransform *bool     `toml:"log_transform"`
	Workers      int       `toml:"workers"`
	Inventory    Inventory `toml:"inventory"`
}

// Inventory selects the inventory backend. An empty Driver means no
// inventory: entity-level queries are unavailable.
type Inventory struct {
	Driver string `toml:"driver"`
	Path   string `toml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads the TOML file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	return finish(&cfg, filepath.Dir(path))
}

// Decode reads TOML from r; relative paths stay relative to the working directory.
func Decode(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}

	return finish(&cfg, "")
}

func finish(cfg *Config, baseDir string) (*Config, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if baseDir != "" && cfg.Inventory.Path != "" && !filepath.IsAbs(cfg.Inventory.Path) {
		cfg.Inventory.Path = filepath.Join(baseDir, cfg.Inventory.Path)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Algorithm == "" {
		c.Algorithm = DefaultAlgorithm
	}
	if c.LogTransform == nil {
		on := true
		c.LogTransform = &on
	}
	c.Inventory.Driver = strings.ToLower(c.Inventory.Driver)
}

// Validate checks every key; the error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := shortest.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	switch c.Inventory.Driver {
	case "":
	case DriverSQLite, DriverYAML:
		if c.Inventory.Path == "" {
			return fmt.Errorf("%w: inventory.path is required for driver %q", ErrInvalidConfig, c.Inventory.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown inventory.driver %q", ErrInvalidConfig, c.Inventory.Driver)
	}

	return nil
}

// ShortestAlgorithm returns the configured algorithm.
func (c *Config) ShortestAlgorithm() shortest.Algorithm {
	alg, err := shortest.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return shortest.BellmanFord
	}

	return alg
}

// LogTransformEnabled reports whether normalization applies -ln.
func (c *Config) LogTransformEnabled() bool {
	return c.LogTransform == nil || *c.LogTransform
}

// SetupLogger configures l from cfg: level, text formatter with full
// timestamps, and a rotating file when log_file is set (stderr otherwise).
// The returned closer is non-nil only for the rotating file.
func SetupLogger(l *log.Logger, cfg *Config) io.Closer {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		l.Warnf("Invalid log level '%s', using 'info'", cfg.LogLevel)
		level = log.InfoLevel
	}
	l.SetLevel(level)
	l.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if cfg.LogFile == "" {
		l.SetOutput(os.Stderr)
		return nil
	}
	if err = os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		l.Warnf("cannot create log directory for %s: %v; logging to stderr", cfg.LogFile, err)
		l.SetOutput(os.Stderr)
		return nil
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    100,  // MB per file
		MaxBackups: 7,    // recent backups kept
		MaxAge:     30,   // days
		Compress:   true, // gzip rotated files
	}
	l.SetOutput(rotator)

	return rotator
}
