// Package config loads biocycle settings from YAML with environment
// overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/biocycle/activity"
	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
	"github.com/katalvlaran/biocycle/pattern"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvBirthDate = "BIOCYCLE_BIRTH_DATE"
	EnvEpsilon   = "BIOCYCLE_EPSILON"
	EnvLogLevel  = "BIOCYCLE_LOG_LEVEL"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root configuration document.
type Config struct {
	BirthDate  string           `yaml:"birth_date,omitempty"` // YYYY-MM-DD
	Detection  DetectionConfig  `yaml:"detection"`
	Logging    LoggingConfig    `yaml:"logging"`
	Watch      WatchConfig      `yaml:"watch"`
	Activities []ActivityConfig `yaml:"activities,omitempty"`
}

// DetectionConfig tunes the pattern detector.
type DetectionConfig struct {
	Epsilon          float64 `yaml:"epsilon"`
	DefaultThreshold float64 `yaml:"default_threshold"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Schedule string `yaml:"schedule"` // standard 5-field cron spec
}

// ActivityConfig seeds one activity into every new session.
// Category is required; a nil Threshold falls back to
// Detection.DefaultThreshold.
type ActivityConfig struct {
	Name      string       `yaml:"name"`
	Category  *cycle.Cycle `yaml:"category"`
	Threshold *float64     `yaml:"threshold,omitempty"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Detection: DetectionConfig{
			Epsilon:          pattern.DefaultEpsilon,
			DefaultThreshold: activity.DefaultThreshold,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Watch: WatchConfig{
			Schedule: "0 7 * * *",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/biocycle/config.yaml or, when no user
// config directory is known, ./biocycle.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "biocycle.yaml"
	}

	return filepath.Join(dir, "biocycle", "config.yaml")
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode reads YAML strictly: unknown keys are errors. An empty document
// leaves cfg untouched.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvBirthDate); v != "" {
		c.BirthDate = v
	}
	if v := os.Getenv(EnvEpsilon); v != "" {
		eps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvEpsilon, v, ErrInvalid)
		}
		c.Detection.Epsilon = eps
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}

	return nil
}

// Birth parses BirthDate. ok is false when no birth date is configured.
func (c *Config) Birth() (birth time.Time, ok bool, err error) {
	if strings.TrimSpace(c.BirthDate) == "" {
		return time.Time{}, false, nil
	}
	birth, err = calendar.Parse(c.BirthDate)
	if err != nil {
		return time.Time{}, false, err
	}

	return birth, true, nil
}

// ThresholdFor returns a's threshold or the configured default.
func (c *Config) ThresholdFor(a ActivityConfig) float64 {
	if a.Threshold != nil {
		return *a.Threshold
	}

	return c.Detection.DefaultThreshold
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted logging formats.
var ValidFormats = []string{"json", "console"}

// Validate checks every field and reports the first problem found.
func (c *Config) Validate() error {
	if _, _, err := c.Birth(); err != nil {
		return fmt.Errorf("birth_date: %w", err)
	}
	if !inRange(c.Detection.Epsilon, math.Inf(1)) {
		return fmt.Errorf("detection.epsilon %v: %w", c.Detection.Epsilon, ErrInvalid)
	}
	if !inRange(c.Detection.DefaultThreshold, 1) {
		return fmt.Errorf("detection.default_threshold %v: %w", c.Detection.DefaultThreshold, ErrInvalid)
	}
	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level %q (valid: %v): %w", c.Logging.Level, ValidLevels, ErrInvalid)
	}
	if !slices.Contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format %q (valid: %v): %w", c.Logging.Format, ValidFormats, ErrInvalid)
	}
	if _, err := cron.ParseStandard(c.Watch.Schedule); err != nil {
		return fmt.Errorf("watch.schedule %q: %v: %w", c.Watch.Schedule, err, ErrInvalid)
	}
	for i, a := range c.Activities {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("activities[%d].name: %w", i, ErrInvalid)
		}
		if a.Category == nil {
			return fmt.Errorf("activities[%d].category missing: %w", i, ErrInvalid)
		}
		if !a.Category.Valid() {
			return fmt.Errorf("activities[%d].category: %w", i, ErrInvalid)
		}
		if th := c.ThresholdFor(a); !inRange(th, 1) {
			return fmt.Errorf("activities[%d].threshold %v: %w", i, th, ErrInvalid)
		}
	}

	return nil
}

// Seed adds every configured activity to reg in file order.
func (c *Config) Seed(reg *activity.Registry) error {
	for i, a := range c.Activities {
		if a.Category == nil {
			return fmt.Errorf("activities[%d].category missing: %w", i, ErrInvalid)
		}
		if _, err := reg.Add(a.Name, *a.Category, c.ThresholdFor(a)); err != nil {
			return fmt.Errorf("activities[%d]: %w", i, err)
		}
	}

	return nil
}

// inRange reports whether 0 <= v <= hi.
func inRange(v, hi float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= hi
}
