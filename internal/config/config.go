package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvFile       = "JOBANALYSIS_FILE"
	EnvLogLevel   = "JOBANALYSIS_LOG_LEVEL"
	EnvTable      = "JOBANALYSIS_TABLE"
	EnvHyperlinks = "JOBANALYSIS_HYPERLINKS"
)

// AppConfig represents the application configuration
type AppConfig struct {
	Data    DataConfig    `yaml:"data"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

type DataConfig struct {
	File string `yaml:"file"` // Job file loaded at startup
}

type DisplayConfig struct {
	Table                  bool   `yaml:"table"`
	Hyperlinks             bool   `yaml:"hyperlinks"`
	DefaultSort            string `yaml:"default_sort"`
	ShowPostedAge          bool   `yaml:"show_posted_age"`
	ProgressThresholdBytes int64  `yaml:"progress_threshold_bytes"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			Hyperlinks:             true,
			ShowPostedAge:          true,
			ProgressThresholdBytes: 1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadConfig reads the YAML file at path on top of the defaults and then
// applies environment overrides. A missing file is not an error.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads variables from .env files into the process environment.
// Missing files are ignored and existing variables are not overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func findConfigPath() string {
	paths := []string{"jobanalysis.yaml", "config.yaml"}

	if home, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(home, "jobanalysis", "config.yaml"))
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return "jobanalysis.yaml"
}

func (c *AppConfig) applyEnv() error {
	if v := os.Getenv(EnvFile); v != "" {
		c.Data.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvTable); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTable, v, err)
		}
		c.Display.Table = b
	}
	if v := os.Getenv(EnvHyperlinks); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvHyperlinks, v, err)
		}
		c.Display.Hyperlinks = b
	}
	return nil
}

// Validate validates the configuration
func (c *AppConfig) Validate() error {
	if c.Display.DefaultSort != "" {
		if _, ok := models.ParseSortKey(c.Display.DefaultSort); !ok {
			return fmt.Errorf("default sort must be title or time, got %q", c.Display.DefaultSort)
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.Logging.Format)
	}

	if c.Display.ProgressThresholdBytes < 0 {
		return fmt.Errorf("progress threshold cannot be negative")
	}

	return nil
}
