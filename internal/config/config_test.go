package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
data:
  file: jobs.json
display:
  table: true
  hyperlinks: false
  default_sort: time
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "jobs.json", cfg.Data.File)
	assert.True(t, cfg.Display.Table)
	assert.False(t, cfg.Display.Hyperlinks)
	assert.Equal(t, "time", cfg.Display.DefaultSort)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep their defaults
	assert.True(t, cfg.Display.ShowPostedAge)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "display: [unclosed")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv(EnvFile, "/tmp/env-jobs.json")
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvTable, "true")
	t.Setenv(EnvHyperlinks, "0")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env-jobs.json", cfg.Data.File)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Display.Table)
	assert.False(t, cfg.Display.Hyperlinks)
}

func TestLoadConfigBadEnvBool(t *testing.T) {
	t.Setenv(EnvTable, "sometimes")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, ".env", "JOBANALYSIS_TEST_VALUE=from-dotenv\n")
	t.Setenv("JOBANALYSIS_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("JOBANALYSIS_TEST_VALUE"))

	require.NoError(t, LoadEnv(path, filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, "from-dotenv", os.Getenv("JOBANALYSIS_TEST_VALUE"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"defaults", func(*AppConfig) {}, false},
		{"title sort", func(c *AppConfig) { c.Display.DefaultSort = "title" }, false},
		{"bad sort", func(c *AppConfig) { c.Display.DefaultSort = "salary" }, true},
		{"bad level", func(c *AppConfig) { c.Logging.Level = "loud" }, true},
		{"json format", func(c *AppConfig) { c.Logging.Format = "json" }, false},
		{"bad format", func(c *AppConfig) { c.Logging.Format = "xml" }, true},
		{"negative threshold", func(c *AppConfig) { c.Display.ProgressThresholdBytes = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, pterm.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, pterm.LogLevelError, ParseLevel("error"))
	assert.Equal(t, pterm.LogLevelWarn, ParseLevel("unknown"))
}

func TestNewLoggerWritesAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logging.Level = "info"

	logger := cfg.NewLogger(&buf, false)
	logger.Debug("hidden")
	logger.Info("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}
