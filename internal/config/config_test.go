package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvBaseURL, EnvYear, EnvLogLevel, EnvLogFormat} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 72, cfg.TerminalWidth)
	assert.Zero(t, cfg.Year)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "base_url: https://plans.example.com/roadmap/\nyear: 2026\nterminal_width: 100\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://plans.example.com/roadmap/", cfg.BaseURL)
	assert.Equal(t, 2026, cfg.Year)
	assert.Equal(t, 100, cfg.TerminalWidth)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "year: 2026\nlog_level: warn\n")
	t.Setenv(EnvYear, "2027")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvBaseURL, "http://localhost:5173/")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2027, cfg.Year)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://localhost:5173/", cfg.BaseURL)
}

func TestLoad_BadEnvYear(t *testing.T) {
	t.Setenv(EnvYear, "next")
	_, err := Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, EnvYear)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "year: [1, 2\n"))
	assert.ErrorContains(t, err, "parsing config file")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join(DefaultConfigParentDir, DefaultConfig), filepath.Join(filepath.Base(filepath.Dir(DefaultPath())), filepath.Base(DefaultPath())))
}

func TestResolveYear(t *testing.T) {
	now := time.Date(2031, time.May, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2031, Config{}.ResolveYear(now))
	assert.Equal(t, 2024, Config{Year: 2024}.ResolveYear(now))
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.Year = -1
	cfg.TerminalWidth = -5
	cfg.BaseURL = "ftp://example.com"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year -1")
	assert.Contains(t, err.Error(), "terminal_width")
	assert.Contains(t, err.Error(), "http(s)")
}
