package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvBaseURL   = "ROADMAP_BASE_URL"
	EnvYear      = "ROADMAP_YEAR"
	EnvLogLevel  = "ROADMAP_LOG_LEVEL"
	EnvLogFormat = "ROADMAP_LOG_FORMAT"
)

// DefaultPath returns $XDG_CONFIG_HOME/roadmap/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, DefaultConfigParentDir, DefaultConfig)
}

// Load builds the configuration from defaults, the file at path and the
// environment. An empty path means DefaultPath, which may be missing; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	exists, err := fileExists(path)
	if err != nil {
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}
	switch {
	case exists:
		if err := loadConfigFile(&cfg, path); err != nil {
			return nil, err
		}
	case explicit:
		return nil, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
	}

	if err := loadFromEnv(&cfg, os.Getenv); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfigFile(cfg *Config, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", file, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", file, err)
	}
	return nil
}

func loadFromEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv(EnvYear); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvYear, err)
		}
		cfg.Year = year
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	return nil
}

func fileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
