// Package config loads CLI settings from defaults, a YAML file, the
// environment and flags, in that order.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const (
	DefaultConfigParentDir = "roadmap"
	DefaultConfig          = "config.yaml"
	DefaultBaseURL         = "https://roadmap.local/"
	DefaultTerminalWidth   = 72
)

// Config holds the settings shared by all commands.
type Config struct {
	BaseURL       string `yaml:"base_url"`
	Year          int    `yaml:"year"` // 0 means the current year
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	TerminalWidth int    `yaml:"terminal_width"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		LogLevel:      "info",
		LogFormat:     "text",
		TerminalWidth: DefaultTerminalWidth,
	}
}

// ResolveYear returns Year, or the year of now when Year is unset.
func (c Config) ResolveYear(now time.Time) int {
	if c.Year > 0 {
		return c.Year
	}
	return now.Year()
}

// Validate checks field ranges and the base URL.
func (c Config) Validate() error {
	var errs []error
	if c.Year < 0 || c.Year > 9999 {
		errs = append(errs, fmt.Errorf("year %d out of range", c.Year))
	}
	if c.TerminalWidth < 0 {
		errs = append(errs, fmt.Errorf("terminal_width %d must not be negative", c.TerminalWidth))
	}
	u, err := url.Parse(c.BaseURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("base_url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("base_url %q must be an http(s) URL", c.BaseURL))
	}
	return errors.Join(errs...)
}
