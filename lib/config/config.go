// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for Quad commands.
//
// Configuration is loaded from a single file specified by:
//   - QUAD_CONFIG environment variable, or
//   - --config flag passed to the command
//
// Unlike a server, a marketplace client must work out of the box, so a
// missing config file is not an error: defaults apply, and QUAD_BACKEND_URL
// overrides the backend address for quick pointing at another gateway.
//
// The config file may contain environment-specific sections (development,
// staging, production) that override base values when the environment matches.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the master configuration for Quad.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Backend configures the marketplace gateway connection.
	Backend BackendConfig `yaml:"backend"`

	// Session configures local session persistence.
	Session SessionConfig `yaml:"session"`

	// Viewer configures the terminal viewer.
	Viewer ViewerConfig `yaml:"viewer"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Backend *BackendConfig `yaml:"backend,omitempty"`
	Session *SessionConfig `yaml:"session,omitempty"`
	Viewer  *ViewerConfig  `yaml:"viewer,omitempty"`
}

// BackendConfig configures the marketplace gateway connection.
type BackendConfig struct {
	// BaseURL is the gateway address.
	// Default: http://localhost:8000
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each request, as a Go duration string.
	// Default: 30s
	Timeout string `yaml:"timeout"`
}

// Duration parses the request timeout. Validate reports unparseable
// values, so callers that validated first can ignore the error.
func (b *BackendConfig) Duration() (time.Duration, error) {
	if b.Timeout == "" {
		return 0, fmt.Errorf("backend.timeout is empty")
	}
	timeout, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 0, fmt.Errorf("backend.timeout is not a duration: %q", b.Timeout)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("backend.timeout must be positive: %q", b.Timeout)
	}
	return timeout, nil
}

// SessionConfig configures local session persistence.
type SessionConfig struct {
	// File is where the logged-in session is stored.
	// Default: ${XDG_CONFIG_HOME:-~/.config}/quad/session.json
	File string `yaml:"file"`
}

// ViewerConfig configures the terminal viewer.
type ViewerConfig struct {
	// Campus preselects the campus filter on the browse view.
	Campus string `yaml:"campus"`

	// SyntaxTheme is the chroma style used for code blocks in
	// item descriptions. Default: monokai
	SyntaxTheme string `yaml:"syntax_theme"`

	// AltScreen controls whether the viewer takes over the whole
	// terminal. Default: true
	AltScreen *bool `yaml:"alt_screen,omitempty"`
}

// Default returns the default configuration.
// These defaults make every command usable with no config file at all,
// matching a fresh checkout pointed at a local gateway.
func Default() *Config {
	configDir, _ := os.UserConfigDir()
	altScreen := true

	return &Config{
		Environment: Development,
		Backend: BackendConfig{
			BaseURL: "http://localhost:8000",
			Timeout: "30s",
		},
		Session: SessionConfig{
			File: filepath.Join(configDir, "quad", "session.json"),
		},
		Viewer: ViewerConfig{
			SyntaxTheme: "monokai",
			AltScreen:   &altScreen,
		},
	}
}

// Load loads configuration from the QUAD_CONFIG environment variable.
//
// If QUAD_CONFIG is unset the defaults are returned; if it is set the file
// must exist and parse. Either way QUAD_BACKEND_URL, when set, replaces the
// backend address last.
func Load() (*Config, error) {
	configPath := os.Getenv("QUAD_CONFIG")
	if configPath == "" {
		cfg := Default()
		cfg.applyEnvironment()
		return cfg, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the primary source of truth. The only values read from
// the environment are QUAD_BACKEND_URL (a deliberate escape hatch for
// pointing at another gateway) and variables referenced by ${VAR} expansion
// in paths.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	// Apply environment-specific overrides (development/staging/production sections in the file).
	cfg.applyEnvironmentOverrides()

	// Expand ${HOME} and similar variables in paths for portability.
	cfg.expandVariables()

	cfg.applyEnvironment()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

// applyEnvironment applies process-environment overrides, which win over
// everything from the file.
func (c *Config) applyEnvironment() {
	if backendURL := os.Getenv("QUAD_BACKEND_URL"); backendURL != "" {
		c.Backend.BaseURL = backendURL
	}
	if sessionFile := os.Getenv("QUAD_SESSION_FILE"); sessionFile != "" {
		c.Session.File = sessionFile
	}
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}

	if overrides == nil {
		return
	}

	if overrides.Backend != nil {
		if overrides.Backend.BaseURL != "" {
			c.Backend.BaseURL = overrides.Backend.BaseURL
		}
		if overrides.Backend.Timeout != "" {
			c.Backend.Timeout = overrides.Backend.Timeout
		}
	}

	if overrides.Session != nil {
		if overrides.Session.File != "" {
			c.Session.File = overrides.Session.File
		}
	}

	if overrides.Viewer != nil {
		if overrides.Viewer.Campus != "" {
			c.Viewer.Campus = overrides.Viewer.Campus
		}
		if overrides.Viewer.SyntaxTheme != "" {
			c.Viewer.SyntaxTheme = overrides.Viewer.SyntaxTheme
		}
		if overrides.Viewer.AltScreen != nil {
			c.Viewer.AltScreen = overrides.Viewer.AltScreen
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Session.File = expandVars(c.Session.File, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Backend.BaseURL == "" {
		errs = append(errs, fmt.Errorf("backend.base_url is required"))
	} else if parsed, err := url.Parse(c.Backend.BaseURL); err != nil || !parsed.IsAbs() {
		errs = append(errs, fmt.Errorf("backend.base_url must be an absolute URL: %s", c.Backend.BaseURL))
	}

	if _, err := c.Backend.Duration(); err != nil {
		errs = append(errs, err)
	}

	if c.Session.File == "" {
		errs = append(errs, fmt.Errorf("session.file is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
