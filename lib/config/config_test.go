// Copyright 2026 The Quad Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}

	if cfg.Backend.BaseURL != "http://localhost:8000" {
		t.Errorf("expected base_url=http://localhost:8000, got %s", cfg.Backend.BaseURL)
	}

	if cfg.Backend.Timeout != "30s" {
		t.Errorf("expected timeout=30s, got %s", cfg.Backend.Timeout)
	}

	if filepath.Base(cfg.Session.File) != "session.json" {
		t.Errorf("expected session file named session.json, got %s", cfg.Session.File)
	}

	if cfg.Viewer.AltScreen == nil || !*cfg.Viewer.AltScreen {
		t.Error("expected alt_screen=true by default")
	}
}

func TestLoad_WithoutQuadConfig(t *testing.T) {
	t.Setenv("QUAD_CONFIG", "")
	t.Setenv("QUAD_BACKEND_URL", "")
	t.Setenv("QUAD_SESSION_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without QUAD_CONFIG failed: %v", err)
	}

	if cfg.Backend.BaseURL != "http://localhost:8000" {
		t.Errorf("expected default base_url, got %s", cfg.Backend.BaseURL)
	}
}

func TestLoad_WithQuadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "quad.yaml")

	configContent := `
environment: staging
backend:
  base_url: https://market.staging.example.edu
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("QUAD_CONFIG", configPath)
	t.Setenv("QUAD_BACKEND_URL", "")
	t.Setenv("QUAD_SESSION_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}

	if cfg.Backend.BaseURL != "https://market.staging.example.edu" {
		t.Errorf("expected staging base_url, got %s", cfg.Backend.BaseURL)
	}
}

func TestLoad_MissingConfigFileFails(t *testing.T) {
	t.Setenv("QUAD_CONFIG", "/nonexistent/quad.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when QUAD_CONFIG points at a missing file")
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "quad.yaml")

	configContent := `
environment: staging

backend:
  base_url: https://market.example.edu
  timeout: 10s

session:
  file: /custom/session.json

viewer:
  campus: AIIMS Delhi
  syntax_theme: dracula
  alt_screen: false
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("QUAD_BACKEND_URL", "")
	t.Setenv("QUAD_SESSION_FILE", "")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}

	if cfg.Backend.BaseURL != "https://market.example.edu" {
		t.Errorf("expected base_url=https://market.example.edu, got %s", cfg.Backend.BaseURL)
	}

	if cfg.Backend.Timeout != "10s" {
		t.Errorf("expected timeout=10s, got %s", cfg.Backend.Timeout)
	}

	if cfg.Session.File != "/custom/session.json" {
		t.Errorf("expected session file=/custom/session.json, got %s", cfg.Session.File)
	}

	if cfg.Viewer.Campus != "AIIMS Delhi" {
		t.Errorf("expected campus=AIIMS Delhi, got %s", cfg.Viewer.Campus)
	}

	if cfg.Viewer.SyntaxTheme != "dracula" {
		t.Errorf("expected syntax_theme=dracula, got %s", cfg.Viewer.SyntaxTheme)
	}

	if cfg.Viewer.AltScreen == nil || *cfg.Viewer.AltScreen {
		t.Error("expected alt_screen=false from file")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "quad.yaml")

	configContent := `
environment: production

backend:
  base_url: http://localhost:8000

production:
  backend:
    base_url: https://market.example.edu
    timeout: 15s
  viewer:
    alt_screen: false
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("QUAD_BACKEND_URL", "")
	t.Setenv("QUAD_SESSION_FILE", "")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Backend.BaseURL != "https://market.example.edu" {
		t.Errorf("expected base_url from production override, got %s", cfg.Backend.BaseURL)
	}

	if cfg.Backend.Timeout != "15s" {
		t.Errorf("expected timeout=15s from production override, got %s", cfg.Backend.Timeout)
	}

	if cfg.Viewer.AltScreen == nil || *cfg.Viewer.AltScreen {
		t.Error("expected alt_screen=false from production override")
	}
}

func TestBackendURLEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "quad.yaml")

	configContent := `
backend:
  base_url: https://market.example.edu
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("QUAD_BACKEND_URL", "http://127.0.0.1:9000")
	t.Setenv("QUAD_SESSION_FILE", "")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Backend.BaseURL != "http://127.0.0.1:9000" {
		t.Errorf("expected QUAD_BACKEND_URL to win, got %s", cfg.Backend.BaseURL)
	}
}

func TestSessionFileExpansion(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "quad.yaml")

	configContent := `
session:
  file: ${HOME}/quad/session.json
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("HOME", "/home/asha")
	t.Setenv("QUAD_BACKEND_URL", "")
	t.Setenv("QUAD_SESSION_FILE", "")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Session.File != "/home/asha/quad/session.json" {
		t.Errorf("expected expanded session file, got %s", cfg.Session.File)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/quad",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/quad",
		},
		{
			input:    "${MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "invalid environment",
			modify: func(c *Config) {
				c.Environment = "invalid"
			},
			wantErr: true,
		},
		{
			name: "empty base URL",
			modify: func(c *Config) {
				c.Backend.BaseURL = ""
			},
			wantErr: true,
		},
		{
			name: "relative base URL",
			modify: func(c *Config) {
				c.Backend.BaseURL = "market.example.edu"
			},
			wantErr: true,
		},
		{
			name: "unparseable timeout",
			modify: func(c *Config) {
				c.Backend.Timeout = "half a minute"
			},
			wantErr: true,
		},
		{
			name: "empty timeout",
			modify: func(c *Config) {
				c.Backend.Timeout = ""
			},
			wantErr: true,
		},
		{
			name: "negative timeout",
			modify: func(c *Config) {
				c.Backend.Timeout = "-5s"
			},
			wantErr: true,
		},
		{
			name: "empty session file",
			modify: func(c *Config) {
				c.Session.File = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackendDuration(t *testing.T) {
	backend := BackendConfig{Timeout: "45s"}
	timeout, err := backend.Duration()
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if timeout != 45*time.Second {
		t.Errorf("Duration() = %v, want 45s", timeout)
	}

	defaults := Default()
	if _, err := defaults.Backend.Duration(); err != nil {
		t.Errorf("default timeout must parse: %v", err)
	}

	for _, bad := range []string{"", "soon", "0s", "-1m"} {
		backend := BackendConfig{Timeout: bad}
		if _, err := backend.Duration(); err == nil {
			t.Errorf("Duration() accepted %q", bad)
		}
	}
}
