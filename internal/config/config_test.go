package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LAUNCHGUARD_CONFIG", "")

	cfg, path, exists, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("exists = true for missing file at %s", path)
	}
	if !strings.HasPrefix(cfg.Paths.LockFile, home) {
		t.Fatalf("lock file %s not expanded under home %s", cfg.Paths.LockFile, home)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("default level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Targets.Primary != "" || cfg.Targets.Helper != "" {
		t.Fatalf("default target names should be empty, got %q/%q", cfg.Targets.Primary, cfg.Targets.Helper)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
lock_file = "` + filepath.Join(dir, "guard.lock") + `"
log_dir = ""

[targets]
primary = "app"
helper = "app-helper"

[logging]
format = "json"
level = "debug"

[ui]
language = "en"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for present file")
	}
	if resolved != path {
		t.Fatalf("resolved path = %s, want %s", resolved, path)
	}
	if cfg.Targets.Primary != "app" || cfg.Targets.Helper != "app-helper" {
		t.Fatalf("targets = %q/%q", cfg.Targets.Primary, cfg.Targets.Helper)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
	if cfg.UI.Language != "en" {
		t.Fatalf("language = %q", cfg.UI.Language)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("log dir = %q, want empty", cfg.Paths.LogDir)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env-config.toml")
	content := `
[ui]
language = "ko"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LAUNCHGUARD_CONFIG", path)

	cfg, resolved, exists, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %s exists = %v, want %s true", resolved, exists, path)
	}
	if cfg.UI.Language != "ko" {
		t.Fatalf("language = %q, want ko", cfg.UI.Language)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad language", func(c *Config) { c.UI.Language = "fr" }},
		{"empty lock file", func(c *Config) { c.Paths.LockFile = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Paths.LockFile = "/tmp/launchguard.lock"
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after CreateSample")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/launchguard/config.toml")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	want := filepath.Join(home, "launchguard", "config.toml")
	if got != want {
		t.Fatalf("ExpandPath = %s, want %s", got, want)
	}
}
