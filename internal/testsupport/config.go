package testsupport

import (
	"path/filepath"
	"testing"

	"launchguard/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp paths per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LockFile = filepath.Join(base, "launchguard.lock")
	cfg.Paths.LogDir = ""
	cfg.Paths.InstallDir = filepath.Join(base, "install")
	cfg.UI.Language = "en"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithInstallDir overrides the install directory on the test config.
func WithInstallDir(dir string) ConfigOption {
	return func(c *config.Config) {
		c.Paths.InstallDir = dir
	}
}

// WithTargets overrides the verified target file names.
func WithTargets(primary, helper string) ConfigOption {
	return func(c *config.Config) {
		c.Targets.Primary = primary
		c.Targets.Helper = helper
	}
}

// WithLanguage overrides the dialog language.
func WithLanguage(lang string) ConfigOption {
	return func(c *config.Config) {
		c.UI.Language = lang
	}
}
