package main

import (
	"sync"

	"launchguard/internal/config"
	"launchguard/internal/launch"
	"launchguard/internal/trust"
)

type commandContext struct {
	configPath string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// trustStore returns the embedded anchor table with the config's file name
// overrides applied.
func (c *commandContext) trustStore() (trust.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return trust.Embedded(cfg.Targets.Primary, cfg.Targets.Helper), nil
}

// installDir resolves the directory holding the verified targets.
func (c *commandContext) installDir() (string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if cfg.Paths.InstallDir != "" {
		return cfg.Paths.InstallDir, nil
	}
	return launch.InstallDir()
}
