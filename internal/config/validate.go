package config

import (
	"errors"
	"fmt"
)

var validLogFormats = map[string]struct{}{
	"":        {},
	"console": {},
	"json":    {},
}

var validLogLevels = map[string]struct{}{
	"":      {},
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

var validLanguages = map[string]struct{}{
	"":   {},
	"ko": {},
	"en": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.LockFile == "" {
		return errors.New("paths.lock_file must be set")
	}
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if _, ok := validLanguages[c.UI.Language]; !ok {
		return fmt.Errorf("ui.language: unsupported value %q (use ko or en)", c.UI.Language)
	}
	return nil
}
