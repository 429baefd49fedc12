package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory locations used by the launcher.
type Paths struct {
	// LockFile backs the single-instance guard.
	LockFile string `toml:"lock_file"`
	// LogDir receives launcher log files when set; empty disables file logging.
	LogDir string `toml:"log_dir"`
	// InstallDir overrides target resolution. Empty means the directory
	// containing the launcher binary, which is the normal deployment.
	InstallDir string `toml:"install_dir"`
}

// Targets names the executables verified before launch. The expected
// digests are compiled into the binary and are deliberately absent here.
type Targets struct {
	Primary string `toml:"primary"`
	Helper  string `toml:"helper"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// UI contains user-facing presentation settings.
type UI struct {
	// Language selects the dialog language ("ko" or "en"). Empty falls
	// back to the process locale environment.
	Language string `toml:"language"`
}

// Config encapsulates all launcher configuration values.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Targets Targets `toml:"targets"`
	Logging Logging `toml:"logging"`
	UI      UI      `toml:"ui"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/launchguard/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error: defaults apply. The returned path is the location that
// was consulted and exists reports whether a file was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	candidate := strings.TrimSpace(path)
	if candidate == "" {
		candidate = strings.TrimSpace(os.Getenv("LAUNCHGUARD_CONFIG"))
	}
	if candidate == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		candidate = defaultPath
	}

	expanded, err := ExpandPath(candidate)
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config %s: %w", expanded, err)
	}
	return expanded, true, nil
}

// ExpandPath resolves tilde shortcuts and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			trimmed = home
		} else {
			trimmed = filepath.Join(home, trimmed[2:])
		}
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// EnsureDirectories creates the directories the launcher writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{filepath.Dir(c.Paths.LockFile)}
	if c.Paths.LogDir != "" {
		dirs = append(dirs, c.Paths.LogDir)
	}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (c *Config) normalize() error {
	lock, err := ExpandPath(c.Paths.LockFile)
	if err != nil {
		return fmt.Errorf("paths.lock_file: %w", err)
	}
	c.Paths.LockFile = lock

	if strings.TrimSpace(c.Paths.LogDir) != "" {
		logDir, err := ExpandPath(c.Paths.LogDir)
		if err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
		c.Paths.LogDir = logDir
	} else {
		c.Paths.LogDir = ""
	}

	if strings.TrimSpace(c.Paths.InstallDir) != "" {
		installDir, err := ExpandPath(c.Paths.InstallDir)
		if err != nil {
			return fmt.Errorf("paths.install_dir: %w", err)
		}
		c.Paths.InstallDir = installDir
	} else {
		c.Paths.InstallDir = ""
	}

	c.Targets.Primary = strings.TrimSpace(c.Targets.Primary)
	c.Targets.Helper = strings.TrimSpace(c.Targets.Helper)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.UI.Language = strings.ToLower(strings.TrimSpace(c.UI.Language))
	return nil
}
