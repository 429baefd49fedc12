package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrLaunchFailed reports that process creation for the verified target
// did not succeed.
var ErrLaunchFailed = errors.New("failed to start target process")

// InstallDir resolves the directory containing the running launcher
// binary, following symlinks. The verified targets are expected to live in
// this directory.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable symlinks: %w", err)
	}
	return filepath.Dir(resolved), nil
}

// QuoteArgs renders forwarded arguments as a single command line: each
// token wrapped in double quotes, joined by single spaces, in original
// order. Tokens containing quotes are not escaped further; the contract is
// plain wrapping, matching what the spawned target expects to parse.
func QuoteArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, `"`+arg+`"`)
	}
	return strings.Join(quoted, " ")
}

// Start spawns the target executable with the forwarded arguments and
// immediately releases the child handle. The launcher does not supervise
// the child: ownership ends at successful creation.
func Start(targetPath string, args []string) error {
	if strings.TrimSpace(targetPath) == "" {
		return errors.New("target path required")
	}

	proc := exec.Command(targetPath, args...)
	proc.Dir = filepath.Dir(targetPath)
	if err := proc.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}
	return proc.Process.Release()
}
