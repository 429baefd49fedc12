package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning reports that another launcher instance holds the lock.
var ErrAlreadyRunning = errors.New("another launcher instance is already running")

// Guard holds the cross-process single-instance lock for the lifetime of a
// launch attempt.
type Guard struct {
	path string
	lock *flock.Flock

	mu       sync.Mutex
	released bool
}

// Acquire attempts to take the exclusive lock at path without blocking.
// When another process holds it, ErrAlreadyRunning is returned and no
// other resource is touched.
func Acquire(path string) (*Guard, error) {
	if path == "" {
		return nil, errors.New("lock path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	return &Guard{path: path, lock: lock}, nil
}

// Release drops the lock. It is idempotent so it can sit behind a defer on
// every exit path.
func (g *Guard) Release() error {
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.released {
		return nil
	}
	g.released = true
	if err := g.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", g.path, err)
	}
	return nil
}

// Path returns the lock file location.
func (g *Guard) Path() string {
	if g == nil {
		return ""
	}
	return g.path
}
