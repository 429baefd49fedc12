// Package instance enforces single-instance execution of the launcher via
// an exclusive flock on a well-known lock file, serializing launcher
// processes system-wide rather than within one process.
package instance
