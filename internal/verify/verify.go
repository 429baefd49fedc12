package verify

import (
	"fmt"
	"path/filepath"

	"launchguard/internal/hashutil"
	"launchguard/internal/trust"
)

// Reason classifies why a target failed verification.
type Reason int

const (
	// Missing means the target file could not be opened.
	Missing Reason = iota
	// Mismatch means the computed digest differed from the trust anchor.
	Mismatch
)

func (r Reason) String() string {
	switch r {
	case Missing:
		return "missing"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Error reports a single target's verification failure together with the
// exit code the launcher must terminate with.
type Error struct {
	Target   trust.Target
	Reason   Reason
	Computed string
	ExitCode int
}

func (e *Error) Error() string {
	switch e.Reason {
	case Missing:
		return fmt.Sprintf("target %s: file %s not found", e.Target.Name, e.Target.FileName)
	default:
		return fmt.Sprintf("target %s: digest mismatch for %s", e.Target.Name, e.Target.FileName)
	}
}

// Result captures one target's outcome for reporting.
type Result struct {
	Target   trust.Target
	Path     string
	Computed string
	Err      *Error
}

// OK reports whether the target passed.
func (r Result) OK() bool { return r.Err == nil }

// checkTarget computes and compares one target's digest.
func checkTarget(dir string, target trust.Target) Result {
	path := filepath.Join(dir, target.FileName)
	computed, err := hashutil.File(path)
	if err != nil || computed == "" {
		return Result{Target: target, Path: path, Err: &Error{
			Target:   target,
			Reason:   Missing,
			ExitCode: target.MissingCode,
		}}
	}
	if computed != target.Expected {
		return Result{Target: target, Path: path, Computed: computed, Err: &Error{
			Target:   target,
			Reason:   Mismatch,
			Computed: computed,
			ExitCode: target.MismatchCode,
		}}
	}
	return Result{Target: target, Path: path, Computed: computed}
}

// Run verifies every target from the store in its fixed order and stops at
// the first failure. A nil return means all targets passed.
func Run(dir string, store trust.Store) *Error {
	for _, target := range store.Targets() {
		if result := checkTarget(dir, target); result.Err != nil {
			return result.Err
		}
	}
	return nil
}

// Report evaluates all targets without short-circuiting, for diagnostic
// display. The launch path never uses this; it relies on Run's first-failure
// abort.
func Report(dir string, store trust.Store) []Result {
	targets := store.Targets()
	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		results = append(results, checkTarget(dir, target))
	}
	return results
}
