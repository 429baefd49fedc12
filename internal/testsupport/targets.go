package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"launchguard/internal/exitcode"
	"launchguard/internal/hashutil"
	"launchguard/internal/trust"
)

// WriteTarget writes content at dir/name with executable permissions and
// returns its uppercase hex digest.
func WriteTarget(t testing.TB, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write target %s: %v", path, err)
	}
	return hashutil.Bytes(content)
}

// WriteStubTarget writes an executable shell script at dir/name that
// records its arguments, one per line, into recordPath. It returns the
// script's digest so tests can anchor it.
func WriteStubTarget(t testing.TB, dir, name, recordPath string) string {
	t.Helper()

	script := "#!/bin/sh\n" +
		"for arg in \"$@\"; do printf '%s\\n' \"$arg\"; done > " + recordPath + "\n"
	return WriteTarget(t, dir, name, []byte(script))
}

// Store builds a two-target trust store over the provided file names and
// expected digests, using the production exit code assignments.
func Store(primaryFile, primaryDigest, helperFile, helperDigest string) trust.Store {
	return trust.Fixed(
		trust.Target{
			Name:         "primary",
			FileName:     primaryFile,
			Expected:     primaryDigest,
			MissingCode:  exitcode.PrimaryMissing,
			MismatchCode: exitcode.PrimaryMismatch,
			MessageKey:   "primary",
		},
		trust.Target{
			Name:         "helper",
			FileName:     helperFile,
			Expected:     helperDigest,
			MissingCode:  exitcode.HelperMissing,
			MismatchCode: exitcode.HelperMismatch,
			MessageKey:   "helper",
		},
	)
}
