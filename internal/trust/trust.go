package trust

import (
	"strings"

	"launchguard/internal/exitcode"
)

// Build-time trust anchors. Each value is the uppercase hex SHA-256 digest
// of the corresponding release binary and is stamped at build time:
//
//	go build -ldflags "-X launchguard/internal/trust.primaryDigest=<hex> \
//	                   -X launchguard/internal/trust.helperDigest=<hex>"
//
// Rotating an anchor is a rebuild, never a configuration edit.
var (
	primaryDigest = "30E49E43E09602CA9823A09CF6DA04C90334EDD4864A463C69D19C0A72409613"
	helperDigest  = "43535990DA17776D53A0958B813B16604FD94B5FC7AA34CF2C0630F2624A976C"
)

// Default target file names, expected alongside the launcher binary.
const (
	DefaultPrimaryFile = "main.exe"
	DefaultHelperFile  = "QtWebEngineProcess.exe"
)

// Target describes one executable whose integrity gates the launch.
type Target struct {
	// Name is the stable logical identifier ("primary", "helper").
	Name string
	// FileName is the expected file name next to the launcher.
	FileName string
	// Expected is the uppercase hex SHA-256 digest the file must match.
	Expected string
	// MissingCode and MismatchCode are the process exit codes for the two
	// failure modes of this target.
	MissingCode  int
	MismatchCode int
	// MessageKey selects the localized dialog strings for this target.
	MessageKey string
}

// Store yields verification targets in their fixed check order.
type Store interface {
	Targets() []Target
}

type embeddedStore struct {
	targets []Target
}

func (s *embeddedStore) Targets() []Target {
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// Embedded returns the build-time trust store: the primary executable
// first, the helper second. File name overrides may be empty to keep the
// defaults.
func Embedded(primaryFile, helperFile string) Store {
	primary := strings.TrimSpace(primaryFile)
	if primary == "" {
		primary = DefaultPrimaryFile
	}
	helper := strings.TrimSpace(helperFile)
	if helper == "" {
		helper = DefaultHelperFile
	}
	return &embeddedStore{targets: []Target{
		{
			Name:         "primary",
			FileName:     primary,
			Expected:     primaryDigest,
			MissingCode:  exitcode.PrimaryMissing,
			MismatchCode: exitcode.PrimaryMismatch,
			MessageKey:   "primary",
		},
		{
			Name:         "helper",
			FileName:     helper,
			Expected:     helperDigest,
			MissingCode:  exitcode.HelperMissing,
			MismatchCode: exitcode.HelperMismatch,
			MessageKey:   "helper",
		},
	}}
}

// Fixed returns a store over the provided targets, preserving order. It
// exists so tests and the verify command can substitute anchors without
// touching the embedded table.
func Fixed(targets ...Target) Store {
	return &embeddedStore{targets: targets}
}
