// Package config loads, normalizes, and validates launchguard configuration.
//
// It supplies repository defaults, expands tilde shortcuts, reads TOML
// files, and honours the LAUNCHGUARD_CONFIG environment fallback. Only
// operational knobs live here (lock file, logging, dialog language, target
// file names); the expected digests are build-time constants by design and
// never appear in configuration.
package config
