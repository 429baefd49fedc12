// Package launch starts the verified target executable. It derives the
// install directory from the launcher's own path, forwards the original
// command-line arguments with each token individually quoted, and spawns
// the child fire-and-forget.
package launch
