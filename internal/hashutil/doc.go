// Package hashutil implements the launcher's digest engine: streaming
// SHA-256 over file contents rendered as uppercase hexadecimal, the exact
// form the embedded trust anchors are written in.
package hashutil
