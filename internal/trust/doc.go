// Package trust holds the launcher's trust anchors: the build-time table
// mapping each verified target to its expected digest, exposed behind a
// small Store interface so the anchor source can later be swapped (for
// example for a signed manifest) without touching the verification logic.
package trust
