// Package verify compares on-disk target digests against the embedded
// trust anchors. Targets are checked sequentially in fixed order and the
// first failure is fatal to the launch; there is no retry or partial trust.
package verify
