package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// chunkSize is the read buffer used when streaming files through the
// accumulator. The digest is chunk-size independent; 8 KiB keeps memory
// flat for arbitrarily large executables.
const chunkSize = 8 * 1024

const hexDigits = "0123456789ABCDEF"

// encodeUpper renders a raw digest as uppercase hexadecimal. The expected
// digest table is written in uppercase and verification compares exact
// strings, so the case here is part of the contract.
func encodeUpper(sum []byte) string {
	out := make([]byte, 0, len(sum)*2)
	for _, b := range sum {
		out = append(out, hexDigits[b>>4], hexDigits[b&0xf])
	}
	return string(out)
}

// Sum streams r through SHA-256 and returns the uppercase hex digest.
func Sum(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("hash stream: %w", err)
	}
	return encodeUpper(h.Sum(nil)), nil
}

// Bytes returns the uppercase hex SHA-256 digest of data.
func Bytes(data []byte) string {
	sum := sha256.Sum256(data)
	return encodeUpper(sum[:])
}

// File opens path read-only and returns its uppercase hex SHA-256 digest.
// A missing or unreadable file yields an empty string alongside the error;
// the empty string is the sentinel callers rely on and never collides with
// a valid 64-character digest.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	digest, err := Sum(f)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return digest, nil
}
