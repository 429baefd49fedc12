package hashutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBytesKnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"},
		{"abc", "abc", "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Bytes([]byte(tc.input))
			if got != tc.want {
				t.Fatalf("Bytes(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestFileDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	if err := os.WriteFile(path, []byte(strings.Repeat("launchguard", 4096)), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	first, err := File(path)
	if err != nil {
		t.Fatalf("first digest: %v", err)
	}
	second, err := File(path)
	if err != nil {
		t.Fatalf("second digest: %v", err)
	}
	if first != second {
		t.Fatalf("digest not deterministic: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("digest length = %d, want 64", len(first))
	}
	if first != strings.ToUpper(first) {
		t.Fatalf("digest not uppercase: %s", first)
	}
}

func TestFileSingleBitFlipChangesDigest(t *testing.T) {
	dir := t.TempDir()
	payload := []byte(strings.Repeat("integrity", 2048))
	original := filepath.Join(dir, "original")
	if err := os.WriteFile(original, payload, 0o644); err != nil {
		t.Fatalf("write original: %v", err)
	}

	flipped := make([]byte, len(payload))
	copy(flipped, payload)
	flipped[len(flipped)/2] ^= 0x01
	tampered := filepath.Join(dir, "tampered")
	if err := os.WriteFile(tampered, flipped, 0o644); err != nil {
		t.Fatalf("write tampered: %v", err)
	}

	a, err := File(original)
	if err != nil {
		t.Fatalf("digest original: %v", err)
	}
	b, err := File(tampered)
	if err != nil {
		t.Fatalf("digest tampered: %v", err)
	}
	if a == b {
		t.Fatal("single-bit flip produced identical digest")
	}
}

func TestFileMissingReturnsEmpty(t *testing.T) {
	digest, err := File(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if digest != "" {
		t.Fatalf("missing file digest = %q, want empty sentinel", digest)
	}
}

func TestFileMatchesBytes(t *testing.T) {
	payload := []byte("cross-check between streaming and in-memory digests")
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	fromFile, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if fromFile != Bytes(payload) {
		t.Fatalf("File = %s, Bytes = %s", fromFile, Bytes(payload))
	}
}
