// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateHexLengthAndCharset(t *testing.T) {
	for _, byteCount := range []int{1, 16, 32, DefaultByteCount} {
		value, err := GenerateHex(byteCount)
		if err != nil {
			t.Fatalf("GenerateHex(%d): %v", byteCount, err)
		}
		if len(value) != 2*byteCount {
			t.Errorf("GenerateHex(%d) length = %d, want %d", byteCount, len(value), 2*byteCount)
		}
		for i, character := range value {
			isHex := (character >= '0' && character <= '9') || (character >= 'a' && character <= 'f')
			if !isHex {
				t.Errorf("GenerateHex(%d) position %d: %q is not lowercase hex", byteCount, i, character)
			}
		}
	}
}

func TestGenerateHexUnique(t *testing.T) {
	// 50 random bytes colliding across runs would indicate a broken
	// entropy source, not bad luck.
	first, err := GenerateHex(DefaultByteCount)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := GenerateHex(DefaultByteCount)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first == second {
		t.Error("two generated secrets are identical")
	}
}

func TestGenerateHexRejectsNonPositiveCount(t *testing.T) {
	for _, byteCount := range []int{0, -1} {
		if _, err := GenerateHex(byteCount); err == nil {
			t.Errorf("GenerateHex(%d): expected error", byteCount)
		}
	}
}

func TestReadFromPathTrims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("  deadbeef\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	value, err := ReadFromPath(path)
	if err != nil {
		t.Fatalf("ReadFromPath: %v", err)
	}
	if value != "deadbeef" {
		t.Errorf("ReadFromPath = %q, want deadbeef", value)
	}
}

func TestReadFromPathEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte(" \n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadFromPath(path); err == nil {
		t.Fatal("expected error for whitespace-only secret")
	}
}

func TestReadFromPathMissingFile(t *testing.T) {
	if _, err := ReadFromPath(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
