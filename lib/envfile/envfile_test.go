// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderOrderAndVerbatimValues(t *testing.T) {
	file := New()
	file.Set("DEBUG", "0")
	file.Set("ETHEREUM_NODE_URL", "http://172.17.0.1:4444")
	file.Set("EMPTY", "")
	file.Set("SPACED", "  a value with spaces  ")

	want := "DEBUG=0\n" +
		"ETHEREUM_NODE_URL=http://172.17.0.1:4444\n" +
		"EMPTY=\n" +
		"SPACED=  a value with spaces  \n"
	if got := string(file.Render()); got != want {
		t.Errorf("Render mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	file := New()
	file.Set("A", "1")
	file.Set("B", "2")
	file.Set("A", "3")

	want := "A=3\nB=2\n"
	if got := string(file.Render()); got != want {
		t.Errorf("expected overwrite to keep position: got %q, want %q", got, want)
	}

	value, present := file.Get("A")
	if !present || value != "3" {
		t.Errorf("Get(A) = %q, %v; want 3, true", value, present)
	}
}

func TestWriteAtomicOverwritesFully(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	first := New()
	first.Set("LEFTOVER", "should vanish")
	first.Set("KEY", "old")
	if err := first.WriteAtomic(path, 0600); err != nil {
		t.Fatalf("first write: %v", err)
	}

	second := New()
	second.Set("KEY", "new")
	if err := second.WriteAtomic(path, 0600); err != nil {
		t.Fatalf("second write: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "KEY=new\n" {
		t.Errorf("expected full overwrite, got %q", content)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestWriteAtomicFailureLeavesPriorFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}
	directory := t.TempDir()
	path := filepath.Join(directory, ".env")

	original := New()
	original.Set("KEY", "original")
	if err := original.WriteAtomic(path, 0600); err != nil {
		t.Fatalf("seed write: %v", err)
	}

	// A read-only directory makes temp file creation fail before the
	// target is ever touched.
	if err := os.Chmod(directory, 0500); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(directory, 0700)

	replacement := New()
	replacement.Set("KEY", "replacement")
	if err := replacement.WriteAtomic(path, 0600); err == nil {
		t.Fatal("expected write to read-only directory to fail")
	}

	os.Chmod(directory, 0700)
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "KEY=original\n" {
		t.Errorf("prior file was disturbed: %q", content)
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected no temp debris, found %d entries", len(entries))
	}
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ".env")
	file := New()
	file.Set("KEY", "value")
	if err := file.WriteAtomic(path, 0600); err == nil {
		t.Fatal("expected write into missing directory to fail")
	}
}

func TestParse(t *testing.T) {
	input := "# comment\n\nA=1\nB=with=equals\nC=\n"
	file, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cases := []struct {
		key  string
		want string
	}{
		{"A", "1"},
		{"B", "with=equals"},
		{"C", ""},
	}
	for _, c := range cases {
		got, present := file.Get(c.key)
		if !present {
			t.Errorf("key %s missing", c.key)
			continue
		}
		if got != c.want {
			t.Errorf("Get(%s) = %q, want %q", c.key, got, c.want)
		}
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("A=1\nnot a pair\n"))
	if err == nil {
		t.Fatal("expected error for line without =")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected line number in error, got %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	file := New()
	file.Set("ETHEREUM_NODE_URL", "http://172.17.0.1:4444")
	file.Set("DEBUG", "0")
	if err := file.WriteAtomic(path, 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(loaded.Render()) != string(file.Render()) {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", loaded.Render(), file.Render())
	}
}
