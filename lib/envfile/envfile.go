// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Entry is a single KEY=VALUE line.
type Entry struct {
	Key   string
	Value string
}

// File is an ordered set of entries. Keys render in first-insertion
// order; setting an existing key replaces its value without moving it.
type File struct {
	entries []Entry
}

// New returns an empty File.
func New() *File {
	return &File{}
}

// Set appends the key with the given value, or replaces the value in
// place if the key is already present.
func (f *File) Set(key, value string) {
	for i := range f.entries {
		if f.entries[i].Key == key {
			f.entries[i].Value = value
			return
		}
	}
	f.entries = append(f.entries, Entry{Key: key, Value: value})
}

// Get returns the value for key and whether it is present.
func (f *File) Get(key string) (string, bool) {
	for _, entry := range f.entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Entries returns a copy of the entries in render order.
func (f *File) Entries() []Entry {
	entries := make([]Entry, len(f.entries))
	copy(entries, f.entries)
	return entries
}

// Render produces the file content: one KEY=VALUE line per entry, in
// order, values verbatim.
func (f *File) Render() []byte {
	var builder strings.Builder
	for _, entry := range f.entries {
		fmt.Fprintf(&builder, "%s=%s\n", entry.Key, entry.Value)
	}
	return []byte(builder.String())
}

// WriteAtomic renders the file and writes it to path via a temp file
// in the same directory followed by a rename. On any failure the temp
// file is removed and a pre-existing file at path is left untouched.
func (f *File) WriteAtomic(path string, mode os.FileMode) error {
	directory := filepath.Dir(path)
	temporary, err := os.CreateTemp(directory, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", directory, err)
	}
	temporaryPath := temporary.Name()

	success := false
	defer func() {
		if !success {
			temporary.Close()
			os.Remove(temporaryPath)
		}
	}()

	if _, err := temporary.Write(f.Render()); err != nil {
		return fmt.Errorf("writing temp env file: %w", err)
	}
	if err := temporary.Chmod(mode); err != nil {
		return fmt.Errorf("setting env file mode: %w", err)
	}
	if err := temporary.Sync(); err != nil {
		return fmt.Errorf("syncing temp env file: %w", err)
	}
	if err := temporary.Close(); err != nil {
		return fmt.Errorf("closing temp env file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming env file into place: %w", err)
	}
	success = true
	return nil
}

// Parse reads the KEY=VALUE format. Blank lines and lines starting
// with # are skipped; any other line must contain an =.
func Parse(r io.Reader) (*File, error) {
	file := New()
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: expected KEY=VALUE, got %q", lineNumber, line)
		}
		file.Set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file: %w", err)
	}
	return file, nil
}

// Load parses the file at path.
func Load(path string) (*File, error) {
	handle, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer handle.Close()
	return Parse(handle)
}
