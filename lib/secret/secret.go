// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// DefaultByteCount is the size of the generated Django secret key.
// 50 random bytes encode to 100 hex characters.
const DefaultByteCount = 50

// GenerateHex returns byteCount cryptographically random bytes encoded
// as a lowercase hex string (2×byteCount characters).
func GenerateHex(byteCount int) (string, error) {
	if byteCount <= 0 {
		return "", fmt.Errorf("byte count must be positive, got %d", byteCount)
	}
	buffer := make([]byte, byteCount)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(buffer), nil
}

// ReadFromPath reads a secret from a file path, or from stdin if path
// is "-". The result is trimmed of leading/trailing whitespace. This
// avoids putting secrets in CLI arguments (visible in /proc/*/cmdline,
// ps, and shell history).
func ReadFromPath(path string) (string, error) {
	var data []byte

	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("reading stdin: %w", err)
			}
			return "", fmt.Errorf("stdin is empty")
		}
		data = scanner.Bytes()
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return "", err
		}
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return "", fmt.Errorf("secret is empty")
	}
	return trimmed, nil
}
