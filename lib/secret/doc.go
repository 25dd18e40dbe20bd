// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret generates and reads the Django secret key material
// placed into the service's .env file.
//
// [GenerateHex] draws bytes from crypto/rand and hex-encodes them;
// the service's key is [DefaultByteCount] bytes (100 hex characters).
// [ReadFromPath] supports operators who provision key material out of
// band: it reads from a file, or from stdin when the path is "-".
package secret
