// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

// Package config holds the fixed portion of the generated .env file.
//
// [Default] matches the stock docker-compose deployment of the Safe
// Transaction Service. An optional YAML file, named explicitly via the
// SAFE_SETUP_CONFIG environment variable or the --config flag,
// overrides individual entries (a custom database host, a different
// output path). There is no automatic discovery and no fallback chain:
// with no file named, the defaults are used as-is. This keeps the
// generated .env deterministic and auditable.
package config
