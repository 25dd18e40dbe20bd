// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

// Package envfile models the flat KEY=VALUE environment file consumed
// by the Safe Transaction Service containers.
//
// [File] is an ordered document: entries render in first-insertion
// order, and re-setting a key replaces its value in place. Values are
// emitted verbatim with no quoting or escaping, so whatever the
// operator typed is exactly what the downstream service reads.
//
// [File.WriteAtomic] builds the full content in memory and renames a
// temp file into place. A failed write never leaves a partial or
// truncated target behind; the previous file, if any, survives intact.
//
// [Parse] and [Load] read the format back for verification. Blank
// lines and # comments are skipped; anything else must be KEY=VALUE.
package envfile
