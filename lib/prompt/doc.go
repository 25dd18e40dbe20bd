// Copyright 2026 The Safe Transaction Setup Authors
// SPDX-License-Identifier: Apache-2.0

// Package prompt collects a fixed sequence of single-line values from
// the operator.
//
// On a terminal, [Run] presents a small bubbletea form: one field at a
// time, enter commits and advances, ctrl+c or esc aborts the run. When
// stdin or stdout is not a terminal (piped input, scripted runs), it
// falls back to printing each label and reading a line from stdin.
//
// Input is captured verbatim: no trimming beyond the line terminator,
// no validation, and the empty string is an accepted answer. The
// downstream service is the validator of record for these values.
package prompt
