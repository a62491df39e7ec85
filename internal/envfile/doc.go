// SPDX-License-Identifier: MPL-2.0

// Package envfile parses simple KEY=VALUE env files.
//
// Parsing is best-effort: lines that do not hold exactly one valid
// NAME=VALUE assignment are dropped without error. Only failing to read the
// file itself is reported. Parsed entries are collected either into a keyed
// mapping (last assignment wins, used to build a process environment) or into
// an ordered sequence that keeps duplicates (used for display).
package envfile
