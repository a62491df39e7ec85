// SPDX-License-Identifier: MPL-2.0

// Package testutil holds fixtures shared by enver's package tests: env files
// written into temporary directories and process environment changes that
// are undone when the test ends.
package testutil
