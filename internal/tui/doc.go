// SPDX-License-Identifier: MPL-2.0

// Package tui renders env entries for the terminal: an aligned lipgloss
// table for humans and TOML for other programs.
package tui
