// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes operating system names and per-OS locations.
package platform
