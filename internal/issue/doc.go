// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved, and
// remediation suggestions. The issue catalog holds Markdown help pages for the
// failures a user is most likely to hit, rendered to the terminal with glamour.
package issue
