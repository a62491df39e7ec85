// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the enver CLI.
//
// The command tree is built per App by newRootCommand and executed through
// fang. Command handlers stay thin: they resolve flags against the loaded
// configuration and delegate to envfile, runtime and tui. Fatal errors are
// rendered once by renderError and surface to Execute as *ExitError.
package cmd
