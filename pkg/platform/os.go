// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// IsWindows reports whether the current OS is Windows.
func IsWindows() bool { return runtime.GOOS == Windows }

// UserConfigDir returns the base directory for per-user configuration:
// %APPDATA% on Windows, ~/Library/Application Support on macOS and
// the XDG config home (defaulting to ~/.config) elsewhere.
//
// The XDG base directories are read once at startup; call xdg.Reload after
// changing XDG_* variables in-process.
func UserConfigDir() (string, error) {
	return userConfigDir(runtime.GOOS, os.Getenv, os.UserHomeDir, xdg.ConfigHome)
}

func userConfigDir(goos string, getenv func(string) string, home func() (string, error), xdgConfigHome string) (string, error) {
	switch goos {
	case Windows:
		if dir := getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return filepath.Join(getenv("USERPROFILE"), "AppData", "Roaming"), nil
	case Darwin:
		h, err := home()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(h, "Library", "Application Support"), nil
	default:
		if xdgConfigHome == "" {
			return "", errors.New("failed to resolve XDG config home")
		}
		return xdgConfigHome, nil
	}
}
