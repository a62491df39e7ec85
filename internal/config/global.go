// SPDX-License-Identifier: MPL-2.0

package config

import "os"

// ConfigDirEnv relocates the config directory when set.
const ConfigDirEnv = "ENVER_CONFIG_DIR"

// configDirOverride takes precedence over ConfigDirEnv. Tests set it
// because HOME is not honored by os.UserHomeDir on every platform.
var configDirOverride string

// SetConfigDirOverride pins the config directory to dir.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears SetConfigDirOverride.
func Reset() {
	configDirOverride = ""
}

// overrideDir returns the relocated config directory, or "" when the
// platform default applies.
func overrideDir() string {
	if configDirOverride != "" {
		return configDirOverride
	}
	return os.Getenv(ConfigDirEnv)
}
