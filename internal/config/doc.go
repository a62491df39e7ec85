// SPDX-License-Identifier: MPL-2.0

// Package config handles enver's user configuration using Viper.
//
// The configuration file is written in CUE and validated against the embedded
// #Config schema before its values are merged over the built-in defaults.
// Missing files are not an error: defaults apply.
package config
