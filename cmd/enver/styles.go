// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/enver/enver/internal/config"
)

// Palette entries pick their shade from the terminal background, or from
// ui.color_scheme when it is not "auto".
var (
	accentColor    = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}
	mutedColor     = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	valueColor     = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	errorColor     = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	warningColor   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	highlightColor = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
)

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	SubtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	SuccessStyle  = lipgloss.NewStyle().Foreground(valueColor)
	ErrorStyle    = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	WarningStyle  = lipgloss.NewStyle().Foreground(warningColor)

	// CmdStyle marks config keys and command names.
	CmdStyle = lipgloss.NewStyle().Foreground(highlightColor)

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	tableBorderStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// applyColorScheme pins the palette to a dark or light background. "auto"
// leaves background detection to lipgloss.
func applyColorScheme(scheme config.ColorScheme) {
	switch scheme {
	case config.ColorSchemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}
