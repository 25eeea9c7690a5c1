// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package launcher

import "github.com/charmbracelet/lipgloss"

// Console colors.
const (
	ColorPrimary   = lipgloss.Color("#7D56F4") // Purple accent
	ColorSecondary = lipgloss.Color("#FFFDF5") // Off-white text
	ColorMuted     = lipgloss.Color("#626262") // Muted text
	ColorWarning   = lipgloss.Color("#FFFF00") // Yellow - update notices
	ColorError     = lipgloss.Color("#FF0000") // Red - fatal errors
)

// Styles contains the lipgloss style definitions for launcher output.
type Styles struct {
	Banner lipgloss.Style
	Notice lipgloss.Style
	Tip    lipgloss.Style
	Update lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles creates a new Styles instance with default styling.
func DefaultStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(ColorSecondary),

		Tip: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),

		Update: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
	}
}

// DefaultStyle is the default style instance for launcher output.
var DefaultStyle = DefaultStyles()
