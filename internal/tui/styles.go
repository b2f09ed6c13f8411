// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal
	colorModerate  = lipgloss.Color("208") // Orange
	colorError     = lipgloss.Color("196") // Bright red
	colorSuccess   = lipgloss.Color("40")  // Green
	colorInfo      = lipgloss.Color("33")  // Blue
	colorWhite     = lipgloss.Color("231")
	colorNavBar    = lipgloss.Color("236")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	specialStyle = lipgloss.NewStyle().Foreground(colorModerate)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 0)

	// Navigation bar
	navBarStyle = lipgloss.NewStyle().
			Background(colorNavBar).
			Padding(0, 1)
	navItemStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorNavBar).
			Padding(0, 2)
	navActiveItemStyle = navItemStyle.
				Background(colorHighlight).
				Bold(true)

	// Form elements
	focusedStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	formItemStyle         = lipgloss.NewStyle()
	formSelectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	strengthLabelStyle = lipgloss.NewStyle().Bold(true)

	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorModerate).
			Padding(1, 2).
			Width(60)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(colorNavBar).
			Padding(0, 1).
			Italic(true)
)

// button renders a form button, highlighted when focused.
func button(label string, focused bool) string {
	if focused {
		return formSelectedItemStyle.Render(label)
	}
	return formItemStyle.Render(label)
}
