// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/securepass/internal/strength"
)

// flashDuration is how long a temporary status line stays on screen.
const flashDuration = 3 * time.Second

// tierStyle picks the label color for a tier.
func tierStyle(t strength.Tier) lipgloss.Style {
	switch t {
	case strength.TierWeak:
		return errorStyle
	case strength.TierModerate:
		return specialStyle
	case strength.TierStrong:
		return successStyle
	}
	return strengthLabelStyle
}

// status is a one-line message shown under a form. A non-zero seq marks it
// as temporary; clearStatusMsg only clears a status with a matching seq.
type status struct {
	text  string
	isErr bool
	seq   int
}

func (s status) View() string {
	if s.text == "" {
		return ""
	}
	if s.isErr {
		return errorStyle.Render(s.text)
	}
	return successStyle.Render(s.text)
}

// clearStatusMsg asks the screen identified by target to drop its status
// line if it is still the one numbered seq.
type clearStatusMsg struct {
	target viewState
	seq    int
}

// clearStatusAfter schedules a clearStatusMsg after flashDuration.
func clearStatusAfter(target viewState, seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{target: target, seq: seq}
	})
}
