// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the terminal user interface for SecurePass.
// This file holds the top-level model that routes input to the active
// screen and renders the navigation bar around it.
package tui // import "github.com/toeirei/securepass/internal/tui"

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/logging"
	"github.com/toeirei/securepass/internal/strength"
	"github.com/toeirei/securepass/internal/vault"
)

// viewState represents which screen is currently active.
type viewState int

const (
	analyzerView viewState = iota
	managerView
	settingsView
	viewCount
)

// mainModel is the top-level model for the TUI. It owns one model per
// screen and forwards messages to the active one.
type mainModel struct {
	state    viewState
	vault    *vault.Vault
	analyzer analyzerModel
	manager  managerModel
	settings settingsModel
	keys     KeyMap
	help     help.Model
	width    int
	height   int
}

func newMainModel(v *vault.Vault, a *strength.Analyzer) mainModel {
	h := help.New()
	h.ShowAll = false
	return mainModel{
		state:    analyzerView,
		vault:    v,
		analyzer: newAnalyzerModel(v, a),
		manager:  newManagerModel(v),
		settings: newSettingsModel(v),
		keys:     newKeyMap(),
		help:     h,
	}
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(m.windowTitle(), m.analyzer.Init())
}

// windowTitle names the terminal window after the active screen.
func (m mainModel) windowTitle() tea.Cmd {
	return tea.SetWindowTitle(i18n.T("app.title") + " - " + m.screenNames()[m.state])
}

func (m mainModel) screenNames() []string {
	return []string{i18n.T("nav.analyzer"), i18n.T("nav.manager"), i18n.T("nav.settings")}
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		a, cmd := m.analyzer.Update(msg)
		m.analyzer = a.(analyzerModel)
		return m, cmd

	case clearStatusMsg:
		if msg.target == settingsView {
			s, cmd := m.settings.Update(msg)
			m.settings = s.(settingsModel)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m.switchTo((m.state + 1) % viewCount)
		case key.Matches(msg, m.keys.Prev):
			return m.switchTo((m.state + viewCount - 1) % viewCount)
		case key.Matches(msg, m.keys.Analyzer):
			return m.switchTo(analyzerView)
		case key.Matches(msg, m.keys.Manager):
			return m.switchTo(managerView)
		case key.Matches(msg, m.keys.Settings):
			return m.switchTo(settingsView)
		}
	}

	var cmd tea.Cmd
	var next tea.Model
	switch m.state {
	case analyzerView:
		next, cmd = m.analyzer.Update(msg)
		m.analyzer = next.(analyzerModel)
	case managerView:
		next, cmd = m.manager.Update(msg)
		m.manager = next.(managerModel)
	case settingsView:
		next, cmd = m.settings.Update(msg)
		m.settings = next.(settingsModel)
	}
	return m, cmd
}

// switchTo activates a screen. Manager and settings are rebuilt from the
// vault because another screen may have changed it.
func (m mainModel) switchTo(state viewState) (tea.Model, tea.Cmd) {
	m.state = state
	switch state {
	case managerView:
		m.manager = m.manager.refresh()
		return m, tea.Batch(m.windowTitle(), m.manager.Init())
	case settingsView:
		m.settings = m.settings.refresh()
		return m, tea.Batch(m.windowTitle(), m.settings.Init())
	}
	return m, tea.Batch(m.windowTitle(), m.analyzer.Init())
}

func (m mainModel) View() string {
	var body string
	switch m.state {
	case analyzerView:
		body = m.analyzer.View()
	case managerView:
		body = m.manager.View()
	case settingsView:
		body = m.settings.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("app.title")))
	b.WriteString("\n")
	b.WriteString(m.navBar())
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	if m.help.ShowAll {
		b.WriteString(m.help.View(m.keys))
	} else {
		b.WriteString(footerStyle.Render(AlignFooter(i18n.T("app.footer"), m.accountLabel(), m.width-6)))
	}
	return docStyle.Render(b.String())
}

// navBar renders the screen tabs with the active one highlighted.
func (m mainModel) navBar() string {
	labels := m.screenNames()
	items := make([]string, len(labels))
	for i, l := range labels {
		if viewState(i) == m.state {
			items[i] = navActiveItemStyle.Render(l)
		} else {
			items[i] = navItemStyle.Render(l)
		}
	}
	return navBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

// accountLabel is shown at the right of the footer once a passphrase exists.
func (m mainModel) accountLabel() string {
	if !m.vault.HasPassphrase() {
		return ""
	}
	return i18n.T("settings.guest")
}

// Run starts the TUI and blocks until the user quits.
func Run(v *vault.Vault, a *strength.Analyzer) error {
	if _, err := tea.NewProgram(newMainModel(v, a), tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		return err
	}
	return nil
}
