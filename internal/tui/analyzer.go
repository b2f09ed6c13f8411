// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/strength"
	"github.com/toeirei/securepass/internal/ui"
	"github.com/toeirei/securepass/internal/vault"
)

const (
	analyzerUsername = iota
	analyzerPassword
	analyzerSave // the save button
)

// analyzerModel scores the password as it is typed and can store it.
type analyzerModel struct {
	vault      *vault.Vault
	analyzer   *strength.Analyzer
	inputs     []textinput.Model // 0: username, 1: password
	focusIndex int
	result     strength.Result
	bar        progress.Model
	status     status
}

func newAnalyzerModel(v *vault.Vault, a *strength.Analyzer) analyzerModel {
	m := analyzerModel{
		vault:    v,
		analyzer: a,
		inputs: []textinput.Model{
			newInput(i18n.T("analyzer.username"), i18n.T("analyzer.username_placeholder")),
			newMaskedInput(i18n.T("analyzer.password")),
		},
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
	}
	focusInputs(m.inputs, analyzerUsername)
	m.result = m.analyzer.Analyze("", "")
	return m
}

func (m analyzerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m analyzerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if w := msg.Width - 8; w > 10 && w < 60 {
			m.bar.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		s := msg.String()
		switch {
		case s == "esc":
			resetInputs(m.inputs)
			m.status = status{}
			m.focusIndex = analyzerUsername
			m.recompute()
			return m, focusInputs(m.inputs, m.focusIndex)

		case s == "enter" && m.focusIndex == analyzerSave:
			m.save()
			return m, nil

		case s == "enter" || isFocusKey(s):
			m.focusIndex = cycleFocus(m.focusIndex, len(m.inputs), 1, isBackKey(s))
			return m, focusInputs(m.inputs, m.focusIndex)
		}
	}

	if m.focusIndex >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *analyzerModel) recompute() {
	m.result = m.analyzer.Analyze(m.inputs[analyzerPassword].Value(), m.inputs[analyzerUsername].Value())
}

func (m *analyzerModel) save() {
	_, err := m.vault.SaveRecord(m.inputs[analyzerUsername].Value(), m.inputs[analyzerPassword].Value())
	switch {
	case err == nil:
		m.status = status{text: i18n.T("analyzer.saved")}
	case errors.Is(err, vault.ErrNoPassphrase):
		m.status = status{text: i18n.T("analyzer.need_passphrase"), isErr: true}
	case errors.Is(err, vault.ErrEmptyRecord):
		m.status = status{text: i18n.T("analyzer.need_fields"), isErr: true}
	case errors.Is(err, vault.ErrLineBreak):
		m.status = status{text: i18n.T("error.line_break"), isErr: true}
	default:
		m.status = status{text: i18n.T("error.generic", err), isErr: true}
	}
}

func (m analyzerModel) View() string {
	var b strings.Builder

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.result.Progress()))
	b.WriteString("\n")
	label := i18n.T("analyzer.strength", ui.TierText(m.result.Tier))
	b.WriteString(tierStyle(m.result.Tier).Render(label))
	b.WriteString("\n")

	if m.result.ShowSuggestions() {
		for _, s := range m.result.Suggestions {
			b.WriteString(infoStyle.Render("• " + ui.HintText(s)))
			b.WriteString("\n")
		}
	}
	if m.result.Warning != "" {
		b.WriteString(errorStyle.Render(ui.HintText(m.result.Warning)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(button(i18n.T("analyzer.save_button"), m.focusIndex == analyzerSave))
	b.WriteString("\n")
	if v := m.status.View(); v != "" {
		b.WriteString("\n" + v + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("analyzer.help")))
	return b.String()
}
