// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/vault"
)

// settingsMode is the sub-screen shown by the settings view.
type settingsMode int

const (
	settingsSetForm settingsMode = iota // no passphrase yet
	settingsAccount                     // account bar with Change and Delete
	settingsChangeForm
	settingsConfirmDelete
)

const (
	changeCurrent = iota
	changeNew
	changeConfirm
	changeSubmit
	changeBack
)

// settingsModel manages the passphrase lifecycle.
type settingsModel struct {
	vault *vault.Vault
	mode  settingsMode

	setInput     textinput.Model
	setFocus     int // 0: input, 1: button
	changeInputs []textinput.Model
	changeFocus  int
	accountFocus int // 0: change, 1: delete

	status  status
	nextSeq int
}

func newSettingsModel(v *vault.Vault) settingsModel {
	m := settingsModel{
		vault:    v,
		setInput: newMaskedInput(""),
		changeInputs: []textinput.Model{
			newMaskedInput(i18n.T("settings.current")),
			newMaskedInput(i18n.T("settings.new")),
			newMaskedInput(i18n.T("settings.confirm")),
		},
	}
	m.setInput.Prompt = "> "
	return m.refresh()
}

// refresh picks the mode from the vault state and resets the forms.
func (m settingsModel) refresh() settingsModel {
	if m.vault.HasPassphrase() {
		m.mode = settingsAccount
	} else {
		m.mode = settingsSetForm
	}
	m.setInput.Reset()
	m.setFocus = 0
	m.setInput.Focus()
	resetInputs(m.changeInputs)
	m.changeFocus = changeCurrent
	focusInputs(m.changeInputs, m.changeFocus)
	m.accountFocus = 0
	return m
}

// flash sets a temporary status line and schedules its removal.
func (m settingsModel) flash(text string, isErr bool) (settingsModel, tea.Cmd) {
	m.nextSeq++
	m.status = status{text: text, isErr: isErr, seq: m.nextSeq}
	return m, clearStatusAfter(settingsView, m.nextSeq)
}

func (m settingsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if c, ok := msg.(clearStatusMsg); ok {
		if c.seq == m.status.seq {
			m.status = status{}
		}
		return m, nil
	}

	switch m.mode {
	case settingsSetForm:
		return m.updateSetForm(msg)
	case settingsAccount:
		return m.updateAccount(msg)
	case settingsChangeForm:
		return m.updateChangeForm(msg)
	case settingsConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m settingsModel) updateSetForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		s := key.String()
		switch {
		case s == "enter":
			value := m.setInput.Value()
			if value == "" {
				return m.flash(i18n.T("settings.empty"), true)
			}
			if err := m.vault.SetPassphrase(value); err != nil {
				return m.flash(i18n.T("error.generic", err), true)
			}
			m = m.refresh()
			return m.flash(i18n.T("settings.set_success"), false)
		case isFocusKey(s):
			m.setFocus = cycleFocus(m.setFocus, 1, 1, isBackKey(s))
			if m.setFocus == 0 {
				return m, m.setInput.Focus()
			}
			m.setInput.Blur()
			return m, nil
		}
	}

	if m.setFocus != 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.setInput, cmd = m.setInput.Update(msg)
	return m, cmd
}

func (m settingsModel) updateAccount(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "shift+tab", "h", "l":
		m.accountFocus = 1 - m.accountFocus
	case "enter":
		if m.accountFocus == 0 {
			m.mode = settingsChangeForm
			resetInputs(m.changeInputs)
			m.changeFocus = changeCurrent
			return m, focusInputs(m.changeInputs, m.changeFocus)
		}
		m.mode = settingsConfirmDelete
	}
	return m, nil
}

func (m settingsModel) updateChangeForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		s := key.String()
		switch {
		case s == "esc" || (s == "enter" && m.changeFocus == changeBack):
			m.mode = settingsAccount
			resetInputs(m.changeInputs)
			return m, nil

		case s == "enter" && m.changeFocus == changeSubmit:
			return m.submitChange()

		case s == "enter" || isFocusKey(s):
			m.changeFocus = cycleFocus(m.changeFocus, len(m.changeInputs), 2, isBackKey(s))
			return m, focusInputs(m.changeInputs, m.changeFocus)
		}
	}

	if m.changeFocus >= len(m.changeInputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.changeInputs[m.changeFocus], cmd = m.changeInputs[m.changeFocus].Update(msg)
	return m, cmd
}

func (m settingsModel) submitChange() (tea.Model, tea.Cmd) {
	err := m.vault.ChangePassphrase(
		m.changeInputs[changeCurrent].Value(),
		m.changeInputs[changeNew].Value(),
		m.changeInputs[changeConfirm].Value(),
	)
	switch {
	case err == nil:
		m = m.refresh()
		return m.flash(i18n.T("settings.changed"), false)
	case errors.Is(err, vault.ErrWrongPassphrase):
		return m.flash(i18n.T("settings.incorrect_current"), true)
	case errors.Is(err, vault.ErrPassphraseMismatch):
		return m.flash(i18n.T("settings.mismatch"), true)
	case errors.Is(err, vault.ErrEmptyPassphrase):
		return m.flash(i18n.T("settings.new_empty"), true)
	default:
		return m.flash(i18n.T("error.generic", err), true)
	}
}

func (m settingsModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		err := m.vault.DeleteAccount()
		m = m.refresh()
		if err != nil {
			return m.flash(i18n.T("error.generic", err), true)
		}
		return m.flash(i18n.T("settings.deleted"), false)
	case "n", "N", "esc":
		m.mode = settingsAccount
	}
	return m, nil
}

func (m settingsModel) View() string {
	var b strings.Builder

	switch m.mode {
	case settingsSetForm:
		b.WriteString(i18n.T("settings.set_title"))
		b.WriteString("\n\n")
		b.WriteString(m.setInput.View())
		b.WriteString("\n\n")
		b.WriteString(button(i18n.T("settings.set_button"), m.setFocus == 1))
		b.WriteString("\n")
	case settingsAccount:
		b.WriteString(m.accountBar())
		b.WriteString("\n")
	case settingsChangeForm:
		b.WriteString(i18n.T("settings.change_title"))
		b.WriteString("\n\n")
		for i := range m.changeInputs {
			b.WriteString(m.changeInputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(button(i18n.T("settings.change_submit"), m.changeFocus == changeSubmit))
		b.WriteString("  ")
		b.WriteString(button(i18n.T("settings.back"), m.changeFocus == changeBack))
		b.WriteString("\n")
	case settingsConfirmDelete:
		b.WriteString(dialogBoxStyle.Render(i18n.T("settings.delete_confirm", len(m.vault.Records()))))
		b.WriteString("\n")
	}

	if v := m.status.View(); v != "" {
		b.WriteString("\n" + v + "\n")
	}

	var hint string
	switch m.mode {
	case settingsSetForm:
		hint = i18n.T("settings.help_unset")
	case settingsAccount:
		hint = i18n.T("settings.help_set")
	case settingsChangeForm:
		hint = i18n.T("settings.help_change")
	}
	if hint != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hint))
	}
	return b.String()
}

// accountBar renders the logged-in account row with its actions.
func (m settingsModel) accountBar() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		strengthLabelStyle.Render(i18n.T("settings.guest")),
		"   ",
		button(i18n.T("settings.change_button"), m.accountFocus == 0),
		" ",
		button(i18n.T("settings.delete_button"), m.accountFocus == 1),
	)
}
