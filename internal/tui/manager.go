// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/vault"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// managerModel gates the saved records behind the passphrase and lists
// them once the user has logged in.
type managerModel struct {
	vault   *vault.Vault
	input   textinput.Model
	table   table.Model
	records []vault.Record
	status  status
}

func newManagerModel(v *vault.Vault) managerModel {
	m := managerModel{
		vault: v,
		input: newMaskedInput(i18n.T("manager.passphrase")),
	}
	m.input.Focus()

	t := table.New(table.WithFocused(true), table.WithHeight(10))
	s := table.DefaultStyles()
	s.Header = s.Header.Foreground(colorHighlight).Bold(true)
	s.Selected = s.Selected.Foreground(colorWhite).Background(colorHighlight)
	t.SetStyles(s)
	m.table = t
	return m.refresh()
}

// refresh rebuilds the table from the vault. It is called whenever the
// screen is entered so records saved elsewhere show up.
func (m managerModel) refresh() managerModel {
	if !m.vault.LoggedIn() {
		m.records = nil
		m.table.SetRows(nil)
		return m
	}
	m.records = m.vault.Records()
	m.table.SetColumns([]table.Column{
		{Title: i18n.T("manager.column_username"), Width: 24},
		{Title: i18n.T("manager.column_password"), Width: 28},
		{Title: i18n.T("manager.column_digest"), Width: 8},
	})
	rows := make([]table.Row, 0, len(m.records))
	for _, rec := range m.records {
		digest := i18n.T("manager.digest_ok")
		if !m.vault.Verify(rec) {
			digest = i18n.T("manager.digest_stale")
		}
		rows = append(rows, table.Row{rec.Username, rec.Password, digest})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
	return m
}

func (m managerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m managerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.vault.LoggedIn() {
		return m.updateList(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if err := m.vault.Login(m.input.Value()); err != nil {
				m.status = status{text: i18n.T("manager.incorrect"), isErr: true}
				return m, nil
			}
			m.input.Reset()
			m.status = status{text: i18n.T("manager.logged_in")}
			return m.refresh(), nil
		case "esc":
			m.input.Reset()
			m.status = status{}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m managerModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "c":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.records) {
				return m, nil
			}
			rec := m.records[idx]
			if err := writeClipboard(rec.Password); err != nil {
				m.status = status{text: i18n.T("manager.copy_failed", err), isErr: true}
				return m, nil
			}
			m.status = status{text: i18n.T("manager.copied", rec.Username)}
			return m, nil
		case "l":
			m.vault.Logout()
			m.status = status{}
			return m.refresh(), m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m managerModel) View() string {
	var b strings.Builder

	if !m.vault.LoggedIn() {
		b.WriteString(i18n.T("manager.prompt"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if v := m.status.View(); v != "" {
			b.WriteString("\n" + v + "\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(i18n.T("manager.login_help")))
		return b.String()
	}

	if v := m.status.View(); v != "" {
		b.WriteString(v + "\n\n")
	}
	if len(m.records) == 0 {
		b.WriteString(helpStyle.Render(i18n.T("manager.empty")))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("manager.help")))
	return b.String()
}
