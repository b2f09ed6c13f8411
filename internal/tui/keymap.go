// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/securepass/internal/i18n"
)

// KeyMap holds the global bindings shown in the footer.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Analyzer key.Binding
	Manager  key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Help, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Next, km.Prev}, {km.Analyzer, km.Manager, km.Settings}, {km.Help, km.Quit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// newKeyMap avoids printable keys so every character can be typed into
// the password fields. Help labels follow the active language.
func newKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("ctrl+right", "ctrl+n"),
			key.WithHelp("ctrl+→", i18n.T("keys.next")),
		),
		Prev: key.NewBinding(
			key.WithKeys("ctrl+left", "ctrl+p"),
			key.WithHelp("ctrl+←", i18n.T("keys.prev")),
		),
		Analyzer: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", i18n.T("keys.analyzer")),
		),
		Manager: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", i18n.T("keys.manager")),
		),
		Settings: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", i18n.T("keys.settings")),
		),
		Help: key.NewBinding(
			key.WithKeys("f12"),
			key.WithHelp("f12", i18n.T("keys.help")),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T("keys.quit")),
		),
	}
}
