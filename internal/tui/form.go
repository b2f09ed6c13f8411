// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// newInput builds a plain text input with the shared form look.
func newInput(prompt, placeholder string) textinput.Model {
	t := textinput.New()
	t.Cursor.Style = focusedStyle
	t.CharLimit = 128
	t.Width = 40
	t.Prompt = prompt
	t.Placeholder = placeholder
	return t
}

// newMaskedInput builds an input that echoes '*' for every typed rune.
// Secrets have no length cap.
func newMaskedInput(prompt string) textinput.Model {
	t := newInput(prompt, "")
	t.CharLimit = 0
	t.EchoMode = textinput.EchoPassword
	t.EchoCharacter = '*'
	return t
}

// cycleFocus moves focus forward or back over the inputs plus any trailing
// buttons. Index len(inputs)+n addresses button n.
func cycleFocus(current, inputs, buttons int, back bool) int {
	total := inputs + buttons
	if back {
		current--
	} else {
		current++
	}
	if current >= total {
		return 0
	}
	if current < 0 {
		return total - 1
	}
	return current
}

// focusInputs focuses the input at idx and blurs the others. idx may point
// past the inputs, in which case every input is blurred.
func focusInputs(inputs []textinput.Model, idx int) tea.Cmd {
	cmds := make([]tea.Cmd, len(inputs))
	for i := range inputs {
		if i == idx {
			cmds[i] = inputs[i].Focus()
			inputs[i].PromptStyle = focusedStyle
			inputs[i].TextStyle = focusedStyle
			continue
		}
		inputs[i].Blur()
		inputs[i].PromptStyle = formItemStyle
		inputs[i].TextStyle = formItemStyle
	}
	return tea.Batch(cmds...)
}

// resetInputs clears every input value.
func resetInputs(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].Reset()
	}
}

// isFocusKey reports whether the key moves focus inside a form.
func isFocusKey(s string) bool {
	switch s {
	case "tab", "shift+tab", "up", "down":
		return true
	}
	return false
}

func isBackKey(s string) bool {
	return s == "shift+tab" || s == "up"
}
