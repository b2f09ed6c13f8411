// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui holds presentation helpers shared by the CLI and the TUI.
package ui

import (
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/strength"
)

// hintKeys maps the analyzer's English hints to translation keys.
var hintKeys = map[string]string{
	strength.SuggestAvoidUsername: "hint.avoid_username",
	strength.SuggestTooCommon:     "hint.too_common",
	strength.SuggestMinLength:     "hint.min_length",
	strength.SuggestMixCase:       "hint.mix_case",
	strength.SuggestDigit:         "hint.digit",
	strength.SuggestSpecial:       "hint.special",
	strength.WarnContainsUsername: "hint.contains_username",
}

// HintText returns the localized form of an analyzer hint, or the hint
// itself when no translation exists.
func HintText(hint string) string {
	if id, ok := hintKeys[hint]; ok {
		return i18n.T(id)
	}
	return hint
}

// TierText returns the localized tier label. TierNone renders empty.
func TierText(t strength.Tier) string {
	switch t {
	case strength.TierWeak:
		return i18n.T("tier.weak")
	case strength.TierModerate:
		return i18n.T("tier.moderate")
	case strength.TierStrong:
		return i18n.T("tier.strong")
	}
	return ""
}
