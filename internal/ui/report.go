// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package ui

import "github.com/toeirei/securepass/internal/strength"

// Report is the machine-readable form of an analysis.
type Report struct {
	Tier        strength.Tier `json:"tier"`
	Score       int           `json:"score"`
	MaxScore    int           `json:"max_score"`
	Progress    float64       `json:"progress"`
	Suggestions []string      `json:"suggestions"`
	Warning     string        `json:"warning,omitempty"`
}

// NewReport converts r. Suggestions are kept in English so the output is
// stable across languages, and are left empty unless the tier shows them.
func NewReport(r strength.Result) Report {
	rep := Report{
		Tier:        r.Tier,
		Score:       r.Score,
		MaxScore:    strength.MaxScore,
		Progress:    r.Progress(),
		Suggestions: []string{},
		Warning:     r.Warning,
	}
	if r.ShowSuggestions() {
		rep.Suggestions = append(rep.Suggestions, r.Suggestions...)
	}
	return rep
}
