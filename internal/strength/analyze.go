// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tier is the coarse strength rating of a password.
type Tier string

const (
	TierNone     Tier = ""
	TierWeak     Tier = "Weak"
	TierModerate Tier = "Moderate"
	TierStrong   Tier = "Strong"
)

// Suggestions and warnings returned by Analyze.
const (
	SuggestAvoidUsername = "Avoid using your username in the password."
	SuggestTooCommon     = "This password is too common!"
	SuggestMinLength     = "Use at least 8 characters."
	SuggestMixCase       = "Mix uppercase and lowercase letters."
	SuggestDigit         = "Include at least one number."
	SuggestSpecial       = "Use at least one special character."

	WarnContainsUsername = "Password contains username!"
)

// specialChars is the punctuation set that counts as a special character.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// MaxScore is the highest score Analyze can produce.
const MaxScore = 9

// Result is the outcome of scoring a single password.
type Result struct {
	Tier        Tier
	Score       int
	Suggestions []string
	Warning     string
}

// Progress returns the fill ratio of the strength bar. The bar never drops
// below 5% so an empty or weak password still shows a sliver.
func (r Result) Progress() float64 {
	p := float64(r.Score) / 10
	if p < 0.05 {
		return 0.05
	}
	return p
}

// ShowSuggestions reports whether suggestions should be displayed. Only weak
// passwords surface them.
func (r Result) ShowSuggestions() bool {
	return r.Tier == TierWeak && len(r.Suggestions) > 0
}

// Analyzer scores passwords against a weak-password set.
type Analyzer struct {
	weak WeakSet
}

// NewAnalyzer returns an Analyzer backed by the given weak set.
func NewAnalyzer(weak WeakSet) *Analyzer {
	return &Analyzer{weak: weak}
}

// Analyze scores password. username is optional; when set and contained in
// the password (case-insensitive) the password is rejected outright.
func (a *Analyzer) Analyze(password, username string) Result {
	if password == "" {
		return Result{Tier: TierNone, Suggestions: []string{}}
	}

	lower := strings.ToLower(password)
	if username != "" && strings.Contains(lower, strings.ToLower(username)) {
		return Result{
			Tier:        TierWeak,
			Suggestions: []string{SuggestAvoidUsername},
			Warning:     WarnContainsUsername,
		}
	}

	if a.weak.Contains(password) {
		return Result{Tier: TierWeak, Suggestions: []string{SuggestTooCommon}}
	}

	score := 0
	suggestions := []string{}

	switch n := utf8.RuneCountInString(password); {
	case n >= 12:
		score += 3
	case n >= 8:
		score += 2
	default:
		suggestions = append(suggestions, SuggestMinLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	if hasUpper && hasLower {
		score += 2
	} else {
		suggestions = append(suggestions, SuggestMixCase)
	}
	if hasDigit {
		score += 2
	} else {
		suggestions = append(suggestions, SuggestDigit)
	}
	if hasSpecial {
		score += 2
	} else {
		suggestions = append(suggestions, SuggestSpecial)
	}

	return Result{Tier: tierFor(score), Score: score, Suggestions: suggestions}
}

func tierFor(score int) Tier {
	switch {
	case score <= 2:
		return TierWeak
	case score <= 6:
		return TierModerate
	default:
		return TierStrong
	}
}
