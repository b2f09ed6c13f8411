// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"reflect"
	"testing"
)

func TestAnalyze_EmptyPassword(t *testing.T) {
	a := NewAnalyzer(DefaultWeakSet())
	for _, u := range []string{"", "alice", "ALICE"} {
		r := a.Analyze("", u)
		if r.Tier != TierNone || r.Score != 0 || len(r.Suggestions) != 0 || r.Warning != "" {
			t.Fatalf("Analyze(\"\", %q) = %+v, want zero result", u, r)
		}
	}
}

func TestAnalyze_UsernameInPassword(t *testing.T) {
	a := NewAnalyzer(DefaultWeakSet())
	cases := []struct{ pw, user string }{
		{"xxAliceXX!9Strong", "alice"},
		{"bob", "BOB"},
		{"MyBobPassword123!", "bob"},
	}
	for _, c := range cases {
		r := a.Analyze(c.pw, c.user)
		if r.Tier != TierWeak || r.Score != 0 {
			t.Fatalf("Analyze(%q, %q) = %+v, want Weak/0", c.pw, c.user, r)
		}
		if !reflect.DeepEqual(r.Suggestions, []string{SuggestAvoidUsername}) {
			t.Fatalf("unexpected suggestions: %v", r.Suggestions)
		}
		if r.Warning != WarnContainsUsername {
			t.Fatalf("expected username warning, got %q", r.Warning)
		}
	}
}

func TestAnalyze_CommonPassword(t *testing.T) {
	a := NewAnalyzer(DefaultWeakSet())
	for _, pw := range []string{"password", "PassWord", "QWERTY", "letmein"} {
		r := a.Analyze(pw, "")
		if r.Tier != TierWeak || r.Score != 0 {
			t.Fatalf("Analyze(%q) = %+v, want Weak/0", pw, r)
		}
		if len(r.Suggestions) != 1 || r.Suggestions[0] != SuggestTooCommon {
			t.Fatalf("expected too common suggestion, got %v", r.Suggestions)
		}
		if r.Warning != "" {
			t.Fatalf("expected no warning, got %q", r.Warning)
		}
	}
}

func TestAnalyze_UsernameCheckedBeforeCommonList(t *testing.T) {
	a := NewAnalyzer(DefaultWeakSet())
	r := a.Analyze("admin", "admin")
	if r.Warning != WarnContainsUsername {
		t.Fatalf("expected username rule to win, got %+v", r)
	}
}

func TestAnalyze_Scoring(t *testing.T) {
	a := NewAnalyzer(DefaultWeakSet())
	cases := []struct {
		pw    string
		score int
		tier  Tier
		want  []string
	}{
		{"Abcdef1!2345", 9, TierStrong, []string{}},
		{"abc", 0, TierWeak, []string{SuggestMinLength, SuggestMixCase, SuggestDigit, SuggestSpecial}},
		{"abcdefgh", 2, TierWeak, []string{SuggestMixCase, SuggestDigit, SuggestSpecial}},
		{"Abcdefgh1", 6, TierModerate, []string{SuggestSpecial}},
		{"Abcdefgh1!", 8, TierStrong, []string{}},
		{"abcdefghijkl", 3, TierModerate, []string{SuggestMixCase, SuggestDigit, SuggestSpecial}},
		{"Ab1!", 6, TierModerate, []string{SuggestMinLength}},
	}
	for _, c := range cases {
		r := a.Analyze(c.pw, "")
		if r.Score != c.score || r.Tier != c.tier {
			t.Fatalf("Analyze(%q) = score %d tier %q, want %d %q", c.pw, r.Score, r.Tier, c.score, c.tier)
		}
		if !reflect.DeepEqual(r.Suggestions, c.want) {
			t.Fatalf("Analyze(%q) suggestions = %v, want %v", c.pw, r.Suggestions, c.want)
		}
	}
}

func TestAnalyze_LengthCountsCharacters(t *testing.T) {
	a := NewAnalyzer(NewWeakSet())
	// Seven runes, more than eight bytes.
	r := a.Analyze("äöüäöüä", "")
	found := false
	for _, s := range r.Suggestions {
		if s == SuggestMinLength {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected min length hint for 7 character password, got %v", r.Suggestions)
	}
}

func TestResult_ProgressAndSuggestionVisibility(t *testing.T) {
	if got := (Result{}).Progress(); got != 0.05 {
		t.Fatalf("expected floor of 0.05, got %v", got)
	}
	if got := (Result{Score: 9}).Progress(); got != 0.9 {
		t.Fatalf("expected 0.9, got %v", got)
	}
	if (Result{Tier: TierModerate, Suggestions: []string{SuggestSpecial}}).ShowSuggestions() {
		t.Fatalf("moderate passwords should not show suggestions")
	}
	if !(Result{Tier: TierWeak, Suggestions: []string{SuggestSpecial}}).ShowSuggestions() {
		t.Fatalf("weak passwords should show suggestions")
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := NewAnalyzer(DefaultWeakSet())
	first := a.Analyze("Tr0ub4dor&3", "joe")
	for i := 0; i < 5; i++ {
		if got := a.Analyze("Tr0ub4dor&3", "joe"); !reflect.DeepEqual(got, first) {
			t.Fatalf("non deterministic result: %+v vs %+v", got, first)
		}
	}
}

func TestAnalyze_NonASCIIDigitCounts(t *testing.T) {
	a := NewAnalyzer(NewWeakSet())
	// Arabic-Indic three and Devanagari five are decimal digits.
	for _, pw := range []string{"abcdefgh٣", "abcdefgh५"} {
		r := a.Analyze(pw, "")
		for _, s := range r.Suggestions {
			if s == SuggestDigit {
				t.Fatalf("Analyze(%q) should count the digit, got %v", pw, r.Suggestions)
			}
		}
	}
}
