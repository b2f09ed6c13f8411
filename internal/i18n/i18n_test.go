// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}
	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	if got := T("nav.analyzer"); got != "Analyzer" {
		t.Fatalf("expected 'Analyzer', got %q", got)
	}
	if got := T("analyzer.strength", "Strong"); got != "Strength: Strong" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	defer SetLang("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("nav.settings"); got != "Einstellungen" {
		t.Fatalf("expected German 'Einstellungen', got %q", got)
	}
}

func TestT_MissingIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message id fallback, got %q", got)
	}
}

func TestT_UnknownLanguageUsesEnglish(t *testing.T) {
	Init("fr")
	defer Init("en")
	if got := T("nav.manager"); got != "Manager" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}
