// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides translated user-facing strings. Locale files are
// embedded YAML documents loaded into a go-i18n bundle.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// displayNames maps locale codes to the name shown in the language picker.
var displayNames = map[string]string{
	"en": "English",
	"de": "Deutsch",
}

// Init loads every embedded locale and activates lang. Unknown languages
// fall back to English through the bundle's default.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	current = lang
}

// SetLang changes the active language.
func SetLang(lang string) { Init(lang) }

// GetLang returns the active language code.
func GetLang() string { return current }

// GetAvailableLocales returns the embedded locale codes mapped to display
// names.
func GetAvailableLocales() map[string]string {
	out := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		code := strings.TrimSuffix(f.Name(), ".yaml")
		name, ok := displayNames[code]
		if !ok {
			name = code
		}
		out[code] = name
	}
	return out
}

// T translates messageID. Extra args are applied fmt-style to the
// translated text. A missing ID is returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
