// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"io/fs"
	"sort"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// loadKeys reads an embedded locale and returns its flattened keys.
func loadKeys(t *testing.T, name string) map[string]struct{} {
	t.Helper()
	content, err := fs.ReadFile(localeFS, "locales/"+name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	keys := make(map[string]struct{})
	flatten("", data, keys)
	return keys
}

// flatten converts nested maps into dot-separated keys.
func flatten(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		next := k
		if prefix != "" {
			next = prefix + "." + k
		}
		flatten(next, v, keys)
	}
}

func TestLocales_SameKeys(t *testing.T) {
	primary := loadKeys(t, "en.yaml")
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() == "en.yaml" {
			continue
		}
		other := loadKeys(t, e.Name())
		var missing, extra []string
		for k := range primary {
			if _, ok := other[k]; !ok {
				missing = append(missing, k)
			}
		}
		for k := range other {
			if _, ok := primary[k]; !ok {
				extra = append(extra, k)
			}
		}
		sort.Strings(missing)
		sort.Strings(extra)
		if len(missing) > 0 || len(extra) > 0 {
			t.Fatalf("%s out of sync: missing=[%s] extra=[%s]", e.Name(),
				strings.Join(missing, ", "), strings.Join(extra, ", "))
		}
	}
}

func TestLocales_EveryKeyTranslates(t *testing.T) {
	for _, lang := range []string{"en", "de"} {
		Init(lang)
		for key := range loadKeys(t, lang+".yaml") {
			if got := T(key); got == key || got == "" {
				t.Fatalf("%s: key %q did not resolve", lang, key)
			}
		}
	}
	Init("en")
}
