// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// defaultWeakPasswords is used when no word list file is present.
var defaultWeakPasswords = []string{"password", "123456", "qwerty", "admin", "letmein", "welcome"}

// WeakSet is an immutable set of lowercase common passwords.
type WeakSet struct {
	words map[string]struct{}
}

// NewWeakSet builds a set from the given words. Words are trimmed and
// lowercased; blank entries are dropped.
func NewWeakSet(words ...string) WeakSet {
	s := WeakSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s
}

// DefaultWeakSet returns the built-in six word fallback list.
func DefaultWeakSet() WeakSet {
	return NewWeakSet(defaultWeakPasswords...)
}

// Contains reports whether the lowercased password is a known weak password.
func (s WeakSet) Contains(password string) bool {
	if s.words == nil {
		return false
	}
	_, ok := s.words[strings.ToLower(password)]
	return ok
}

// Len returns the number of words in the set.
func (s WeakSet) Len() int { return len(s.words) }

// LoadWeakSet reads a word list with one password per line from path.
// A missing file is not an error: the default set is returned instead.
func LoadWeakSet(fsys afero.Fs, path string) (WeakSet, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultWeakSet(), nil
		}
		return WeakSet{}, fmt.Errorf("could not open weak password list %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return WeakSet{}, fmt.Errorf("could not read weak password list %s: %w", path, err)
	}
	return NewWeakSet(words...), nil
}
