// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
)

const redacted = "[SECRET]"

// Secret holds the passphrase. Formatting, JSON and text encoding are all
// redacted so the value cannot leak into logs by accident.
type Secret []byte

// FromString creates a Secret from user input.
func FromString(in string) Secret { return Secret([]byte(in)) }

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter so every verb is redacted.
func (s Secret) Format(f fmt.State, c rune) {
	_, _ = io.WriteString(f, redacted)
}

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Reveal returns the plaintext value. Only persistence and hashing should
// call it.
func (s Secret) Reveal() string { return string(s) }

// IsEmpty reports whether no value is held.
func (s Secret) IsEmpty() bool { return len(s) == 0 }

// Equal compares the secret with candidate by value.
func (s Secret) Equal(candidate string) bool {
	if s == nil {
		return false
	}
	return subtle.ConstantTimeCompare(s, []byte(candidate)) == 1
}

// Zero overwrites the underlying byte slice with zeros.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	for i := range *s {
		(*s)[i] = 0
	}
}
