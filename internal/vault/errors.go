// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import "errors"

var (
	// ErrNoPassphrase is returned when an operation needs a passphrase but
	// none has been set.
	ErrNoPassphrase = errors.New("no passphrase set")
	// ErrPassphraseAlreadySet is returned by SetPassphrase in the SET state.
	ErrPassphraseAlreadySet = errors.New("passphrase already set")
	// ErrWrongPassphrase is returned when a supplied passphrase does not
	// match the stored one.
	ErrWrongPassphrase = errors.New("incorrect passphrase")
	// ErrPassphraseMismatch is returned when the new passphrase and its
	// confirmation differ.
	ErrPassphraseMismatch = errors.New("new passphrase and confirmation do not match")
	// ErrEmptyPassphrase is returned when a new passphrase is empty.
	ErrEmptyPassphrase = errors.New("passphrase cannot be empty")
	// ErrEmptyRecord is returned when a record is saved without a username
	// or password.
	ErrEmptyRecord = errors.New("username and password are required")
	// ErrLineBreak is returned when a username or password contains a CRLF
	// sequence, which the record file cannot store unchanged.
	ErrLineBreak = errors.New("username and password cannot contain CRLF line breaks")
)
