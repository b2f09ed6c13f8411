// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package vault owns the application state: the passphrase, the saved
// records and the manager login flag. The presentation layers (TUI and CLI)
// hold a *Vault and drive it one user action at a time.
//
// Passphrase lifecycle:
//
//	UNSET --SetPassphrase--> SET --ChangePassphrase--> SET
//	  ^                       |
//	  +-----DeleteAccount-----+
//
// DeleteAccount is accepted in either state and always ends in UNSET with
// no records.
package vault

import (
	"fmt"
	"strings"

	"github.com/toeirei/securepass/internal/logging"
	"github.com/toeirei/securepass/internal/security"
	"github.com/toeirei/securepass/internal/store"
)

// Record is re-exported so callers need not import the store package.
type Record = store.Record

// PassphraseStore persists the single passphrase value.
type PassphraseStore interface {
	Load() (string, bool, error)
	Save(value string) error
	Delete() error
}

// RecordStore persists the full record list.
type RecordStore interface {
	Load() ([]store.Record, error)
	Save(records []store.Record) error
	Delete() error
}

// Vault is the application state. It is not safe for concurrent use; the
// TUI and CLI drive it from a single goroutine.
type Vault struct {
	passphrases PassphraseStore
	recordStore RecordStore

	passphrase security.Secret
	records    []Record
	loggedIn   bool
}

// Open loads the persisted passphrase and records. Records are read
// verbatim; their digests are not checked against the passphrase.
func Open(passphrases PassphraseStore, records RecordStore) (*Vault, error) {
	v := &Vault{passphrases: passphrases, recordStore: records}

	value, ok, err := passphrases.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		v.passphrase = security.FromString(value)
	}

	recs, err := records.Load()
	if err != nil {
		return nil, err
	}
	v.records = recs
	logging.Debugf("vault opened: passphrase set=%t records=%d", v.HasPassphrase(), len(v.records))
	return v, nil
}

// HasPassphrase reports whether the vault is in the SET state.
func (v *Vault) HasPassphrase() bool {
	return v.passphrase != nil
}

// LoggedIn reports whether the manager view has been unlocked.
func (v *Vault) LoggedIn() bool { return v.loggedIn }

// SetPassphrase moves the vault from UNSET to SET.
func (v *Vault) SetPassphrase(value string) error {
	if v.HasPassphrase() {
		return ErrPassphraseAlreadySet
	}
	if value == "" {
		return ErrEmptyPassphrase
	}
	if err := v.passphrases.Save(value); err != nil {
		return err
	}
	v.passphrase = security.FromString(value)
	logging.Infof("passphrase set")
	return nil
}

// ChangePassphrase replaces the passphrase. The checks run in a fixed order
// (current value, confirmation, emptiness) and any rejection leaves the
// state untouched. Stored digests are not re-keyed.
func (v *Vault) ChangePassphrase(current, next, confirm string) error {
	if !v.HasPassphrase() {
		return ErrNoPassphrase
	}
	if !v.passphrase.Equal(current) {
		return ErrWrongPassphrase
	}
	if next != confirm {
		return ErrPassphraseMismatch
	}
	if next == "" {
		return ErrEmptyPassphrase
	}
	if err := v.passphrases.Save(next); err != nil {
		return err
	}
	v.passphrase.Zero()
	v.passphrase = security.FromString(next)
	logging.Infof("passphrase changed")
	return nil
}

// DeleteAccount clears the passphrase, all records and the login flag, and
// removes both files. In-memory state is cleared even if a file cannot be
// removed; the first removal error is returned.
func (v *Vault) DeleteAccount() error {
	v.passphrase.Zero()
	v.passphrase = nil
	v.records = []Record{}
	v.loggedIn = false

	var firstErr error
	if err := v.passphrases.Delete(); err != nil {
		firstErr = err
	}
	if err := v.recordStore.Delete(); err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		logging.Errorf("account deletion incomplete: %v", firstErr)
		return firstErr
	}
	logging.Infof("account deleted")
	return nil
}

// SaveRecord appends a record hashed with the current passphrase and
// rewrites the record file. Nothing is written when no passphrase is set.
func (v *Vault) SaveRecord(username, password string) (Record, error) {
	if !v.HasPassphrase() {
		return Record{}, ErrNoPassphrase
	}
	if username == "" || password == "" {
		return Record{}, ErrEmptyRecord
	}
	if hasCRLF(username) || hasCRLF(password) {
		return Record{}, ErrLineBreak
	}
	rec := Record{
		Username: username,
		Password: password,
		Digest:   security.Digest(password, v.passphrase.Reveal()),
	}
	next := append(v.Records(), rec)
	if err := v.recordStore.Save(next); err != nil {
		return Record{}, fmt.Errorf("could not persist records: %w", err)
	}
	v.records = next
	logging.Infof("saved password for %q (%d records)", username, len(next))
	return rec, nil
}

// ReplaceRecords swaps the full record list, as used by restore. Digests are
// kept as given.
func (v *Vault) ReplaceRecords(records []Record) error {
	if !v.HasPassphrase() {
		return ErrNoPassphrase
	}
	for _, rec := range records {
		if hasCRLF(rec.Username) || hasCRLF(rec.Password) {
			return ErrLineBreak
		}
	}
	next := make([]Record, len(records))
	copy(next, records)
	if err := v.recordStore.Save(next); err != nil {
		return fmt.Errorf("could not persist records: %w", err)
	}
	v.records = next
	logging.Infof("replaced record list (%d records)", len(next))
	return nil
}

// Login unlocks the manager view when passphrase matches the stored value.
// There is no lockout or backoff.
func (v *Vault) Login(passphrase string) error {
	if !v.passphrase.Equal(passphrase) {
		logging.Warnf("manager login rejected")
		return ErrWrongPassphrase
	}
	v.loggedIn = true
	return nil
}

// Logout locks the manager view again.
func (v *Vault) Logout() { v.loggedIn = false }

// CheckPassphrase reports whether candidate matches the stored passphrase
// without changing the login flag.
func (v *Vault) CheckPassphrase(candidate string) bool {
	return v.passphrase.Equal(candidate)
}

// Records returns a copy of the saved records in insertion order.
func (v *Vault) Records() []Record {
	out := make([]Record, len(v.records))
	copy(out, v.records)
	return out
}

// Verify reports whether rec's digest matches the current passphrase.
// Records saved before a passphrase change no longer verify.
func (v *Vault) Verify(rec Record) bool {
	if !v.HasPassphrase() {
		return false
	}
	return security.Digest(rec.Password, v.passphrase.Reveal()) == rec.Digest
}

func hasCRLF(s string) bool { return strings.Contains(s, "\r\n") }
