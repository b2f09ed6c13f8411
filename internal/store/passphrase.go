// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// PassphraseFile stores the passphrase as a single line of plaintext.
type PassphraseFile struct {
	fs   afero.Fs
	path string
}

// NewPassphraseFile returns a store for the passphrase at path.
func NewPassphraseFile(fsys afero.Fs, path string) *PassphraseFile {
	return &PassphraseFile{fs: fsys, path: path}
}

// Path returns the backing file path.
func (p *PassphraseFile) Path() string { return p.path }

// Load returns the stored passphrase. ok is false when no file exists.
func (p *PassphraseFile) Load() (value string, ok bool, err error) {
	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("could not read passphrase file: %w", err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// Save overwrites the passphrase file with value.
func (p *PassphraseFile) Save(value string) error {
	if err := afero.WriteFile(p.fs, p.path, []byte(value), filePerm()); err != nil {
		return fmt.Errorf("could not write passphrase file: %w", err)
	}
	return nil
}

// Delete removes the passphrase file.
func (p *PassphraseFile) Delete() error {
	if err := removeIfExists(p.fs, p.path); err != nil {
		return fmt.Errorf("could not delete passphrase file: %w", err)
	}
	return nil
}
