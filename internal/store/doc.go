// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package store persists the passphrase and the saved password records as
// flat files. Every write replaces the whole file; a missing file always
// means "no data yet".
package store

import (
	"errors"
	"io/fs"
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// filePerm returns 0600 on Unix-like systems. On Windows, where POSIX
// permissions are not meaningful, it falls back to 0644.
func filePerm() os.FileMode {
	if runtime.GOOS == "windows" {
		return 0o644
	}
	return 0o600
}

// removeIfExists deletes path, ignoring a missing file.
func removeIfExists(fsys afero.Fs, path string) error {
	if err := fsys.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
