// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/vault"
)

// localizedError carries a translated message while keeping the original
// error reachable through errors.Is and errors.As.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

var errorKeys = []struct {
	target error
	key    string
}{
	{vault.ErrNoPassphrase, "error.no_passphrase"},
	{vault.ErrPassphraseAlreadySet, "error.passphrase_exists"},
	{vault.ErrWrongPassphrase, "error.wrong_passphrase"},
	{vault.ErrPassphraseMismatch, "error.mismatch"},
	{vault.ErrEmptyPassphrase, "error.empty_passphrase"},
	{vault.ErrEmptyRecord, "error.empty_record"},
	{vault.ErrLineBreak, "error.line_break"},
}

// localizeError translates known vault errors for display. Other errors are
// returned unchanged.
func localizeError(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range errorKeys {
		if errors.Is(err, k.target) {
			return &localizedError{msg: i18n.T(k.key), err: err}
		}
	}
	return err
}

// localizeCommands wraps the RunE of cmd and all of its subcommands so their
// errors pass through localizeError.
func localizeCommands(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			return localizeError(run(c, args))
		}
	}
	for _, sub := range cmd.Commands() {
		localizeCommands(sub)
	}
}
