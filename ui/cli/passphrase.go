// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/vault"
)

// newPassphraseCmd builds the 'passphrase' command group.
func newPassphraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Set or change the vault passphrase",
	}
	cmd.AddCommand(newPassphraseSetCmd(), newPassphraseChangeCmd())
	return cmd
}

func newPassphraseSetCmd() *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the passphrase for the first time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.vault.HasPassphrase() {
				return vault.ErrPassphraseAlreadySet
			}
			if !cmd.Flags().Changed("value") {
				var err error
				if value, err = newPrompter(cmd).Secret(i18n.T("cli.prompt_passphrase")); err != nil {
					return err
				}
			}
			if err := app.vault.SetPassphrase(value); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.passphrase_set"))
			return nil
		},
	}
	cmd.Flags().StringVar(&value, "value", "", "New passphrase (prompted for when omitted)")
	return cmd
}

func newPassphraseChangeCmd() *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "change",
		Short: "Replace the passphrase",
		Long: `Replaces the passphrase after checking the current one. Saved records
keep their digests, so they show as stale until saved again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.vault.HasPassphrase() {
				return vault.ErrNoPassphrase
			}
			p := newPrompter(cmd)
			var err error
			if !cmd.Flags().Changed("current") {
				if current, err = p.Secret(i18n.T("cli.prompt_current")); err != nil {
					return err
				}
			}
			confirm := next
			if !cmd.Flags().Changed("new") {
				if next, err = p.Secret(i18n.T("cli.prompt_new")); err != nil {
					return err
				}
				if confirm, err = p.Secret(i18n.T("cli.prompt_confirm")); err != nil {
					return err
				}
			}
			if err := app.vault.ChangePassphrase(current, next, confirm); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.passphrase_changed"))
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "Current passphrase (prompted for when omitted)")
	cmd.Flags().StringVar(&next, "new", "", "New passphrase (prompted for twice when omitted)")
	return cmd
}
