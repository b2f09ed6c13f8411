// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/vault"
)

// unlock checks the passphrase from the flag, or prompts for it.
func unlock(cmd *cobra.Command, passphrase string) error {
	if !app.vault.HasPassphrase() {
		return vault.ErrNoPassphrase
	}
	if !cmd.Flags().Changed("passphrase") {
		var err error
		if passphrase, err = newPrompter(cmd).Secret(i18n.T("cli.prompt_passphrase")); err != nil {
			return err
		}
	}
	if !app.vault.CheckPassphrase(passphrase) {
		return vault.ErrWrongPassphrase
	}
	return nil
}

// newSaveCmd builds the 'save' command, which stores one record.
func newSaveCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a username and password to the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.vault.HasPassphrase() {
				return vault.ErrNoPassphrase
			}
			if !cmd.Flags().Changed("password") {
				var err error
				if password, err = newPrompter(cmd).Secret(i18n.T("cli.prompt_password")); err != nil {
					return err
				}
			}
			if _, err := app.vault.SaveRecord(username, password); err != nil {
				return err
			}
			printResult(cmd, app.analyzer.Analyze(password, username))
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.saved", username))
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username for the record")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password to store (prompted for when omitted)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

// newListCmd builds the 'list' command, which prints the saved records.
func newListCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(cmd, passphrase); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			records := app.vault.Records()
			if len(records) == 0 {
				fmt.Fprintln(out, i18n.T("cli.no_records"))
				return nil
			}

			stale := false
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				i18n.T("manager.column_username"), i18n.T("manager.column_password"), i18n.T("manager.column_digest"))
			for _, rec := range records {
				digest := i18n.T("manager.digest_ok")
				if !app.vault.Verify(rec) {
					digest = i18n.T("manager.digest_stale")
					stale = true
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", rec.Username, rec.Password, digest)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if stale {
				fmt.Fprintln(out, i18n.T("cli.stale_note"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Vault passphrase (prompted for when omitted)")
	return cmd
}

// newDeleteAccountCmd builds the 'delete-account' command.
func newDeleteAccountCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete the passphrase and every saved password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				ok, err := newPrompter(cmd).Confirm(i18n.T("cli.delete_prompt"))
				if err != nil || !ok {
					fmt.Fprintln(out, i18n.T("cli.delete_aborted"))
					return nil
				}
			}
			if err := app.vault.DeleteAccount(); err != nil {
				return err
			}
			fmt.Fprintln(out, i18n.T("cli.account_deleted"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
