// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/securepass/internal/backup"
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/logging"
)

// newBackupCmd builds the 'backup' command, which writes all records to a
// compressed file.
func newBackupCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "backup [file]",
		Short: "Write all saved passwords to a compressed backup file",
		Long: `Writes every saved record to a zstd-compressed JSON file. Without a file
name the backup is written to the data directory with a timestamped name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(cmd, passphrase); err != nil {
				return err
			}

			now := time.Now()
			path := app.cfg.Resolve(fmt.Sprintf("securepass-backup-%s.json.zst", now.Format("20060102-150405")))
			if len(args) == 1 {
				path = args[0]
			}

			f, err := app.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("could not create backup file: %w", err)
			}
			m, err := backup.Export(f, app.vault.Records(), now)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				_ = app.fs.Remove(path)
				return fmt.Errorf("could not write backup: %w", err)
			}

			logging.Infof("backup %s written to %s", m.ID, path)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.backup_written", path, len(m.Records)))
			return nil
		},
	}
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Vault passphrase (prompted for when omitted)")
	return cmd
}

// newRestoreCmd builds the 'restore' command, which replaces the saved
// records with those in a backup file.
func newRestoreCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace all saved passwords with the contents of a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := unlock(cmd, passphrase); err != nil {
				return err
			}

			f, err := app.fs.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open backup file: %w", err)
			}
			defer func() { _ = f.Close() }()

			m, err := backup.Import(f)
			if err != nil {
				return err
			}
			if err := app.vault.ReplaceRecords(m.Records); err != nil {
				return err
			}

			logging.Infof("restored backup %s created %s", m.ID, m.CreatedAt.Format(time.RFC3339))
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.restored", len(m.Records), args[0]))
			return nil
		},
	}
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Vault passphrase (prompted for when omitted)")
	return cmd
}
