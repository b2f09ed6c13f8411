// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/strength"
	"github.com/toeirei/securepass/internal/ui"
)

// newAnalyzeCmd builds the 'analyze' command, which scores one password.
func newAnalyzeCmd() *cobra.Command {
	var username string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Score the strength of a password",
		Long: `Scores a password and prints its tier and suggestions.
Without an argument the password is read from a masked prompt, or from the
first line of stdin when it is not a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				var err error
				password, err = newPrompter(cmd).Secret(i18n.T("cli.prompt_password"))
				if err != nil {
					return err
				}
			}

			result := app.analyzer.Analyze(password, username)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ui.NewReport(result))
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username to check the password against")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func printResult(cmd *cobra.Command, r strength.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, i18n.T("cli.strength", ui.TierText(r.Tier), r.Score, strength.MaxScore))
	if r.Warning != "" {
		fmt.Fprintln(out, ui.HintText(r.Warning))
	}
	if r.ShowSuggestions() {
		fmt.Fprintln(out, i18n.T("cli.suggestions"))
		for _, s := range r.Suggestions {
			fmt.Fprintf(out, "  - %s\n", ui.HintText(s))
		}
	}
}
