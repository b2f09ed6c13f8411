// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for SecurePass using the
// Cobra library. It defines the root command, its flags, the service
// bootstrap shared by every subcommand and the entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/securepass/buildvars"
	"github.com/toeirei/securepass/internal/config"
	"github.com/toeirei/securepass/internal/i18n"
	"github.com/toeirei/securepass/internal/logging"
	"github.com/toeirei/securepass/internal/store"
	"github.com/toeirei/securepass/internal/strength"
	"github.com/toeirei/securepass/internal/tui"
	"github.com/toeirei/securepass/internal/vault"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// appFs is the filesystem every store works on. Tests may swap it for an
// in-memory one.
var appFs = afero.NewOsFs()

// services bundles what the commands operate on once the configuration
// has been loaded.
type services struct {
	cfg      config.Config
	fs       afero.Fs
	vault    *vault.Vault
	analyzer *strength.Analyzer
}

// app is populated by setupDefaultServices before any command runs.
var app *services

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// A "file not found" error is expected on first run.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&cfg, false); writeErr != nil {
			// The app can run on defaults.
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Debugf("wrote default config to user config path")
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	i18n.Init(cfg.Language)
	cmd.Root().SetErrPrefix(i18n.T("error.prefix"))

	level := cfg.Log.Level
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	if err := logging.SetLevel(level); err != nil {
		return err
	}

	if err := appFs.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return fmt.Errorf("could not create data directory %s: %w", cfg.DataDir, err)
	}

	v, err := vault.Open(
		store.NewPassphraseFile(appFs, cfg.Resolve(cfg.Files.Passphrase)),
		store.NewRecordFile(appFs, cfg.Resolve(cfg.Files.Records)),
	)
	if err != nil {
		return fmt.Errorf("could not open vault: %w", err)
	}

	weak, err := strength.LoadWeakSet(appFs, cfg.Resolve(cfg.Files.WeakPasswords))
	if err != nil {
		return fmt.Errorf("could not load weak password list: %w", err)
	}
	logging.Debugf("loaded %d weak passwords", weak.Len())

	app = &services{
		cfg:      cfg,
		fs:       appFs,
		vault:    v,
		analyzer: strength.NewAnalyzer(weak),
	}
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}

	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// runTUI launches the interactive interface with logging redirected to the
// configured log file, since the TUI owns the terminal.
func runTUI() error {
	if name := app.cfg.Log.File; name != "" {
		f, err := app.fs.OpenFile(app.cfg.Resolve(name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		logging.SetOutput(f)
		defer func() {
			logging.SetOutput(os.Stderr)
			_ = f.Close()
		}()
	}
	return tui.Run(app.vault, app.analyzer)
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	var showVersionFlag bool

	cmd := &cobra.Command{
		Use:   "securepass",
		Short: "SecurePass analyzes password strength and keeps a small password vault.",
		Long: `SecurePass scores passwords as you type them and stores the ones you
choose next to a SHA-256 digest salted with your passphrase.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("data-dir", ".", "Directory holding the passphrase, records and word list")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("log-level", "info", `Log level ("debug", "info", "warn", "error")`)

	// Add a lightweight `version` subcommand so users and CI can run `securepass version`.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newAnalyzeCmd(),
		newPassphraseCmd(),
		newSaveCmd(),
		newListCmd(),
		newDeleteAccountCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		versionCmd,
	)
	localizeCommands(cmd)

	return cmd
}

// compositeVersion joins version, commit and build date for display.
func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, show the commit to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
