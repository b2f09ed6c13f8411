// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads SecurePass settings from defaults, a YAML file,
// SECUREPASS_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	// DataDir is the directory relative file names resolve against.
	DataDir  string      `mapstructure:"data_dir" yaml:"data_dir" validate:"required"`
	Language string      `mapstructure:"language" yaml:"language" validate:"oneof=en de"`
	Files    FilesConfig `mapstructure:"files" yaml:"files"`
	Log      LogConfig   `mapstructure:"log" yaml:"log"`
}

// FilesConfig names the flat files SecurePass reads and writes.
type FilesConfig struct {
	Passphrase    string `mapstructure:"passphrase" yaml:"passphrase" validate:"required"`
	Records       string `mapstructure:"records" yaml:"records" validate:"required"`
	WeakPasswords string `mapstructure:"weak_passwords" yaml:"weak_passwords" validate:"required"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	// File receives log output while the TUI is running.
	File string `mapstructure:"file" yaml:"file"`
}

// Defaults returns the built-in configuration values keyed by config key.
func Defaults() map[string]any {
	return map[string]any{
		"data_dir":             ".",
		"language":             "en",
		"files.passphrase":     "passphrase.txt",
		"files.records":        "saved_passwords.csv",
		"files.weak_passwords": "weak_passwords.txt",
		"log.level":            "info",
		"log.file":             "securepass.log",
	}
}

// FlagKeys maps config keys to the command-line flags that override them.
var FlagKeys = map[string]string{
	"data_dir":  "data-dir",
	"language":  "language",
	"log.level": "log-level",
}

// Resolve returns name joined to DataDir unless name is absolute.
func (c Config) Resolve(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// Validate checks the struct tags on c.
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "SecurePass")
		default:
			configDir = "/etc/securepass"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "securepass")
	}

	return filepath.Join(configDir, "securepass.yaml"), nil
}

// LoadConfig builds a fresh viper instance and decodes it into T. A missing
// config file is reported as viper.ConfigFileNotFoundError alongside a
// fully populated T so callers can keep running on defaults.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("securepass")
	v.SetConfigType("yaml")

	// An explicit --config path wins over the search paths.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		readErr = err
	}

	v.SetEnvPrefix("securepass")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, flagName := range FlagKeys {
			if f := cmd.Flags().Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, readErr
}

// WriteConfigFile writes c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
