// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for SecurePass using Cobra.
// It wires configuration and the default services, then either launches the
// TUI or runs a one-shot subcommand against the same vault.
package cli
