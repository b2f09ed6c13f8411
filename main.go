// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for SecurePass.
//
// Usage:
//
//	go run . [flags]
//	./securepass [flags]
//
// Without a subcommand this launches the TUI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/securepass/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
