// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging wraps a package-level charmbracelet logger. All packages
// log through the helpers here so the destination can be swapped while the
// TUI owns the terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "securepass"})

// SetLevel sets the minimum level by name ("debug", "info", "warn",
// "error"). Unknown names leave the level unchanged and return an error.
func SetLevel(name string) error {
	lvl, err := clog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("unknown log level %q", name)
	}
	L.SetLevel(lvl)
	return nil
}

// SetOutput redirects the logger.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
