// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// prompter reads answers from the command's input. Secrets are read
// without echo when the input is a terminal; otherwise one line is read
// per prompt so values can be piped in.
type prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	return &prompter{in: in, out: cmd.ErrOrStderr(), reader: bufio.NewReader(in)}
}

// terminalFd returns the file descriptor of the input if it is a terminal.
func (p *prompter) terminalFd() (int, bool) {
	f, ok := p.in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// Secret prints label and reads a value without echoing it.
func (p *prompter) Secret(label string) (string, error) {
	if fd, ok := p.terminalFd(); ok {
		fmt.Fprint(p.out, label)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("could not read input: %w", err)
		}
		return string(b), nil
	}
	return p.Line(label)
}

// Line prints label when interactive and reads one line.
func (p *prompter) Line(label string) (string, error) {
	if _, ok := p.terminalFd(); ok {
		fmt.Fprint(p.out, label)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no input provided")
		}
		return "", fmt.Errorf("could not read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question. Only an explicit yes (or the German j/ja)
// confirms.
func (p *prompter) Confirm(label string) (bool, error) {
	fmt.Fprint(p.out, label)
	answer, err := p.Line("")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "j", "ja":
		return true, nil
	}
	return false, nil
}
