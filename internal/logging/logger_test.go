// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer swaps L with a buffer-backed logger and
// checks every helper reaches it.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	defer func() { L = prev }()

	if err := SetLevel("error"); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}
	Infof("should be filtered")
	Errorf("kept")
	out := buf.String()
	if strings.Contains(out, "should be filtered") || !strings.Contains(out, "kept") {
		t.Fatalf("unexpected output at error level: %s", out)
	}

	if err := SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
