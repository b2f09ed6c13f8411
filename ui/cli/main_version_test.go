// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"runtime/debug"
	"testing"

	"github.com/toeirei/securepass/buildvars"
)

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/securepass", Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != gitCommit {
		t.Fatalf("expected commit to equal package gitCommit (default) got %s", c)
	}
	if d != buildDate {
		t.Fatalf("expected date to equal package buildDate (default) got %s", d)
	}
}

func TestResolveBuildVersion_VCSSettings(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/securepass", Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}
	_, c, d := resolveBuildVersion(info)
	if c != "abc123" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("expected vcs settings to be used, got commit=%s date=%s", c, d)
	}
}

func TestResolveBuildVersion_LinkerVersionWins(t *testing.T) {
	orig := buildvars.Version
	defer func() { buildvars.Version = orig }()
	buildvars.Version = "v9.9.9"

	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/securepass", Version: "v1.2.3"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v9.9.9" {
		t.Fatalf("expected linker version, got %s", v)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	// preserve original
	orig := gitCommit
	defer func() { gitCommit = orig }()
	gitCommit = "deadbeef"
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/securepass", Version: "(devel)"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}
}
