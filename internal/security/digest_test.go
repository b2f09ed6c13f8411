// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import "testing"

func TestDigest_KnownValues(t *testing.T) {
	// sha256("") and sha256("abc")
	if got := Digest("", ""); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Fatalf("unexpected digest of empty input: %s", got)
	}
	if got := Digest("ab", "c"); got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Fatalf("unexpected digest for ab+c: %s", got)
	}
	if Digest("abc", "") != Digest("ab", "c") {
		t.Fatalf("digest must hash the plain concatenation")
	}
}

func TestDigest_DeterministicAndSaltSensitive(t *testing.T) {
	a := Digest("hunter2", "pepper")
	if a != Digest("hunter2", "pepper") {
		t.Fatalf("digest is not deterministic")
	}
	if a == Digest("hunter2", "salt") {
		t.Fatalf("different passphrases produced the same digest")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(a))
	}
}
