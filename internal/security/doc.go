// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security holds the digest used to fingerprint stored passwords and
// a redacting wrapper for the passphrase.
package security
