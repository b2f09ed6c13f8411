// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package strength scores passwords with a small set of heuristics: length,
// character classes, username reuse and membership in a list of common
// passwords. Scoring is pure and deterministic; the weak-password list is
// loaded once at startup and never mutated.
package strength
