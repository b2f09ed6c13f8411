// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package backup writes and reads Zstandard-compressed JSON snapshots of
// the saved password records.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/securepass/internal/store"
)

// FormatVersion is bumped whenever Manifest changes incompatibly.
const FormatVersion = 1

// Manifest is the decoded content of a backup file.
type Manifest struct {
	ID        uuid.UUID      `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Version   int            `json:"version"`
	Records   []store.Record `json:"records"`
}

// Export writes records to w as compressed JSON and returns the manifest
// that was written.
func Export(w io.Writer, records []store.Record, now time.Time) (Manifest, error) {
	m := Manifest{
		ID:        uuid.New(),
		CreatedAt: now.UTC(),
		Version:   FormatVersion,
		Records:   records,
	}
	if m.Records == nil {
		m.Records = []store.Record{}
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return Manifest{}, fmt.Errorf("could not create zstd writer: %w", err)
	}
	if err := json.NewEncoder(zw).Encode(&m); err != nil {
		_ = zw.Close()
		return Manifest{}, fmt.Errorf("could not encode backup: %w", err)
	}
	if err := zw.Close(); err != nil {
		return Manifest{}, fmt.Errorf("could not finish backup: %w", err)
	}
	return m, nil
}

// Import reads a backup produced by Export.
func Import(r io.Reader) (Manifest, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return Manifest{}, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var m Manifest
	if err := json.NewDecoder(zr).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("could not decode backup: %w", err)
	}
	if m.Version != FormatVersion {
		return Manifest{}, fmt.Errorf("unsupported backup version %d", m.Version)
	}
	if m.Records == nil {
		m.Records = []store.Record{}
	}
	return m, nil
}
