// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package backup

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/toeirei/securepass/internal/store"
)

func TestExportImport_RoundTrip(t *testing.T) {
	recs := []store.Record{
		{Username: "alice", Password: "Abcdef1!2345", Digest: "d1"},
		{Username: "bob", Password: "hunter2", Digest: "d2"},
	}
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	written, err := Export(&buf, recs, now)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if written.ID == uuid.Nil {
		t.Fatalf("expected a backup id")
	}

	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if got.ID != written.ID || !got.CreatedAt.Equal(now) || got.Version != FormatVersion {
		t.Fatalf("manifest header mismatch: %+v vs %+v", got, written)
	}
	if !reflect.DeepEqual(got.Records, recs) {
		t.Fatalf("records mismatch: %#v", got.Records)
	}
}

func TestExport_EmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Export(&buf, nil, time.Now()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	got, err := Import(&buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if got.Records == nil || len(got.Records) != 0 {
		t.Fatalf("expected empty record list, got %#v", got.Records)
	}
}

func TestImport_RejectsGarbage(t *testing.T) {
	if _, err := Import(strings.NewReader("not a zstd stream")); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}
