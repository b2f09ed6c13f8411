// Copyright (c) 2026 SecurePass Team
// SecurePass - password strength analyzer and vault
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// recordHeader is the first row of the record file.
var recordHeader = []string{"Username", "Password", "Encrypted"}

// Record is one saved password. Digest is the hex hash computed with the
// passphrase that was active when the record was saved.
type Record struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Digest   string `json:"encrypted"`
}

// RecordFile stores records as CSV.
type RecordFile struct {
	fs   afero.Fs
	path string
}

// NewRecordFile returns a store for the record CSV at path.
func NewRecordFile(fsys afero.Fs, path string) *RecordFile {
	return &RecordFile{fs: fsys, path: path}
}

// Path returns the backing file path.
func (r *RecordFile) Path() string { return r.path }

// Load reads all records. A missing file yields an empty list. The header
// row is skipped and rows with fewer than three fields are ignored.
func (r *RecordFile) Load() ([]Record, error) {
	f, err := r.fs.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("could not open record file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadRecords(f)
}

// Save replaces the record file with the header and all records.
func (r *RecordFile) Save(records []Record) error {
	var buf bytes.Buffer
	if err := WriteRecords(&buf, records); err != nil {
		return err
	}
	if err := afero.WriteFile(r.fs, r.path, buf.Bytes(), filePerm()); err != nil {
		return fmt.Errorf("could not write record file: %w", err)
	}
	return nil
}

// Delete removes the record file.
func (r *RecordFile) Delete() error {
	if err := removeIfExists(r.fs, r.path); err != nil {
		return fmt.Errorf("could not delete record file: %w", err)
	}
	return nil
}

// ReadRecords parses the CSV record format from rd.
func ReadRecords(rd io.Reader) ([]Record, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records := []Record{}
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not parse record file: %w", err)
		}
		if first {
			first = false
			continue
		}
		if len(row) < 3 {
			continue
		}
		records = append(records, Record{Username: row[0], Password: row[1], Digest: row[2]})
	}
	return records, nil
}

// WriteRecords writes the header and records in CSV form to w. Rows end in
// CRLF while carriage returns inside fields are written verbatim.
func WriteRecords(w io.Writer, records []Record) error {
	if err := writeRow(w, recordHeader); err != nil {
		return fmt.Errorf("could not write record header: %w", err)
	}
	for _, rec := range records {
		if err := writeRow(w, []string{rec.Username, rec.Password, rec.Digest}); err != nil {
			return fmt.Errorf("could not write record: %w", err)
		}
	}
	return nil
}

// writeRow encodes a single row with LF handling and swaps its terminator
// for CRLF. csv.Writer with UseCRLF drops lone carriage returns in fields.
func writeRow(w io.Writer, row []string) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	line := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	_, err := w.Write(append(line, '\r', '\n'))
	return err
}
