package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Rows is a flat comma-delimited row store, one file per key under the data
// directory. Rows may vary in length (schedule rows carry repeating session
// groups), so no schema is enforced here.
type Rows struct {
	dir string
}

// NewRows opens a row store rooted at dir, creating the directory if
// needed.
func NewRows(dir string) (*Rows, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Rows{dir: dir}, nil
}

func (r *Rows) path(key string) string {
	return filepath.Join(r.dir, key+".csv")
}

// ReadRows returns all rows under a key. A missing file is created empty,
// matching first use for a new student.
func (r *Rows) ReadRows(key string) ([][]string, error) {
	f, err := os.Open(r.path(key))
	if os.IsNotExist(err) {
		if err := r.WriteRows(key, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", r.path(key), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows vary in length
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path(key), err)
	}
	return rows, nil
}

// WriteRows replaces everything under a key with the given rows. The whole
// file is rewritten.
func (r *Rows) WriteRows(key string, rows [][]string) error {
	f, err := os.Create(r.path(key))
	if err != nil {
		return fmt.Errorf("creating %s: %w", r.path(key), err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", r.path(key), err)
	}
	return nil
}

// Delete removes the file behind a key.
func (r *Rows) Delete(key string) error {
	if err := os.Remove(r.path(key)); err != nil {
		return fmt.Errorf("deleting %s: %w", r.path(key), err)
	}
	return nil
}
