package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRowsMissingFileCreatedEmpty(t *testing.T) {
	dir := t.TempDir()
	rows, err := NewRows(dir)
	if err != nil {
		t.Fatal(err)
	}

	got, err := rows.ReadRows("123456789_schedules")
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadRows() = %v, want empty", got)
	}
	// First read creates the file so the next session finds it.
	if _, err := os.Stat(filepath.Join(dir, "123456789_schedules.csv")); err != nil {
		t.Errorf("schedule file not created: %v", err)
	}
}

func TestRowsRoundTrip(t *testing.T) {
	rows, err := NewRows(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	// Rows vary in length: a bare schedule id next to a full session
	// group.
	want := [][]string{
		{"1"},
		{"2", "10101", "Lecture", "01", "Monday", "09:00", "90", "Smith", "A1"},
	}
	if err := rows.WriteRows("123456789_schedules", want); err != nil {
		t.Fatalf("WriteRows() error = %v", err)
	}
	got, err := rows.ReadRows("123456789_schedules")
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadRows() = %v, want %v", got, want)
	}
}

func TestRowsOverwrite(t *testing.T) {
	rows, err := NewRows(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := rows.WriteRows("key", [][]string{{"1"}, {"2"}}); err != nil {
		t.Fatal(err)
	}
	if err := rows.WriteRows("key", [][]string{{"9"}}); err != nil {
		t.Fatal(err)
	}

	got, err := rows.ReadRows("key")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, [][]string{{"9"}}) {
		t.Errorf("ReadRows() = %v, want the rewritten rows only", got)
	}
}

func TestRowsDelete(t *testing.T) {
	rows, err := NewRows(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := rows.WriteRows("key", [][]string{{"1"}}); err != nil {
		t.Fatal(err)
	}
	if err := rows.Delete("key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := rows.Delete("key"); err == nil {
		t.Error("Delete(absent) error = nil")
	}
}
