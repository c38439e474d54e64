package schedule

import (
	"strings"
	"testing"
	"time"
)

func gridSession(t *testing.T, group string, kind Kind, day time.Weekday, clock, duration string) Session {
	t.Helper()
	sess, err := ParseSession(kind, []string{group, day.String(), clock, duration, "Smith", "A1"})
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestGridSubHourSessionOccupiesOneRow(t *testing.T) {
	s := New(1)
	s.Append("10101", gridSession(t, "01", Lecture, time.Monday, "09:30", "45"))

	g := s.Grid()
	if got := g.Entries(time.Monday, 9); len(got) != 1 {
		t.Fatalf("09:00 entries = %v, want one", got)
	}
	if got := g.Entries(time.Monday, 10); len(got) != 0 {
		t.Errorf("10:00 entries = %v, want none", got)
	}
}

func TestGridSpanningSession(t *testing.T) {
	s := New(1)
	// 09:00 for 90 minutes covers the 09:00 and 10:00 rows.
	s.Append("10101", gridSession(t, "01", Lecture, time.Monday, "09:00", "90"))

	g := s.Grid()
	for _, hour := range []int{9, 10} {
		if got := g.Entries(time.Monday, hour); len(got) != 1 {
			t.Errorf("%02d:00 entries = %v, want one", hour, got)
		}
	}
	if got := g.Entries(time.Monday, 11); len(got) != 0 {
		t.Errorf("11:00 entries = %v, want none", got)
	}
}

func TestGridClipsAtLastRow(t *testing.T) {
	s := New(1)
	// Runs past the end of the teaching day; the 21:00 row is the last
	// one occupied.
	s.Append("10101", gridSession(t, "01", Lab, time.Thursday, "20:30", "180"))

	g := s.Grid()
	if got := g.Entries(time.Thursday, 20); len(got) != 1 {
		t.Errorf("20:00 entries = %v, want one", got)
	}
	if got := g.Entries(time.Thursday, 21); len(got) != 1 {
		t.Errorf("21:00 entries = %v, want one", got)
	}
	if got := g.Entries(time.Thursday, 22); got != nil {
		t.Errorf("22:00 entries = %v, want nil outside the grid", got)
	}
}

func TestGridMultiOccupancy(t *testing.T) {
	s := New(1)
	s.Append("10101", gridSession(t, "01", Lecture, time.Monday, "09:00", "60"))
	s.Append("20202", gridSession(t, "02", Tutorial, time.Monday, "09:30", "30"))

	g := s.Grid()
	entries := g.Entries(time.Monday, 9)
	if len(entries) != 2 {
		t.Fatalf("09:00 entries = %v, want two", entries)
	}
	if entries[0] != "10101 Lecture A1" || entries[1] != "20202 Tutorial A1" {
		t.Errorf("entries = %v", entries)
	}
}

func TestRenderContainsSessions(t *testing.T) {
	s := New(1)
	s.Append("10101", gridSession(t, "01", Lecture, time.Monday, "09:00", "90"))

	out := s.Render()
	for _, want := range []string{"Monday", "Sunday", "Saturday", "09:00", "21:00", "10101 Lecture A1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}
