package schedule

import (
	"errors"
	"reflect"
	"testing"
)

// fakeCatalog is an in-memory Catalog for schedule tests.
type fakeCatalog struct {
	sessions map[string]map[string]Session
	points   map[string]float64
}

func (f *fakeCatalog) ResolveSession(courseID, groupID string) (Session, error) {
	groups, ok := f.sessions[courseID]
	if !ok {
		return Session{}, ErrCourseNotFound
	}
	sess, ok := groups[groupID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeCatalog) CoursePoints(courseID string) (float64, error) {
	points, ok := f.points[courseID]
	if !ok {
		return 0, ErrCourseNotFound
	}
	return points, nil
}

func testCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	lecture, err := ParseSession(Lecture, []string{"01", "Monday", "09:00", "90", "Smith", "A1"})
	if err != nil {
		t.Fatal(err)
	}
	tutorial, err := ParseSession(Tutorial, []string{"02", "Monday", "09:30", "60", "Cohen", "B2"})
	if err != nil {
		t.Fatal(err)
	}
	lab, err := ParseSession(Lab, []string{"03", "Wednesday", "14:00", "120", "Levi", "Lab1"})
	if err != nil {
		t.Fatal(err)
	}
	return &fakeCatalog{
		sessions: map[string]map[string]Session{
			"10101": {"01": lecture, "02": tutorial},
			"20202": {"03": lab},
		},
		points: map[string]float64{"10101": 3.5, "20202": 4},
	}
}

func TestParseScheduleRow(t *testing.T) {
	row := []string{
		"1",
		"10101", "Lecture", "01", "Monday", "09:00", "90", "Smith", "A1",
		"10101", "Tutorial", "02", "Monday", "11:00", "60", "Cohen", "B2",
		"20202", "Lab", "03", "Wednesday", "14:00", "120", "Levi", "Lab1",
	}
	s, err := Parse(row)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.ID != 1 {
		t.Errorf("ID = %d, want 1", s.ID)
	}
	if got := s.Row(); !reflect.DeepEqual(got, row) {
		t.Errorf("Row() = %v, want %v", got, row)
	}
}

func TestParseScheduleErrors(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{"empty row", nil},
		{"bad id", []string{"zero"}},
		{"zero id", []string{"0"}},
		{"truncated group", []string{"1", "10101", "Lecture", "01", "Monday", "09:00", "90", "Smith"}},
		{"bad kind", []string{"1", "10101", "Seminar", "01", "Monday", "09:00", "90", "Smith", "A1"}},
		{"bad session field", []string{"1", "10101", "Lecture", "01", "Monday", "9am00", "90", "Smith", "A1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.row); !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%v) error = %v, want ErrParse", tt.row, err)
			}
		})
	}
}

func TestAddSession(t *testing.T) {
	cat := testCatalog(t)
	s := New(1)

	if err := s.AddSession(cat, "10101", "01"); err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}
	// A second group of the same course is fine.
	if err := s.AddSession(cat, "10101", "02"); err != nil {
		t.Fatalf("AddSession() second group error = %v", err)
	}

	tests := []struct {
		name     string
		courseID string
		groupID  string
		want     error
	}{
		{"unknown course", "99999", "01", ErrCourseNotFound},
		{"unknown group", "10101", "77", ErrSessionNotFound},
		{"duplicate group", "10101", "01", ErrDuplicateSession},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.AddSession(cat, tt.courseID, tt.groupID); !errors.Is(err, tt.want) {
				t.Errorf("AddSession() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAddThenRemoveRestoresRow(t *testing.T) {
	cat := testCatalog(t)
	s := New(1)
	if err := s.AddSession(cat, "10101", "01"); err != nil {
		t.Fatal(err)
	}
	before := s.Row()

	if err := s.AddSession(cat, "20202", "03"); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveSession("20202", "03"); err != nil {
		t.Fatal(err)
	}
	if got := s.Row(); !reflect.DeepEqual(got, before) {
		t.Errorf("Row() after add+remove = %v, want %v", got, before)
	}
}

func TestRemoveSessionErrors(t *testing.T) {
	cat := testCatalog(t)
	s := New(1)
	if err := s.AddSession(cat, "10101", "01"); err != nil {
		t.Fatal(err)
	}

	if err := s.RemoveSession("20202", "03"); !errors.Is(err, ErrCourseNotInSchedule) {
		t.Errorf("RemoveSession(absent course) error = %v, want ErrCourseNotInSchedule", err)
	}
	if err := s.RemoveSession("10101", "77"); !errors.Is(err, ErrSessionNotInSchedule) {
		t.Errorf("RemoveSession(absent group) error = %v, want ErrSessionNotInSchedule", err)
	}
}

func TestRemoveLastSessionDropsCourse(t *testing.T) {
	cat := testCatalog(t)
	s := New(1)
	if err := s.AddSession(cat, "10101", "01"); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveSession("10101", "01"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.SessionsByKind("10101"); ok {
		t.Error("course still present after removing its last session")
	}
	if !s.Empty() {
		t.Error("schedule not empty after removing its only session")
	}
	if got := s.Row(); !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("Row() = %v, want bare id", got)
	}
}

func TestSessionsByKindOrder(t *testing.T) {
	cat := testCatalog(t)
	s := New(1)
	// Insert tutorial before lecture; listing must still come back
	// Lecture first.
	if err := s.AddSession(cat, "10101", "02"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddSession(cat, "10101", "01"); err != nil {
		t.Fatal(err)
	}

	groups, ok := s.SessionsByKind("10101")
	if !ok {
		t.Fatal("SessionsByKind() ok = false")
	}
	if len(groups) != 2 || groups[0].Kind != Lecture || groups[1].Kind != Tutorial {
		t.Errorf("groups = %+v, want Lecture then Tutorial", groups)
	}

	if _, ok := s.SessionsByKind("99999"); ok {
		t.Error("SessionsByKind(absent) ok = true")
	}
}

func TestWeeklySummary(t *testing.T) {
	cat := testCatalog(t)
	s := New(1)

	if _, err := s.WeeklySummary(cat); !errors.Is(err, ErrEmptySchedule) {
		t.Fatalf("WeeklySummary(empty) error = %v, want ErrEmptySchedule", err)
	}

	for _, add := range []struct{ course, group string }{
		{"10101", "01"}, {"10101", "02"}, {"20202", "03"},
	} {
		if err := s.AddSession(cat, add.course, add.group); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := s.WeeklySummary(cat)
	if err != nil {
		t.Fatalf("WeeklySummary() error = %v", err)
	}
	// 90 + 60 + 120 minutes.
	if sum.Hours != 4.5 {
		t.Errorf("Hours = %v, want 4.5", sum.Hours)
	}
	// Points count once per session: 3.5 twice for the two 10101
	// sessions, 4 once.
	if sum.Points != 11 {
		t.Errorf("Points = %v, want 11", sum.Points)
	}
}

func TestOverlappingPairs(t *testing.T) {
	cat := testCatalog(t)
	s := New(1)
	// Lecture Monday 09:00+90 and tutorial Monday 09:30+60 overlap.
	if err := s.AddSession(cat, "10101", "01"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddSession(cat, "10101", "02"); err != nil {
		t.Fatal(err)
	}
	// The Wednesday lab does not.
	if err := s.AddSession(cat, "20202", "03"); err != nil {
		t.Fatal(err)
	}

	pairs := s.OverlappingPairs()
	// Each overlap is reported in both orderings.
	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2", len(pairs))
	}
	if pairs[0].A.GroupID != pairs[1].B.GroupID || pairs[0].B.GroupID != pairs[1].A.GroupID {
		t.Errorf("pairs are not mirror orderings: %+v", pairs)
	}
}

func TestNoOverlapAtBoundary(t *testing.T) {
	s := New(1)
	a, err := ParseSession(Lecture, []string{"01", "Monday", "09:00", "60", "Smith", "A1"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseSession(Tutorial, []string{"02", "Monday", "10:00", "60", "Cohen", "B2"})
	if err != nil {
		t.Fatal(err)
	}
	s.Append("10101", a)
	s.Append("10101", b)
	if pairs := s.OverlappingPairs(); len(pairs) != 0 {
		t.Errorf("pairs = %+v, want none for touching ranges", pairs)
	}
}

func TestClone(t *testing.T) {
	cat := testCatalog(t)
	s := New(3)
	if err := s.AddSession(cat, "10101", "01"); err != nil {
		t.Fatal(err)
	}

	c := s.Clone()
	if !reflect.DeepEqual(c.Row(), s.Row()) {
		t.Fatalf("clone Row() = %v, want %v", c.Row(), s.Row())
	}
	// Mutating the clone must not touch the original.
	if err := c.RemoveSession("10101", "01"); err != nil {
		t.Fatal(err)
	}
	if s.Empty() {
		t.Error("removing from the clone emptied the original")
	}
}
