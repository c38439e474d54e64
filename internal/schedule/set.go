package schedule

import "fmt"

// RowStore is the flat row persistence consumed by a Set. The concrete CSV
// implementation lives in the store package.
type RowStore interface {
	// ReadRows returns all rows under a key, empty when nothing was
	// persisted yet.
	ReadRows(key string) ([][]string, error)

	// WriteRows replaces everything under a key.
	WriteRows(key string, rows [][]string) error
}

// Set is the full collection of one student's schedules. Schedule ids are
// dense: always exactly 1..len in order, renumbered after every removal.
type Set struct {
	studentID string
	store     RowStore
	schedules []*Schedule
}

// NewSet creates an empty set for a student. Call Load to pull persisted
// schedules in.
func NewSet(studentID string, store RowStore) *Set {
	return &Set{studentID: studentID, store: store}
}

func (m *Set) key() string {
	return m.studentID + "_schedules"
}

// Load replaces the in-memory schedules with the persisted ones. A parse
// failure on any row fails the whole load and leaves the current schedules
// untouched.
func (m *Set) Load() error {
	rows, err := m.store.ReadRows(m.key())
	if err != nil {
		return fmt.Errorf("reading schedules for student %s: %w", m.studentID, err)
	}
	loaded := make([]*Schedule, 0, len(rows))
	for _, row := range rows {
		s, err := Parse(row)
		if err != nil {
			return fmt.Errorf("reading schedules for student %s: %w", m.studentID, err)
		}
		loaded = append(loaded, s)
	}
	m.schedules = loaded
	m.renumber()
	return nil
}

// Save persists every schedule in order, replacing the stored rows.
func (m *Set) Save() error {
	rows := make([][]string, 0, len(m.schedules))
	for _, s := range m.schedules {
		rows = append(rows, s.Row())
	}
	if err := m.store.WriteRows(m.key(), rows); err != nil {
		return fmt.Errorf("writing schedules for student %s: %w", m.studentID, err)
	}
	return nil
}

// Len is the number of schedules in the set.
func (m *Set) Len() int {
	return len(m.schedules)
}

// Schedules returns the schedules in id order.
func (m *Set) Schedules() []*Schedule {
	return m.schedules
}

// Get returns the schedule with the given id. Fails with ErrNoSchedules on
// an empty set and ErrInvalidID outside [1, len].
func (m *Set) Get(id int) (*Schedule, error) {
	if len(m.schedules) == 0 {
		return nil, ErrNoSchedules
	}
	if id < 1 || id > len(m.schedules) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return m.schedules[id-1], nil
}

// Add appends a new empty schedule with the next id.
func (m *Set) Add() *Schedule {
	s := New(len(m.schedules) + 1)
	m.schedules = append(m.schedules, s)
	return s
}

// Remove deletes the schedule with the given id and renumbers the rest, so
// ids stay dense in the original relative order.
func (m *Set) Remove(id int) error {
	if _, err := m.Get(id); err != nil {
		return err
	}
	m.schedules = append(m.schedules[:id-1], m.schedules[id:]...)
	m.renumber()
	return nil
}

// AddCourseSession adds the catalog session (courseID, groupID) to the
// schedule with the given id.
func (m *Set) AddCourseSession(cat Catalog, id int, courseID, groupID string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	return s.AddSession(cat, courseID, groupID)
}

// RemoveCourseSession removes the session (courseID, groupID) from the
// schedule with the given id.
func (m *Set) RemoveCourseSession(id int, courseID, groupID string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	return s.RemoveSession(courseID, groupID)
}

// CourseMatch is one schedule holding sessions of a searched course.
type CourseMatch struct {
	ScheduleID int
	Groups     []KindGroup
}

// Search collects the sessions of a course across every schedule in the
// set. An empty result just means no schedule holds the course.
func (m *Set) Search(courseID string) ([]CourseMatch, error) {
	if len(m.schedules) == 0 {
		return nil, ErrNoSchedules
	}
	var matches []CourseMatch
	for _, s := range m.schedules {
		if groups, ok := s.SessionsByKind(courseID); ok {
			matches = append(matches, CourseMatch{ScheduleID: s.ID, Groups: groups})
		}
	}
	return matches, nil
}

// WeeklySummary aggregates the weekly load of the schedule with the given
// id.
func (m *Set) WeeklySummary(cat Catalog, id int) (Summary, error) {
	s, err := m.Get(id)
	if err != nil {
		return Summary{}, err
	}
	return s.WeeklySummary(cat)
}

// OverlapReport returns the overlapping session pairs of the schedule with
// the given id.
func (m *Set) OverlapReport(id int) ([]OverlapPair, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	return s.OverlappingPairs(), nil
}

func (m *Set) renumber() {
	for i, s := range m.schedules {
		s.ID = i + 1
	}
}
