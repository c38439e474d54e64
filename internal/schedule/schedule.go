package schedule

import (
	"fmt"
	"strconv"
)

// Catalog resolves course data owned outside the schedule core. The
// concrete implementation lives in the store package; operations that need
// resolution take an explicit Catalog instead of reaching for shared state.
type Catalog interface {
	// ResolveSession returns the session template registered for
	// (courseID, groupID). Fails with ErrCourseNotFound or
	// ErrSessionNotFound.
	ResolveSession(courseID, groupID string) (Session, error)

	// CoursePoints returns the credit points of a course, or
	// ErrCourseNotFound.
	CoursePoints(courseID string) (float64, error)
}

// groupFieldCount is the persisted field count per session entry in a
// schedule row: course id, kind, then the 6 session fields.
const groupFieldCount = 2 + sessionFieldCount

// Schedule is one weekly timetable: sessions grouped by course id. Course
// keys keep their insertion order so serialization is deterministic and
// round-trips through the row format.
type Schedule struct {
	ID      int
	courses map[string][]Session
	order   []string
}

// New creates an empty schedule with the given id.
func New(id int) *Schedule {
	return &Schedule{ID: id, courses: make(map[string][]Session)}
}

// Parse decodes a persisted schedule row: the id followed by repeating
// 8-field groups [courseID, kind, groupID, day, HH:MM, duration, staff,
// room].
func Parse(row []string) (*Schedule, error) {
	if len(row) == 0 {
		return nil, fmt.Errorf("%w: empty schedule row", ErrParse)
	}
	id, err := strconv.Atoi(row[0])
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: schedule id must be a positive number, got %q", ErrParse, row[0])
	}
	rest := row[1:]
	if len(rest)%groupFieldCount != 0 {
		return nil, fmt.Errorf("%w: schedule row has %d session fields, want a multiple of %d", ErrParse, len(rest), groupFieldCount)
	}
	s := New(id)
	for i := 0; i < len(rest); i += groupFieldCount {
		courseID := rest[i]
		kind, err := ParseKind(rest[i+1])
		if err != nil {
			return nil, err
		}
		sess, err := ParseSession(kind, rest[i+2:i+groupFieldCount])
		if err != nil {
			return nil, err
		}
		s.Append(courseID, sess)
	}
	return s, nil
}

// Row is the inverse of Parse. Courses appear in insertion order, sessions
// in append order.
func (s *Schedule) Row() []string {
	row := []string{strconv.Itoa(s.ID)}
	for _, courseID := range s.order {
		for _, sess := range s.courses[courseID] {
			row = append(row, courseID, string(sess.Kind))
			row = append(row, sess.Fields()...)
		}
	}
	return row
}

// Append adds a session under a course with no uniqueness check. It is the
// restore path for parsing and cloning, where the source is already valid.
func (s *Schedule) Append(courseID string, sess Session) {
	if _, ok := s.courses[courseID]; !ok {
		s.order = append(s.order, courseID)
	}
	s.courses[courseID] = append(s.courses[courseID], sess)
}

// AddSession resolves (courseID, groupID) through the catalog and appends a
// copy of the registered session. Validation happens before any mutation.
func (s *Schedule) AddSession(cat Catalog, courseID, groupID string) error {
	sess, err := cat.ResolveSession(courseID, groupID)
	if err != nil {
		return err
	}
	if s.contains(courseID, groupID) {
		return fmt.Errorf("%w: group %s of course %s", ErrDuplicateSession, groupID, courseID)
	}
	s.Append(courseID, sess)
	return nil
}

// RemoveSession removes the session with the given group id from a course.
// Removing the last session of a course drops the course entry entirely.
func (s *Schedule) RemoveSession(courseID, groupID string) error {
	sessions, ok := s.courses[courseID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCourseNotInSchedule, courseID)
	}
	for i, sess := range sessions {
		if sess.GroupID != groupID {
			continue
		}
		sessions = append(sessions[:i], sessions[i+1:]...)
		if len(sessions) == 0 {
			delete(s.courses, courseID)
			s.dropOrder(courseID)
		} else {
			s.courses[courseID] = sessions
		}
		return nil
	}
	return fmt.Errorf("%w: group %s of course %s", ErrSessionNotInSchedule, groupID, courseID)
}

// contains reports whether a session with the group id exists under the
// course.
func (s *Schedule) contains(courseID, groupID string) bool {
	for _, sess := range s.courses[courseID] {
		if sess.GroupID == groupID {
			return true
		}
	}
	return false
}

func (s *Schedule) dropOrder(courseID string) {
	for i, id := range s.order {
		if id == courseID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Empty reports whether the schedule holds no courses.
func (s *Schedule) Empty() bool {
	return len(s.courses) == 0
}

// KindGroup is the sessions of one kind under a course, for listings.
type KindGroup struct {
	Kind     Kind
	Sessions []Session
}

// SessionsByKind returns the sessions of a course grouped and ordered
// Lecture, Tutorial, Lab. The second return value distinguishes a course
// that is not in the schedule (false) from one that is present, even with
// no sessions of some kind.
func (s *Schedule) SessionsByKind(courseID string) ([]KindGroup, bool) {
	sessions, ok := s.courses[courseID]
	if !ok {
		return nil, false
	}
	var groups []KindGroup
	for _, kind := range Kinds {
		var matched []Session
		for _, sess := range sessions {
			if sess.Kind == kind {
				matched = append(matched, sess)
			}
		}
		if len(matched) > 0 {
			groups = append(groups, KindGroup{Kind: kind, Sessions: matched})
		}
	}
	return groups, true
}

// Summary aggregates the weekly load of a schedule.
type Summary struct {
	Hours  float64
	Points float64
}

// WeeklySummary sums hours and credit points over every session. A course
// contributes its point value once per attached session.
func (s *Schedule) WeeklySummary(cat Catalog) (Summary, error) {
	if s.Empty() {
		return Summary{}, ErrEmptySchedule
	}
	var sum Summary
	for _, courseID := range s.order {
		for _, sess := range s.courses[courseID] {
			sum.Hours += float64(sess.Duration) / 60.0
			points, err := cat.CoursePoints(courseID)
			if err != nil {
				return Summary{}, err
			}
			sum.Points += points
		}
	}
	return sum, nil
}

// OverlapPair is one ordered pair of sessions that meet at the same time.
type OverlapPair struct {
	CourseA, CourseB string
	A, B             Session
}

// OverlappingPairs returns every ordered pair of distinct sessions that
// share a day and intersect in time, including two sessions of the same
// course. Each overlap appears in both orderings.
func (s *Schedule) OverlappingPairs() []OverlapPair {
	type entry struct {
		courseID string
		sess     Session
	}
	var all []entry
	for _, courseID := range s.order {
		for _, sess := range s.courses[courseID] {
			all = append(all, entry{courseID, sess})
		}
	}
	var pairs []OverlapPair
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			if a.sess.Overlaps(b.sess) {
				pairs = append(pairs, OverlapPair{
					CourseA: a.courseID, CourseB: b.courseID,
					A: a.sess, B: b.sess,
				})
			}
		}
	}
	return pairs
}

// Clone deep-copies the schedule. No session is shared between the copy and
// the original.
func (s *Schedule) Clone() *Schedule {
	c := New(s.ID)
	for _, courseID := range s.order {
		for _, sess := range s.courses[courseID] {
			c.Append(courseID, sess)
		}
	}
	return c
}
