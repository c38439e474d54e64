package models

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/omerdav/coursereg/internal/schedule"
)

// ErrValidation marks an entity attribute that failed its format rules.
var ErrValidation = errors.New("validation error")

// Course is a catalog course record with its registered sessions keyed by
// group id.
type Course struct {
	ID       string
	Name     string
	Lecturer string
	Points   float64

	sessions map[string]schedule.Session
	order    []string
}

// NewCourse validates the course attributes and builds a course with no
// sessions.
func NewCourse(id, name, lecturer string, points float64) (*Course, error) {
	if err := ValidCourseID(id); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: course name cannot be empty", ErrValidation)
	}
	if lecturer == "" {
		return nil, fmt.Errorf("%w: course lecturer cannot be empty", ErrValidation)
	}
	if err := validPoints(points); err != nil {
		return nil, err
	}
	return &Course{
		ID:       id,
		Name:     name,
		Lecturer: lecturer,
		Points:   points,
		sessions: make(map[string]schedule.Session),
	}, nil
}

// ValidCourseID checks the course id format: exactly five digits.
func ValidCourseID(id string) error {
	if len(id) != 5 {
		return fmt.Errorf("%w: course id must be 5 digits, got %q", ErrValidation, id)
	}
	return digitsOnly(id, "course id")
}

// validPoints accepts positive point values in steps of half a point.
func validPoints(points float64) error {
	if points <= 0 {
		return fmt.Errorf("%w: course points must be positive", ErrValidation)
	}
	tenths := points * 10
	if tenths != math.Trunc(tenths) || int(tenths)%5 != 0 {
		return fmt.Errorf("%w: course points must be in steps of 0.5", ErrValidation)
	}
	return nil
}

// AddSession registers a session under the course. Group ids are unique
// within a course across all kinds.
func (c *Course) AddSession(sess schedule.Session) error {
	if _, ok := c.sessions[sess.GroupID]; ok {
		return fmt.Errorf("%w: course %s already has group %s", ErrValidation, c.ID, sess.GroupID)
	}
	c.sessions[sess.GroupID] = sess
	c.order = append(c.order, sess.GroupID)
	return nil
}

// RemoveSession drops the session with the given group id.
func (c *Course) RemoveSession(groupID string) error {
	if _, ok := c.sessions[groupID]; !ok {
		return fmt.Errorf("course %s has no group %s", c.ID, groupID)
	}
	delete(c.sessions, groupID)
	for i, id := range c.order {
		if id == groupID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Session looks up a registered session by group id.
func (c *Course) Session(groupID string) (schedule.Session, bool) {
	sess, ok := c.sessions[groupID]
	return sess, ok
}

// Sessions returns the registered sessions in registration order.
func (c *Course) Sessions() []schedule.Session {
	out := make([]schedule.Session, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.sessions[id])
	}
	return out
}

// SessionsOfKind returns the registered sessions of one kind in
// registration order.
func (c *Course) SessionsOfKind(kind schedule.Kind) []schedule.Session {
	var out []schedule.Session
	for _, id := range c.order {
		if c.sessions[id].Kind == kind {
			out = append(out, c.sessions[id])
		}
	}
	return out
}

// Search reports whether any course field or session field contains the
// text.
func (c *Course) Search(text string) bool {
	fields := []string{c.ID, c.Name, c.Lecturer, fmt.Sprintf("%.1f", c.Points)}
	for _, f := range fields {
		if strings.Contains(f, text) {
			return true
		}
	}
	for _, sess := range c.Sessions() {
		for _, f := range sess.Fields() {
			if strings.Contains(f, text) {
				return true
			}
		}
	}
	return false
}

// String formats the course and its sessions grouped by kind.
func (c *Course) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Course: ID: %s, Name: %s, Lecturer: %s, Points: %.1f", c.ID, c.Name, c.Lecturer, c.Points)
	for _, kind := range schedule.Kinds {
		sessions := c.SessionsOfKind(kind)
		if len(sessions) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%ss:", kind)
		for _, sess := range sessions {
			fmt.Fprintf(&b, "\n%s", sess)
		}
	}
	return b.String()
}

// digitsOnly rejects ids with non-digit characters.
func digitsOnly(id, what string) error {
	for _, c := range id {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: %s must contain only digits, got %q", ErrValidation, what, id)
		}
	}
	return nil
}
