package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// Kind classifies a session as a lecture, tutorial or lab. The three kinds
// share identical fields and behavior; the tag only matters for display and
// for the persisted format.
type Kind string

const (
	Lecture  Kind = "Lecture"
	Tutorial Kind = "Tutorial"
	Lab      Kind = "Lab"
)

// Kinds lists the valid kinds in display order.
var Kinds = []Kind{Lecture, Tutorial, Lab}

// ParseKind validates a persisted kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Lecture, Tutorial, Lab:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: invalid session kind %q", ErrParse, s)
}

// ParseDay validates a weekday name (Sunday..Saturday).
func ParseDay(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: invalid day %q", ErrParse, s)
}

// Session is one weekly-recurring meeting of a course: a lecture, tutorial
// or lab section. Sessions are plain values; assignment is a deep copy.
type Session struct {
	GroupID     string
	Kind        Kind
	Day         time.Weekday
	StartHour   int
	StartMinute int
	Duration    int // minutes
	Staff       string
	Room        string
}

// sessionFieldCount is the number of persisted fields per session,
// excluding the course id and kind stored alongside it.
const sessionFieldCount = 6

// ParseSession decodes the 6 persisted session fields
// [groupID, day, HH:MM, duration, staff, room]. The kind is stored at the
// schedule level and supplied by the caller.
func ParseSession(kind Kind, fields []string) (Session, error) {
	if len(fields) != sessionFieldCount {
		return Session{}, fmt.Errorf("%w: session row has %d fields, want %d", ErrParse, len(fields), sessionFieldCount)
	}
	groupID, err := validGroupID(fields[0])
	if err != nil {
		return Session{}, err
	}
	day, err := ParseDay(fields[1])
	if err != nil {
		return Session{}, err
	}
	hour, minute, err := parseClock(fields[2])
	if err != nil {
		return Session{}, err
	}
	duration, err := strconv.Atoi(fields[3])
	if err != nil || duration <= 0 {
		return Session{}, fmt.Errorf("%w: session duration must be a positive number of minutes, got %q", ErrParse, fields[3])
	}
	if fields[4] == "" {
		return Session{}, fmt.Errorf("%w: session staff name cannot be empty", ErrParse)
	}
	if fields[5] == "" {
		return Session{}, fmt.Errorf("%w: session room cannot be empty", ErrParse)
	}
	return Session{
		GroupID:     groupID,
		Kind:        kind,
		Day:         day,
		StartHour:   hour,
		StartMinute: minute,
		Duration:    duration,
		Staff:       fields[4],
		Room:        fields[5],
	}, nil
}

// Fields is the inverse of ParseSession.
func (s Session) Fields() []string {
	return []string{
		s.GroupID,
		s.Day.String(),
		s.StartClock(),
		strconv.Itoa(s.Duration),
		s.Staff,
		s.Room,
	}
}

// StartClock renders the start time as zero-padded HH:MM.
func (s Session) StartClock() string {
	return fmt.Sprintf("%02d:%02d", s.StartHour, s.StartMinute)
}

// startMinutes is the start time as minutes since midnight.
func (s Session) startMinutes() int {
	return s.StartHour*60 + s.StartMinute
}

// endMinutes is the exclusive end of the session in minutes since midnight.
func (s Session) endMinutes() int {
	return s.startMinutes() + s.Duration
}

// Overlaps reports whether two sessions meet on the same day with
// intersecting half-open time ranges [start, start+duration). Sessions on
// different days never overlap.
func (s Session) Overlaps(other Session) bool {
	if s.Day != other.Day {
		return false
	}
	return s.startMinutes() < other.endMinutes() && other.startMinutes() < s.endMinutes()
}

// String formats the session for listings.
func (s Session) String() string {
	return fmt.Sprintf("Group: %s, Day: %-9s, Start: %s, Duration: %d, Staff: %s, Room: %s",
		s.GroupID, s.Day, s.StartClock(), s.Duration, s.Staff, s.Room)
}

// validGroupID checks the catalog group id format: exactly two digits.
func validGroupID(id string) (string, error) {
	if len(id) != 2 {
		return "", fmt.Errorf("%w: group id must be 2 digits, got %q", ErrParse, id)
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: group id must contain only digits, got %q", ErrParse, id)
		}
	}
	return id, nil
}

// parseClock decodes a HH:MM string. The format is fixed width: five
// characters with the colon in the middle.
func parseClock(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, fmt.Errorf("%w: start time must be in HH:MM format, got %q", ErrParse, s)
	}
	hour, err = strconv.Atoi(s[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: start hour out of range in %q", ErrParse, s)
	}
	minute, err = strconv.Atoi(s[3:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: start minute out of range in %q", ErrParse, s)
	}
	return hour, minute, nil
}
