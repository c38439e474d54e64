package schedule

import "errors"

// Error taxonomy for schedule operations. Every failure leaves the
// in-memory structures exactly as they were before the call; callers report
// the error and keep going.
var (
	// ErrParse marks a malformed persisted row or field.
	ErrParse = errors.New("parse error")

	// ErrCourseNotFound and ErrSessionNotFound come back from catalog
	// resolution when adding a session.
	ErrCourseNotFound  = errors.New("course not found")
	ErrSessionNotFound = errors.New("session not found")

	// ErrDuplicateSession means the schedule already holds a session with
	// that group id under the course.
	ErrDuplicateSession = errors.New("session already in schedule")

	// ErrCourseNotInSchedule and ErrSessionNotInSchedule come back from
	// removals targeting entries the schedule does not hold.
	ErrCourseNotInSchedule  = errors.New("course not in schedule")
	ErrSessionNotInSchedule = errors.New("session not in schedule")

	// ErrEmptySchedule means the operation needs at least one course.
	ErrEmptySchedule = errors.New("no courses in the schedule")

	// ErrNoSchedules and ErrInvalidID guard schedule lookups in a set.
	ErrNoSchedules = errors.New("no schedules available")
	ErrInvalidID   = errors.New("schedule id out of range")
)
