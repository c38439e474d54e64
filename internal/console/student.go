package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/omerdav/coursereg/internal/models"
	"github.com/omerdav/coursereg/internal/schedule"
)

// StudentSession is one authenticated student's console: the shared catalog
// commands plus the schedule menu over the student's own schedule set.
type StudentSession struct {
	*Console
	student *models.Student
	set     *schedule.Set

	// scheduleMenu tracks whether the session is inside the schedule
	// submenu.
	scheduleMenu bool
}

// NewStudentSession builds the console for an authenticated student and
// loads the persisted schedules. A load failure is reported and the session
// starts with an empty set.
func NewStudentSession(c *Console, student *models.Student, rows schedule.RowStore) *StudentSession {
	s := &StudentSession{
		Console: c,
		student: student,
		set:     schedule.NewSet(student.ID, rows),
	}
	if err := s.set.Load(); err != nil {
		fmt.Fprintf(c.errw, "Error reading schedules: %v\n", err)
	}
	return s
}

// Run drives the student command loop until logout or exit, persisting the
// schedule set on the way out. A save failure is reported and swallowed;
// unsaved changes are lost.
func (s *StudentSession) Run(in io.Reader) Result {
	fmt.Fprintln(s.out, "Enter a command (case insensitive) or type 'Help' for more information.")
	scanner := bufio.NewScanner(in)
	result := Exit
	for {
		cmd, args, ok := s.readCommand(scanner)
		if !ok {
			break
		}
		if cmd == "logout" || cmd == "exit" {
			if cmd == "logout" {
				fmt.Fprintln(s.out, "Logged out.")
				result = Logout
			}
			break
		}
		if s.scheduleMenu {
			s.scheduleCommand(cmd, args)
		} else {
			s.studentCommand(cmd, args)
		}
		fmt.Fprintln(s.out)
	}
	if err := s.set.Save(); err != nil {
		fmt.Fprintf(s.errw, "Error writing schedules: %v\n", err)
	}
	return result
}

func (s *StudentSession) studentCommand(cmd string, args []string) bool {
	if handled, ok := s.sharedCommand(cmd, args); handled {
		return ok
	}
	switch cmd {
	case "help":
		s.studentHelp()
		return true
	case "schedule":
		if !s.requireArgs(args, 0, cmd) {
			return false
		}
		s.scheduleMenu = true
		s.scheduleHelp()
		return true
	}
	s.unknownCommand(cmd)
	return false
}

func (s *StudentSession) scheduleCommand(cmd string, args []string) bool {
	switch cmd {
	case "help":
		s.scheduleHelp()
		return true
	case "back":
		if !s.requireArgs(args, 0, cmd) {
			return false
		}
		s.scheduleMenu = false
		return true
	case "print":
		if !s.requireArgs(args, 1, cmd) {
			return false
		}
		id, ok := s.scheduleID(args[0])
		if !ok {
			return false
		}
		sched, err := s.set.Get(id)
		if !s.report("printing schedule", err) {
			return false
		}
		fmt.Fprintln(s.out, sched.Render())
		return true
	case "printall":
		if !s.requireArgs(args, 0, cmd) {
			return false
		}
		if s.set.Len() == 0 {
			fmt.Fprintln(s.errw, "Error printing schedules: no schedules available.")
			return false
		}
		for _, sched := range s.set.Schedules() {
			fmt.Fprintf(s.out, "Schedule id: %d\n", sched.ID)
			fmt.Fprintln(s.out, sched.Render())
		}
		return true
	case "addschedule":
		if !s.requireArgs(args, 0, cmd) {
			return false
		}
		sched := s.set.Add()
		fmt.Fprintf(s.out, "Added schedule with id: %d\n", sched.ID)
		return true
	case "rmschedule":
		if !s.requireArgs(args, 1, cmd) {
			return false
		}
		id, ok := s.scheduleID(args[0])
		if !ok {
			return false
		}
		return s.report("removing schedule", s.set.Remove(id))
	case "add":
		if !s.requireArgs(args, 3, cmd) {
			return false
		}
		id, ok := s.scheduleID(args[0])
		if !ok {
			return false
		}
		return s.report("adding course to schedule", s.set.AddCourseSession(s.catalog, id, args[1], args[2]))
	case "rm":
		if !s.requireArgs(args, 3, cmd) {
			return false
		}
		id, ok := s.scheduleID(args[0])
		if !ok {
			return false
		}
		return s.report("removing course from schedule", s.set.RemoveCourseSession(id, args[1], args[2]))
	case "search":
		if !s.requireArgs(args, 1, cmd) {
			return false
		}
		return s.searchSchedules(args[0])
	case "printsummary":
		if !s.requireArgs(args, 1, cmd) {
			return false
		}
		id, ok := s.scheduleID(args[0])
		if !ok {
			return false
		}
		summary, err := s.set.WeeklySummary(s.catalog, id)
		if !s.report("printing weekly summary", err) {
			return false
		}
		fmt.Fprintf(s.out, "Total weekly hours: %g\n", summary.Hours)
		fmt.Fprintf(s.out, "Total points: %g\n", summary.Points)
		return true
	case "checkoverlap":
		if !s.requireArgs(args, 1, cmd) {
			return false
		}
		id, ok := s.scheduleID(args[0])
		if !ok {
			return false
		}
		pairs, err := s.set.OverlapReport(id)
		if !s.report("checking overlapping courses", err) {
			return false
		}
		if len(pairs) == 0 {
			fmt.Fprintln(s.out, "No overlapping courses found.")
			return true
		}
		fmt.Fprintln(s.out, "Overlapping courses:")
		for _, pair := range pairs {
			fmt.Fprintf(s.out, "Course 1: %s %s\n", pair.CourseA, pair.A)
			fmt.Fprintf(s.out, "Course 2: %s %s\n", pair.CourseB, pair.B)
		}
		return true
	}
	s.unknownCommand(cmd)
	return false
}

// searchSchedules prints the sessions of a course across every schedule,
// grouped by kind.
func (s *StudentSession) searchSchedules(courseID string) bool {
	matches, err := s.set.Search(courseID)
	if !s.report("searching schedules", err) {
		return false
	}
	if len(matches) == 0 {
		fmt.Fprintf(s.errw, "No results found for course id: %s in all schedules.\n", courseID)
		return false
	}
	for _, match := range matches {
		fmt.Fprintf(s.out, "Schedule with id: %d\n", match.ScheduleID)
		if len(match.Groups) == 0 {
			fmt.Fprintf(s.errw, "No sessions found for course with id: %s\n", courseID)
			continue
		}
		for _, group := range match.Groups {
			fmt.Fprintf(s.out, "Found in %ss:\n", group.Kind)
			for _, sess := range group.Sessions {
				fmt.Fprintln(s.out, sess)
			}
		}
	}
	return true
}

// scheduleID parses a schedule id argument.
func (s *StudentSession) scheduleID(arg string) (int, bool) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(s.errw, "Error: invalid schedule id %q.\n", arg)
		return 0, false
	}
	return id, true
}

func (s *StudentSession) studentHelp() {
	s.sharedHelp()
	fmt.Fprintln(s.out, "\nStudent commands:")
	fmt.Fprintln(s.out, "Help - print the student menu.")
	fmt.Fprintln(s.out, "Schedule - go to the schedule menu.")
}

func (s *StudentSession) scheduleHelp() {
	fmt.Fprintln(s.out, "Schedule menu:")
	fmt.Fprintln(s.out, "Help - print the schedule menu.")
	fmt.Fprintln(s.out, "Print [schedule_id] - print the schedule.")
	fmt.Fprintln(s.out, "PrintAll - print all schedules.")
	fmt.Fprintln(s.out, "AddSchedule - add a schedule.")
	fmt.Fprintln(s.out, "RmSchedule [schedule_id] - remove a schedule.")
	fmt.Fprintln(s.out, "Add [schedule_id] [course_id] [group_id] - add a course session to a schedule.")
	fmt.Fprintln(s.out, "Rm [schedule_id] [course_id] [group_id] - remove a course session from a schedule.")
	fmt.Fprintln(s.out, "Search [course_id] - search and print course sessions across schedules.")
	fmt.Fprintln(s.out, "PrintSummary [schedule_id] - print the weekly summary of the schedule.")
	fmt.Fprintln(s.out, "CheckOverlap [schedule_id] - print the overlapping sessions of the schedule.")
	fmt.Fprintln(s.out, "Back - go back to the main menu.")
}
