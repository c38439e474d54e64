package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/omerdav/coursereg/internal/schedule"
)

// RunAdmin runs the admin command loop until logout or exit.
func (c *Console) RunAdmin(in io.Reader) Result {
	fmt.Fprintln(c.out, "Enter a command (case insensitive) or type 'Help' for more information.")
	scanner := bufio.NewScanner(in)
	for {
		cmd, args, ok := c.readCommand(scanner)
		if !ok {
			return Exit
		}
		switch cmd {
		case "logout":
			fmt.Fprintln(c.out, "Logged out.")
			return Logout
		case "exit":
			return Exit
		case "help":
			c.adminHelp()
		default:
			c.adminCommand(cmd, args)
		}
		fmt.Fprintln(c.out)
	}
}

func (c *Console) adminCommand(cmd string, args []string) bool {
	if handled, ok := c.sharedCommand(cmd, args); handled {
		return ok
	}
	switch cmd {
	case "addcourse":
		if !c.requireArgs(args, 4, cmd) {
			return false
		}
		points, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			fmt.Fprintf(c.errw, "Error adding course: invalid points %q.\n", args[3])
			return false
		}
		return c.report("adding course", c.catalog.AddCourse(args[0], args[1], args[2], points))
	case "rmcourse":
		if !c.requireArgs(args, 1, cmd) {
			return false
		}
		return c.report("removing course", c.catalog.RemoveCourse(args[0]))
	case "addlecturer":
		if !c.requireArgs(args, 2, cmd) {
			return false
		}
		return c.report("adding lecturer", c.catalog.AddTeacher(args[0], args[1]))
	case "rmlecturer":
		if !c.requireArgs(args, 1, cmd) {
			return false
		}
		return c.report("removing lecturer", c.catalog.RemoveTeacher(args[0]))
	case "addstudent":
		if !c.requireArgs(args, 3, cmd) {
			return false
		}
		return c.report("adding student", c.catalog.AddStudent(args[0], args[1], args[2]))
	case "rmstudent":
		if !c.requireArgs(args, 1, cmd) {
			return false
		}
		return c.report("removing student", c.catalog.RemoveStudent(args[0]))
	case "addlecture":
		return c.addCourseSession(schedule.Lecture, cmd, args)
	case "addtutorial":
		return c.addCourseSession(schedule.Tutorial, cmd, args)
	case "addlab":
		return c.addCourseSession(schedule.Lab, cmd, args)
	case "search":
		if !c.requireArgs(args, 1, cmd) {
			return false
		}
		return c.search(args[0])
	}
	c.unknownCommand(cmd)
	return false
}

// addCourseSession handles AddLecture/AddTutorial/AddLab:
// [course_id] [group_id] [day] [HH:MM] [duration] [lecturer] [classroom].
func (c *Console) addCourseSession(kind schedule.Kind, cmd string, args []string) bool {
	if !c.requireArgs(args, 7, cmd) {
		return false
	}
	sess, err := schedule.ParseSession(kind, args[1:])
	if err != nil {
		return c.report("adding "+string(kind), err)
	}
	return c.report("adding "+string(kind), c.catalog.AddCourseSession(args[0], sess))
}

func (c *Console) search(text string) bool {
	results := c.catalog.Search(text)
	if results.Empty() {
		fmt.Fprintf(c.errw, "No results found for: %s\n", text)
		return false
	}
	if len(results.Courses) > 0 {
		fmt.Fprintln(c.out, "Found in courses:")
		for _, course := range results.Courses {
			fmt.Fprintln(c.out, course)
		}
	}
	if len(results.Teachers) > 0 {
		fmt.Fprintln(c.out, "Found in teachers:")
		for _, teacher := range results.Teachers {
			fmt.Fprintln(c.out, teacher)
		}
	}
	if len(results.Students) > 0 {
		fmt.Fprintln(c.out, "Found in students:")
		for _, student := range results.Students {
			fmt.Fprintln(c.out, student)
		}
	}
	return true
}

// report prints an operation failure and converts it to a boolean outcome.
func (c *Console) report(what string, err error) bool {
	if err != nil {
		fmt.Fprintf(c.errw, "Error %s: %v\n", what, err)
		return false
	}
	return true
}

func (c *Console) adminHelp() {
	c.sharedHelp()
	fmt.Fprintln(c.out, "\nAdmin commands:")
	fmt.Fprintln(c.out, "AddCourse [id] [course_name] [lecturer] [points] - add a course to the records.")
	fmt.Fprintln(c.out, "RmCourse [id] - remove a course from the records.")
	fmt.Fprintln(c.out, "AddLecturer [id] [lecturer_name] - add a lecturer to the records.")
	fmt.Fprintln(c.out, "RmLecturer [id] - remove a lecturer from the records.")
	fmt.Fprintln(c.out, "AddStudent [id] [student_name] [password] - add a student to the records.")
	fmt.Fprintln(c.out, "RmStudent [id] - remove a student from the records.")
	fmt.Fprintln(c.out, "Search [text] - search the records and print the results.")
	fmt.Fprintln(c.out, "Add(Lecture/Tutorial/Lab) [course_id] [group_id] [day] [HH:MM] [duration] [lecturer] [classroom] - add a session to a course.")
}
