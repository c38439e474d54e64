package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/omerdav/coursereg/internal/store"
)

// pageSize is how many courses a paged listing prints at a time.
const pageSize = 10

// Result tells the outer loop what a command session ended with.
type Result int

const (
	// Logout ends the session but keeps the program running.
	Logout Result = iota
	// Exit ends the program.
	Exit
)

// Console dispatches interactive commands against the catalog. Commands are
// case-insensitive; every failure is reported to the error writer and the
// loop keeps going.
type Console struct {
	catalog *store.Catalog
	out     io.Writer
	errw    io.Writer

	// courseIndex is the cursor of the paged course listing.
	courseIndex int
}

// New creates a console over the catalog, writing normal output to out and
// errors to errw.
func New(catalog *store.Catalog, out, errw io.Writer) *Console {
	return &Console{catalog: catalog, out: out, errw: errw}
}

// readCommand pulls the next input line and splits it into a lowercase
// command plus its arguments.
func (c *Console) readCommand(scanner *bufio.Scanner) (string, []string, bool) {
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			return "", nil, false
		}
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			fmt.Fprintln(c.errw, "Error: please enter a command.")
			continue
		}
		return strings.ToLower(words[0]), words[1:], true
	}
}

// sharedCommand handles the commands available to every user. The second
// return value reports whether the command was recognized here.
func (c *Console) sharedCommand(cmd string, args []string) (bool, bool) {
	switch cmd {
	case "clear":
		if !c.requireArgs(args, 0, cmd) {
			return true, false
		}
		fmt.Fprint(c.out, "\033[2J\033[1;1H")
		return true, true
	case "printcourse":
		if len(args) == 0 {
			c.courseIndex = 0
			fmt.Fprintln(c.out, "Printing courses:")
			return true, c.printCoursePage()
		}
		if !c.requireArgs(args, 1, cmd) {
			return true, false
		}
		return true, c.printCourse(args[0])
	case "more":
		if !c.requireArgs(args, 0, cmd) {
			return true, false
		}
		if c.courseIndex >= len(c.catalog.Courses()) {
			fmt.Fprintln(c.out, "No more courses to print.")
			c.courseIndex = 0
			return true, true
		}
		return true, c.printCoursePage()
	case "printlecturer":
		if !c.requireArgs(args, 1, cmd) {
			return true, false
		}
		teacher, ok := c.catalog.Teacher(args[0])
		if !ok {
			fmt.Fprintf(c.errw, "Error: teacher with id %s was not found.\n", args[0])
			return true, false
		}
		fmt.Fprintln(c.out, teacher)
		return true, true
	case "printstudent":
		if !c.requireArgs(args, 1, cmd) {
			return true, false
		}
		student, ok := c.catalog.Student(args[0])
		if !ok {
			fmt.Fprintf(c.errw, "Error: student with id %s was not found.\n", args[0])
			return true, false
		}
		fmt.Fprintln(c.out, student)
		return true, true
	case "printallcourses":
		if !c.requireArgs(args, 0, cmd) {
			return true, false
		}
		for _, course := range c.catalog.Courses() {
			fmt.Fprintln(c.out, course)
		}
		return true, true
	case "printalllecturers":
		if !c.requireArgs(args, 0, cmd) {
			return true, false
		}
		for _, teacher := range c.catalog.Teachers() {
			fmt.Fprintln(c.out, teacher)
		}
		return true, true
	case "printallstudents":
		if !c.requireArgs(args, 0, cmd) {
			return true, false
		}
		for _, student := range c.catalog.Students() {
			fmt.Fprintln(c.out, student)
		}
		return true, true
	}
	return false, false
}

func (c *Console) printCourse(id string) bool {
	course, ok := c.catalog.Course(id)
	if !ok {
		fmt.Fprintf(c.errw, "Error: course with id %s was not found.\n", id)
		return false
	}
	fmt.Fprintln(c.out, course)
	return true
}

// printCoursePage prints the next page of the course listing and advances
// the cursor.
func (c *Console) printCoursePage() bool {
	courses := c.catalog.Courses()
	end := c.courseIndex + pageSize
	if end > len(courses) {
		end = len(courses)
	}
	for ; c.courseIndex < end; c.courseIndex++ {
		fmt.Fprintln(c.out, courses[c.courseIndex])
	}
	return true
}

func (c *Console) sharedHelp() {
	fmt.Fprintln(c.out, "Available commands:")
	fmt.Fprintln(c.out, "Help - prints this menu.")
	fmt.Fprintln(c.out, "Clear - clear the screen.")
	fmt.Fprintln(c.out, "Logout - logout from the system.")
	fmt.Fprintln(c.out, "Exit - exit the system.")
	fmt.Fprintln(c.out, "Print(Course/Lecturer/Student) [id] - print the record with the given id.")
	fmt.Fprintln(c.out, "PrintAll(Courses/Lecturers/Students) - print all records of one type.")
	fmt.Fprintln(c.out, "PrintCourse - print the first 10 courses.")
	fmt.Fprintln(c.out, "More - print 10 more courses. (if available)")
}

// requireArgs reports an argument count mismatch.
func (c *Console) requireArgs(args []string, want int, cmd string) bool {
	if len(args) != want {
		fmt.Fprintf(c.errw, "Error: invalid number of arguments for %s command.\n", cmd)
		return false
	}
	return true
}

func (c *Console) unknownCommand(cmd string) {
	fmt.Fprintf(c.errw, "Error: command not found: %s\n", cmd)
}
