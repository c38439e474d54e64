package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/omerdav/coursereg/internal/models"
	"github.com/omerdav/coursereg/internal/schedule"
)

// Catalog errors. Schedule-side resolution failures use the schedule
// package's taxonomy so callers match one set of sentinels.
var (
	ErrNotFound = errors.New("record not found")
	ErrExists   = errors.New("record already exists")
)

const (
	coursesFile  = "Courses.csv"
	teachersFile = "Teachers.csv"
	studentsFile = "Students.csv"
)

// sessionFiles maps a session kind to its per-course file suffix.
var sessionFiles = map[schedule.Kind]string{
	schedule.Lecture:  "_lectures.csv",
	schedule.Tutorial: "_tutorials.csv",
	schedule.Lab:      "_labs.csv",
}

type courseRecord struct {
	ID       string  `csv:"course_id"`
	Name     string  `csv:"course_name"`
	Lecturer string  `csv:"lecturer"`
	Points   float64 `csv:"points"`
}

type teacherRecord struct {
	ID   string `csv:"teacher_id"`
	Name string `csv:"teacher_name"`
}

type studentRecord struct {
	ID       string `csv:"student_id"`
	Name     string `csv:"student_name"`
	Password string `csv:"password"`
}

type sessionRecord struct {
	GroupID  string `csv:"group_id"`
	Day      string `csv:"day"`
	Start    string `csv:"start_time"`
	Duration string `csv:"duration"`
	Staff    string `csv:"staff"`
	Room     string `csv:"classroom"`
}

// Catalog owns the course, teacher and student records, loaded from CSV
// files at startup and written back on Save. Record ids are unique across
// all three record types. File order is preserved across load/save.
type Catalog struct {
	dir string

	courses  map[string]*models.Course
	teachers map[string]*models.Teacher
	students map[string]*models.Student

	courseOrder  []string
	teacherOrder []string
	studentOrder []string
}

// Open loads the catalog files under dir, creating missing ones empty.
func Open(dir string) (*Catalog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	c := &Catalog{
		dir:      dir,
		courses:  make(map[string]*models.Course),
		teachers: make(map[string]*models.Teacher),
		students: make(map[string]*models.Student),
	}
	if err := c.loadCourses(); err != nil {
		return nil, err
	}
	if err := c.loadTeachers(); err != nil {
		return nil, err
	}
	if err := c.loadStudents(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) loadCourses() error {
	var records []*courseRecord
	if err := readCSV(filepath.Join(c.dir, coursesFile), &records); err != nil {
		return err
	}
	for _, rec := range records {
		course, err := models.NewCourse(rec.ID, rec.Name, rec.Lecturer, rec.Points)
		if err != nil {
			return fmt.Errorf("loading %s: %w", coursesFile, err)
		}
		if err := c.loadSessions(course); err != nil {
			return err
		}
		if err := c.register(course.ID); err != nil {
			return fmt.Errorf("loading %s: %w", coursesFile, err)
		}
		c.courses[course.ID] = course
		c.courseOrder = append(c.courseOrder, course.ID)
	}
	return nil
}

func (c *Catalog) loadSessions(course *models.Course) error {
	for _, kind := range schedule.Kinds {
		name := course.ID + sessionFiles[kind]
		var records []*sessionRecord
		if err := readCSV(filepath.Join(c.dir, name), &records); err != nil {
			return err
		}
		for _, rec := range records {
			sess, err := schedule.ParseSession(kind, []string{
				rec.GroupID, rec.Day, rec.Start, rec.Duration, rec.Staff, rec.Room,
			})
			if err != nil {
				return fmt.Errorf("loading %s: %w", name, err)
			}
			if err := course.AddSession(sess); err != nil {
				return fmt.Errorf("loading %s: %w", name, err)
			}
		}
	}
	return nil
}

func (c *Catalog) loadTeachers() error {
	var records []*teacherRecord
	if err := readCSV(filepath.Join(c.dir, teachersFile), &records); err != nil {
		return err
	}
	for _, rec := range records {
		teacher, err := models.NewTeacher(rec.ID, rec.Name)
		if err != nil {
			return fmt.Errorf("loading %s: %w", teachersFile, err)
		}
		if err := c.register(teacher.ID); err != nil {
			return fmt.Errorf("loading %s: %w", teachersFile, err)
		}
		c.teachers[teacher.ID] = teacher
		c.teacherOrder = append(c.teacherOrder, teacher.ID)
	}
	return nil
}

func (c *Catalog) loadStudents() error {
	var records []*studentRecord
	if err := readCSV(filepath.Join(c.dir, studentsFile), &records); err != nil {
		return err
	}
	for _, rec := range records {
		student, err := models.NewStudent(rec.ID, rec.Name, rec.Password)
		if err != nil {
			return fmt.Errorf("loading %s: %w", studentsFile, err)
		}
		if err := c.register(student.ID); err != nil {
			return fmt.Errorf("loading %s: %w", studentsFile, err)
		}
		c.students[student.ID] = student
		c.studentOrder = append(c.studentOrder, student.ID)
	}
	return nil
}

// register enforces id uniqueness across all record types.
func (c *Catalog) register(id string) error {
	if c.exists(id) {
		return fmt.Errorf("%w: id %s", ErrExists, id)
	}
	return nil
}

func (c *Catalog) exists(id string) bool {
	if _, ok := c.courses[id]; ok {
		return true
	}
	if _, ok := c.teachers[id]; ok {
		return true
	}
	_, ok := c.students[id]
	return ok
}

// Save writes every record file back, whole-file overwrite.
func (c *Catalog) Save() error {
	courseRecords := make([]*courseRecord, 0, len(c.courseOrder))
	for _, id := range c.courseOrder {
		course := c.courses[id]
		courseRecords = append(courseRecords, &courseRecord{
			ID: course.ID, Name: course.Name, Lecturer: course.Lecturer, Points: course.Points,
		})
		if err := c.saveSessions(course); err != nil {
			return err
		}
	}
	if err := writeCSV(filepath.Join(c.dir, coursesFile), &courseRecords); err != nil {
		return err
	}

	teacherRecords := make([]*teacherRecord, 0, len(c.teacherOrder))
	for _, id := range c.teacherOrder {
		t := c.teachers[id]
		teacherRecords = append(teacherRecords, &teacherRecord{ID: t.ID, Name: t.Name})
	}
	if err := writeCSV(filepath.Join(c.dir, teachersFile), &teacherRecords); err != nil {
		return err
	}

	studentRecords := make([]*studentRecord, 0, len(c.studentOrder))
	for _, id := range c.studentOrder {
		s := c.students[id]
		studentRecords = append(studentRecords, &studentRecord{ID: s.ID, Name: s.Name, Password: s.Password})
	}
	return writeCSV(filepath.Join(c.dir, studentsFile), &studentRecords)
}

func (c *Catalog) saveSessions(course *models.Course) error {
	for _, kind := range schedule.Kinds {
		sessions := course.SessionsOfKind(kind)
		records := make([]*sessionRecord, 0, len(sessions))
		for _, sess := range sessions {
			fields := sess.Fields()
			records = append(records, &sessionRecord{
				GroupID: fields[0], Day: fields[1], Start: fields[2],
				Duration: fields[3], Staff: fields[4], Room: fields[5],
			})
		}
		if err := writeCSV(filepath.Join(c.dir, course.ID+sessionFiles[kind]), &records); err != nil {
			return err
		}
	}
	return nil
}

// AddCourse validates and registers a new course.
func (c *Catalog) AddCourse(id, name, lecturer string, points float64) error {
	course, err := models.NewCourse(id, name, lecturer, points)
	if err != nil {
		return err
	}
	if err := c.register(id); err != nil {
		return err
	}
	c.courses[id] = course
	c.courseOrder = append(c.courseOrder, id)
	return nil
}

// RemoveCourse drops a course and deletes its session files.
func (c *Catalog) RemoveCourse(id string) error {
	if _, ok := c.courses[id]; !ok {
		return fmt.Errorf("%w: course %s", ErrNotFound, id)
	}
	delete(c.courses, id)
	c.courseOrder = dropID(c.courseOrder, id)
	for _, suffix := range sessionFiles {
		// Stale session files would come back as ghost records on the
		// next load.
		os.Remove(filepath.Join(c.dir, id+suffix))
	}
	return nil
}

// AddTeacher validates and registers a new teacher.
func (c *Catalog) AddTeacher(id, name string) error {
	teacher, err := models.NewTeacher(id, name)
	if err != nil {
		return err
	}
	if err := c.register(id); err != nil {
		return err
	}
	c.teachers[id] = teacher
	c.teacherOrder = append(c.teacherOrder, id)
	return nil
}

// RemoveTeacher drops a teacher record.
func (c *Catalog) RemoveTeacher(id string) error {
	if _, ok := c.teachers[id]; !ok {
		return fmt.Errorf("%w: teacher %s", ErrNotFound, id)
	}
	delete(c.teachers, id)
	c.teacherOrder = dropID(c.teacherOrder, id)
	return nil
}

// AddStudent validates and registers a new student.
func (c *Catalog) AddStudent(id, name, password string) error {
	student, err := models.NewStudent(id, name, password)
	if err != nil {
		return err
	}
	if err := c.register(id); err != nil {
		return err
	}
	c.students[id] = student
	c.studentOrder = append(c.studentOrder, id)
	return nil
}

// RemoveStudent drops a student record.
func (c *Catalog) RemoveStudent(id string) error {
	if _, ok := c.students[id]; !ok {
		return fmt.Errorf("%w: student %s", ErrNotFound, id)
	}
	delete(c.students, id)
	c.studentOrder = dropID(c.studentOrder, id)
	return nil
}

// AddCourseSession registers a session template under a course.
func (c *Catalog) AddCourseSession(courseID string, sess schedule.Session) error {
	course, ok := c.courses[courseID]
	if !ok {
		return fmt.Errorf("%w: course %s", ErrNotFound, courseID)
	}
	return course.AddSession(sess)
}

// Course looks up a course by id.
func (c *Catalog) Course(id string) (*models.Course, bool) {
	course, ok := c.courses[id]
	return course, ok
}

// Teacher looks up a teacher by id.
func (c *Catalog) Teacher(id string) (*models.Teacher, bool) {
	teacher, ok := c.teachers[id]
	return teacher, ok
}

// Student looks up a student by id.
func (c *Catalog) Student(id string) (*models.Student, bool) {
	student, ok := c.students[id]
	return student, ok
}

// Courses returns the courses in file order.
func (c *Catalog) Courses() []*models.Course {
	out := make([]*models.Course, 0, len(c.courseOrder))
	for _, id := range c.courseOrder {
		out = append(out, c.courses[id])
	}
	return out
}

// Teachers returns the teachers in file order.
func (c *Catalog) Teachers() []*models.Teacher {
	out := make([]*models.Teacher, 0, len(c.teacherOrder))
	for _, id := range c.teacherOrder {
		out = append(out, c.teachers[id])
	}
	return out
}

// Students returns the students in file order.
func (c *Catalog) Students() []*models.Student {
	out := make([]*models.Student, 0, len(c.studentOrder))
	for _, id := range c.studentOrder {
		out = append(out, c.students[id])
	}
	return out
}

// ResolveSession implements the schedule package's Catalog interface: it
// returns the session template registered for (courseID, groupID).
func (c *Catalog) ResolveSession(courseID, groupID string) (schedule.Session, error) {
	course, ok := c.courses[courseID]
	if !ok {
		return schedule.Session{}, fmt.Errorf("%w: %s", schedule.ErrCourseNotFound, courseID)
	}
	sess, ok := course.Session(groupID)
	if !ok {
		return schedule.Session{}, fmt.Errorf("%w: group %s of course %s", schedule.ErrSessionNotFound, groupID, courseID)
	}
	return sess, nil
}

// CoursePoints implements the schedule package's Catalog interface.
func (c *Catalog) CoursePoints(courseID string) (float64, error) {
	course, ok := c.courses[courseID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", schedule.ErrCourseNotFound, courseID)
	}
	return course.Points, nil
}

// Authenticate checks a student id and password pair.
func (c *Catalog) Authenticate(id, password string) (*models.Student, error) {
	student, ok := c.students[id]
	if !ok {
		return nil, fmt.Errorf("%w: student %s", ErrNotFound, id)
	}
	if student.Password != password {
		return nil, errors.New("invalid password")
	}
	return student, nil
}

// SearchResults groups substring matches by record type.
type SearchResults struct {
	Courses  []*models.Course
	Teachers []*models.Teacher
	Students []*models.Student
}

// Empty reports whether nothing matched.
func (r SearchResults) Empty() bool {
	return len(r.Courses) == 0 && len(r.Teachers) == 0 && len(r.Students) == 0
}

// Search runs a substring search over every record, including course
// sessions.
func (c *Catalog) Search(text string) SearchResults {
	var results SearchResults
	for _, id := range c.courseOrder {
		if c.courses[id].Search(text) {
			results.Courses = append(results.Courses, c.courses[id])
		}
	}
	for _, id := range c.teacherOrder {
		if c.teachers[id].Search(text) {
			results.Teachers = append(results.Teachers, c.teachers[id])
		}
	}
	for _, id := range c.studentOrder {
		if c.students[id].Search(text) {
			results.Students = append(results.Students, c.students[id])
		}
	}
	return results
}

func dropID(order []string, id string) []string {
	for i, curr := range order {
		if curr == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// readCSV unmarshals a header-tagged CSV file into out. A missing or empty
// file yields no records.
func readCSV(path string, out interface{}) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil
		}
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// writeCSV marshals records to a header-tagged CSV file, replacing it.
func writeCSV(path string, in interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(in, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
