package store

import (
	"errors"
	"testing"

	"github.com/omerdav/coursereg/internal/schedule"
)

func testSession(t *testing.T, kind schedule.Kind, group string) schedule.Session {
	t.Helper()
	sess, err := schedule.ParseSession(kind, []string{group, "Monday", "09:00", "90", "Smith", "A1"})
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func seedCatalog(t *testing.T, dir string) *Catalog {
	t.Helper()
	catalog, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := catalog.AddCourse("10101", "Calculus", "Smith", 3.5); err != nil {
		t.Fatal(err)
	}
	if err := catalog.AddCourseSession("10101", testSession(t, schedule.Lecture, "01")); err != nil {
		t.Fatal(err)
	}
	if err := catalog.AddTeacher("111111111", "Smith"); err != nil {
		t.Fatal(err)
	}
	if err := catalog.AddStudent("123456789", "Dana", "passw0rd"); err != nil {
		t.Fatal(err)
	}
	return catalog
}

func TestCatalogSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	catalog := seedCatalog(t, dir)
	if err := catalog.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() after save error = %v", err)
	}
	course, ok := reloaded.Course("10101")
	if !ok {
		t.Fatal("course lost across save/load")
	}
	if course.Points != 3.5 || course.Name != "Calculus" {
		t.Errorf("course = %+v", course)
	}
	if _, ok := course.Session("01"); !ok {
		t.Error("course session lost across save/load")
	}
	if _, ok := reloaded.Teacher("111111111"); !ok {
		t.Error("teacher lost across save/load")
	}
	if _, ok := reloaded.Student("123456789"); !ok {
		t.Error("student lost across save/load")
	}
}

func TestCatalogUniqueIDs(t *testing.T) {
	catalog := seedCatalog(t, t.TempDir())

	if err := catalog.AddCourse("10101", "Other", "Levi", 4); !errors.Is(err, ErrExists) {
		t.Errorf("AddCourse(duplicate) error = %v, want ErrExists", err)
	}
	// Ids are unique across record types too.
	if err := catalog.AddStudent("111111111", "Impostor", "passw0rd"); !errors.Is(err, ErrExists) {
		t.Errorf("AddStudent(teacher id) error = %v, want ErrExists", err)
	}
}

func TestCatalogRemove(t *testing.T) {
	dir := t.TempDir()
	catalog := seedCatalog(t, dir)
	if err := catalog.Save(); err != nil {
		t.Fatal(err)
	}

	if err := catalog.RemoveCourse("10101"); err != nil {
		t.Fatalf("RemoveCourse() error = %v", err)
	}
	if err := catalog.RemoveCourse("10101"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveCourse(absent) error = %v, want ErrNotFound", err)
	}
	if err := catalog.Save(); err != nil {
		t.Fatal(err)
	}

	// The course's session files must not resurrect it.
	reloaded, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reloaded.Course("10101"); ok {
		t.Error("removed course came back after reload")
	}
}

func TestCatalogResolveSession(t *testing.T) {
	catalog := seedCatalog(t, t.TempDir())

	sess, err := catalog.ResolveSession("10101", "01")
	if err != nil {
		t.Fatalf("ResolveSession() error = %v", err)
	}
	if sess.Kind != schedule.Lecture || sess.GroupID != "01" {
		t.Errorf("session = %+v", sess)
	}

	if _, err := catalog.ResolveSession("99999", "01"); !errors.Is(err, schedule.ErrCourseNotFound) {
		t.Errorf("ResolveSession(bad course) error = %v, want ErrCourseNotFound", err)
	}
	if _, err := catalog.ResolveSession("10101", "99"); !errors.Is(err, schedule.ErrSessionNotFound) {
		t.Errorf("ResolveSession(bad group) error = %v, want ErrSessionNotFound", err)
	}

	points, err := catalog.CoursePoints("10101")
	if err != nil || points != 3.5 {
		t.Errorf("CoursePoints() = %v, %v", points, err)
	}
}

func TestCatalogAuthenticate(t *testing.T) {
	catalog := seedCatalog(t, t.TempDir())

	student, err := catalog.Authenticate("123456789", "passw0rd")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if student.Name != "Dana" {
		t.Errorf("student = %+v", student)
	}

	if _, err := catalog.Authenticate("123456789", "wrong"); err == nil {
		t.Error("Authenticate(wrong password) error = nil")
	}
	if _, err := catalog.Authenticate("000000000", "passw0rd"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Authenticate(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestCatalogSearch(t *testing.T) {
	catalog := seedCatalog(t, t.TempDir())

	results := catalog.Search("Smith")
	if len(results.Courses) != 1 || len(results.Teachers) != 1 {
		t.Errorf("Search(Smith) = %+v", results)
	}
	if !catalog.Search("nothing-like-this").Empty() {
		t.Error("Search(absent) not empty")
	}
}
