package models

import (
	"fmt"
	"strings"
	"unicode"
)

// Student is a catalog student record. The password guards the student's
// interactive session and schedule files.
type Student struct {
	ID       string
	Name     string
	Password string
}

// NewStudent validates the student attributes.
func NewStudent(id, name, password string) (*Student, error) {
	if err := ValidStudentID(id); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: student name cannot be empty", ErrValidation)
	}
	if err := validPassword(password); err != nil {
		return nil, err
	}
	return &Student{ID: id, Name: name, Password: password}, nil
}

// ValidStudentID checks the student id format: exactly nine digits.
func ValidStudentID(id string) error {
	if len(id) != 9 {
		return fmt.Errorf("%w: student id must be 9 digits, got %q", ErrValidation, id)
	}
	return digitsOnly(id, "student id")
}

// validPassword requires at least 8 characters with both a letter and a
// digit.
func validPassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	}
	var hasLetter, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("%w: password must contain both letters and digits", ErrValidation)
	}
	return nil
}

// Search reports whether any student field contains the text.
func (s *Student) Search(text string) bool {
	return strings.Contains(s.ID, text) || strings.Contains(s.Name, text) || strings.Contains(s.Password, text)
}

func (s *Student) String() string {
	return fmt.Sprintf("Student: ID: %s, Name: %s", s.ID, s.Name)
}
