package models

import (
	"fmt"
	"strings"
)

// Teacher is a catalog lecturer record.
type Teacher struct {
	ID   string
	Name string
}

// NewTeacher validates the teacher attributes.
func NewTeacher(id, name string) (*Teacher, error) {
	if err := ValidTeacherID(id); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: teacher name cannot be empty", ErrValidation)
	}
	return &Teacher{ID: id, Name: name}, nil
}

// ValidTeacherID checks the teacher id format: exactly nine digits.
func ValidTeacherID(id string) error {
	if len(id) != 9 {
		return fmt.Errorf("%w: teacher id must be 9 digits, got %q", ErrValidation, id)
	}
	return digitsOnly(id, "teacher id")
}

// Search reports whether any teacher field contains the text.
func (t *Teacher) Search(text string) bool {
	return strings.Contains(t.ID, text) || strings.Contains(t.Name, text)
}

func (t *Teacher) String() string {
	return fmt.Sprintf("Teacher: ID: %s, Name: %s", t.ID, t.Name)
}
