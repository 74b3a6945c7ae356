package models

import "fmt"

// Student defines the student model based on the 'students' table.
// A student may exist without any course assigned.
type Student struct {
	ID               int64  `json:"id" db:"id" example:"1"`
	Name             string `json:"name" db:"name" example:"Pedro Oliveira"`
	Login            string `json:"login" db:"login" example:"pedro"`
	PasswordHash     string `json:"-" db:"password_hash"` // bcrypt, never serialized
	EnrollmentNumber string `json:"enrollmentNumber" db:"enrollment_number" example:"MAT001"`
	CourseID         *int64 `json:"courseId,omitempty" db:"course_id"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}

// Summary returns a one-line human-readable description of the student.
// A placeholder is used when no course is assigned.
func (s *Student) Summary() string {
	courseName := "N/A"
	if s.Course != nil {
		courseName = s.Course.Name
	}
	return fmt.Sprintf("Student: %s | Enrollment: %s | Course: %s", s.Name, s.EnrollmentNumber, courseName)
}
