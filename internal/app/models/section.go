package models

import "fmt"

// Section represents a taught instance of a course: one instructor, one course
// and a roster of students. Roster order is insertion order and carries no
// semantic meaning.
type Section struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Code         string `json:"code" db:"code" example:"SEC001"`
	InstructorID int64  `json:"instructorId" db:"instructor_id" example:"1"`
	CourseID     int64  `json:"courseId" db:"course_id" example:"1"`

	// Relations (populated when needed)
	Instructor *Instructor `json:"instructor,omitempty"`
	Course     *Course     `json:"course,omitempty"`
	Students   []*Student  `json:"students"`
}

// AddStudent appends a student to the section roster.
func (s *Section) AddStudent(student *Student) {
	s.Students = append(s.Students, student)
}

// Summary returns a one-line human-readable description of the section.
func (s *Section) Summary() string {
	instructorName := "N/A"
	if s.Instructor != nil {
		instructorName = s.Instructor.Name
	}
	courseName := "N/A"
	if s.Course != nil {
		courseName = s.Course.Name
	}
	return fmt.Sprintf("Section %s | Instructor: %s | Course: %s | Students: %d",
		s.Code, instructorName, courseName, len(s.Students))
}
