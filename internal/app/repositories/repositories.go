package repositories

import (
	"github.com/educonnect/backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository     *CourseRepository
	InstructorRepository *InstructorRepository
	StudentRepository    *StudentRepository
	SectionRepository    *SectionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		CourseRepository:     NewCourseRepository(database.Pool),
		InstructorRepository: NewInstructorRepository(database.Pool),
		StudentRepository:    NewStudentRepository(database.Pool),
		SectionRepository:    NewSectionRepository(database),
	}
}
