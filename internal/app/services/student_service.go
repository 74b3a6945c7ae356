package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/educonnect/backend/internal/app/models"
	"github.com/educonnect/backend/internal/app/models/dto"
	"github.com/educonnect/backend/internal/pkg/apperrors"
)

// StudentService handles student-related operations, including resolving the
// optional course reference before any write reaches the store.
type StudentService struct {
	students StudentStore
	courses  CourseStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, courses CourseStore) *StudentService {
	return &StudentService{
		students: students,
		courses:  courses,
	}
}

// SaveStudent creates or updates a student.
//
// If the payload carries a course reference, only its id is honored: the id is
// resolved against the course store and the student is persisted with the
// authoritative stored course. An unresolvable id rejects the whole write and
// leaves the store unchanged. No course reference means the student is saved
// with none.
func (s *StudentService) SaveStudent(ctx context.Context, id int64, req *dto.SaveStudentRequest) (*models.Student, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing student password: %w", err)
	}

	student := &models.Student{
		ID:               id,
		Name:             req.Name,
		Login:            req.Login,
		PasswordHash:     string(hash),
		EnrollmentNumber: req.EnrollmentNumber,
	}

	if req.Course != nil && req.Course.ID != 0 {
		course, err := s.courses.FindByID(ctx, req.Course.ID)
		if err != nil {
			return nil, fmt.Errorf("error resolving course reference: %w", err)
		}
		if course == nil {
			return nil, apperrors.NewReferenceNotFoundError(
				fmt.Sprintf("referenced course %d does not exist", req.Course.ID))
		}
		student.CourseID = &course.ID
		student.Course = course
	}

	if err := s.students.Save(ctx, student); err != nil {
		return nil, fmt.Errorf("error saving student: %w", err)
	}
	return student, nil
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// DeleteStudent deletes a student by ID after checking existence
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	exists, err := s.students.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking student existence: %w", err)
	}
	if !exists {
		return apperrors.ErrStudentNotFound
	}

	return s.students.DeleteByID(ctx, id)
}
