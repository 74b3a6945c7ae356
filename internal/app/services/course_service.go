package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/educonnect/backend/internal/app/models"
	"github.com/educonnect/backend/internal/app/models/dto"
	"github.com/educonnect/backend/internal/pkg/apperrors"
	"github.com/educonnect/backend/internal/pkg/helpers"
)

// CourseService handles course-related operations
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{
		courses: courses,
	}
}

// validateCourse validates course data before database operations
func (s *CourseService) validateCourse(course *models.Course) error {
	if strings.TrimSpace(course.Name) == "" {
		return apperrors.NewValidationError("course name cannot be empty")
	}
	if strings.TrimSpace(course.Code) == "" {
		return apperrors.NewValidationError("course code cannot be empty")
	}
	if course.TotalHours < 0 {
		return apperrors.NewValidationError("course total hours cannot be negative")
	}
	if !course.Modality.IsValid() {
		return apperrors.ErrInvalidModality
	}
	return nil
}

// CreateInPersonCourse creates a new in-person course
func (s *CourseService) CreateInPersonCourse(ctx context.Context, req *dto.CreateInPersonCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:       req.Name,
		Code:       req.Code,
		TotalHours: req.TotalHours,
		Modality:   models.ModalityInPerson,
		Room:       helpers.StringPtr(req.Room),
	}

	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.courses.Save(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating in-person course: %w", err)
	}
	return course, nil
}

// CreateRemoteCourse creates a new remote course
func (s *CourseService) CreateRemoteCourse(ctx context.Context, req *dto.CreateRemoteCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:       req.Name,
		Code:       req.Code,
		TotalHours: req.TotalHours,
		Modality:   models.ModalityRemote,
		Platform:   helpers.StringPtr(req.Platform),
	}

	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.courses.Save(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating remote course: %w", err)
	}
	return course, nil
}

// GetAllCourses retrieves all courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// UpdateCourse updates an existing course. The stored modality is kept: the
// variant is part of the course's identity and a payload cannot change it.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	course.Name = req.Name
	course.Code = req.Code
	course.TotalHours = req.TotalHours

	switch course.Modality {
	case models.ModalityInPerson:
		if req.Platform != "" {
			return nil, apperrors.ErrModalityImmutable
		}
		if req.Room != "" {
			course.Room = helpers.StringPtr(req.Room)
		}
	case models.ModalityRemote:
		if req.Room != "" {
			return nil, apperrors.ErrModalityImmutable
		}
		if req.Platform != "" {
			course.Platform = helpers.StringPtr(req.Platform)
		}
	}

	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.courses.Save(ctx, course); err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return course, nil
}

// DeleteCourse deletes a course by ID after checking existence
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	exists, err := s.courses.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking course existence: %w", err)
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}

	if err := s.courses.DeleteByID(ctx, id); err != nil {
		return err
	}
	return nil
}
