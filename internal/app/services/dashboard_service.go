package services

import (
	"context"
	"fmt"

	"github.com/educonnect/backend/internal/app/models/dto"
)

// DashboardService reports entity counts for the admin dashboard
type DashboardService struct {
	students    StudentStore
	instructors InstructorStore
	courses     CourseStore
	sections    SectionStore
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(students StudentStore, instructors InstructorStore, courses CourseStore, sections SectionStore) *DashboardService {
	return &DashboardService{
		students:    students,
		instructors: instructors,
		courses:     courses,
		sections:    sections,
	}
}

// GetDashboard returns the current cardinality of each entity collection.
// Each count is taken independently; the four values are a point-in-time
// snapshot with no cross-collection consistency guarantee.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalStudents, err := s.students.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	totalInstructors, err := s.instructors.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting instructors: %w", err)
	}

	totalCourses, err := s.courses.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}

	totalSections, err := s.sections.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting sections: %w", err)
	}

	return &dto.DashboardResponse{
		TotalStudents:    totalStudents,
		TotalInstructors: totalInstructors,
		TotalCourses:     totalCourses,
		TotalSections:    totalSections,
	}, nil
}
