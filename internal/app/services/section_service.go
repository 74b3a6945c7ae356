package services

import (
	"context"
	"fmt"

	"github.com/educonnect/backend/internal/app/models"
	"github.com/educonnect/backend/internal/app/models/dto"
	"github.com/educonnect/backend/internal/pkg/apperrors"
)

// SectionService handles section-related operations. A section write must
// resolve both its instructor and course references before anything is
// persisted; resolution is all-or-nothing.
type SectionService struct {
	sections    SectionStore
	instructors InstructorStore
	courses     CourseStore
}

// NewSectionService creates a new section service instance
func NewSectionService(sections SectionStore, instructors InstructorStore, courses CourseStore) *SectionService {
	return &SectionService{
		sections:    sections,
		instructors: instructors,
		courses:     courses,
	}
}

// SaveSection creates or updates a section.
//
// Instructor and course ids are both required. Either one missing or
// unresolvable rejects the write before the store is touched. The roster is
// persisted as submitted without per-entry resolution; the store's referential
// constraints are the only membership check, and a roster entry pointing at a
// missing student fails the whole save inside one transaction.
func (s *SectionService) SaveSection(ctx context.Context, id int64, req *dto.SaveSectionRequest) (*models.Section, error) {
	if req.Instructor == nil || req.Instructor.ID == 0 {
		return nil, apperrors.NewReferenceNotFoundError("section requires an instructor reference")
	}
	if req.Course == nil || req.Course.ID == 0 {
		return nil, apperrors.NewReferenceNotFoundError("section requires a course reference")
	}

	instructor, err := s.instructors.FindByID(ctx, req.Instructor.ID)
	if err != nil {
		return nil, fmt.Errorf("error resolving instructor reference: %w", err)
	}
	if instructor == nil {
		return nil, apperrors.NewReferenceNotFoundError(
			fmt.Sprintf("referenced instructor %d does not exist", req.Instructor.ID))
	}

	course, err := s.courses.FindByID(ctx, req.Course.ID)
	if err != nil {
		return nil, fmt.Errorf("error resolving course reference: %w", err)
	}
	if course == nil {
		return nil, apperrors.NewReferenceNotFoundError(
			fmt.Sprintf("referenced course %d does not exist", req.Course.ID))
	}

	section := &models.Section{
		ID:           id,
		Code:         req.Code,
		InstructorID: instructor.ID,
		CourseID:     course.ID,
		Instructor:   instructor,
		Course:       course,
		Students:     make([]*models.Student, 0, len(req.Students)),
	}
	for _, ref := range req.Students {
		section.AddStudent(&models.Student{ID: ref.ID})
	}

	if err := s.sections.Save(ctx, section); err != nil {
		return nil, err
	}

	// Reload so the roster carries full student records, not just ids.
	saved, err := s.sections.FindByID(ctx, section.ID)
	if err != nil {
		return nil, fmt.Errorf("error reloading saved section: %w", err)
	}
	if saved == nil {
		return section, nil
	}
	return saved, nil
}

// GetAllSections retrieves all sections
func (s *SectionService) GetAllSections(ctx context.Context) ([]*models.Section, error) {
	sections, err := s.sections.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sections: %w", err)
	}
	return sections, nil
}

// GetSectionByID retrieves a section by ID
func (s *SectionService) GetSectionByID(ctx context.Context, id int64) (*models.Section, error) {
	section, err := s.sections.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}
	if section == nil {
		return nil, apperrors.ErrSectionNotFound
	}
	return section, nil
}

// DeleteSection deletes a section by ID after checking existence. Roster
// entries are removed with the section; students themselves are untouched.
func (s *SectionService) DeleteSection(ctx context.Context, id int64) error {
	exists, err := s.sections.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking section existence: %w", err)
	}
	if !exists {
		return apperrors.ErrSectionNotFound
	}

	return s.sections.DeleteByID(ctx, id)
}
