package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/educonnect/backend/internal/app/models"
	"github.com/educonnect/backend/internal/app/models/dto"
	"github.com/educonnect/backend/internal/pkg/apperrors"
)

// InstructorService handles instructor-related operations. Instructors carry
// no references to other entities, so saves need no resolution step.
type InstructorService struct {
	instructors InstructorStore
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructors InstructorStore) *InstructorService {
	return &InstructorService{
		instructors: instructors,
	}
}

// SaveInstructor creates or updates an instructor. Passwords are hashed at
// this write boundary and never stored in the clear.
func (s *InstructorService) SaveInstructor(ctx context.Context, id int64, req *dto.SaveInstructorRequest) (*models.Instructor, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing instructor password: %w", err)
	}

	instructor := &models.Instructor{
		ID:                 id,
		Name:               req.Name,
		Login:              req.Login,
		PasswordHash:       string(hash),
		Specialty:          req.Specialty,
		RegistrationNumber: req.RegistrationNumber,
	}

	if err := s.instructors.Save(ctx, instructor); err != nil {
		return nil, fmt.Errorf("error saving instructor: %w", err)
	}
	return instructor, nil
}

// GetAllInstructors retrieves all instructors
func (s *InstructorService) GetAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.instructors.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}
	return instructors, nil
}

// GetInstructorByID retrieves an instructor by ID
func (s *InstructorService) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	instructor, err := s.instructors.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}
	if instructor == nil {
		return nil, apperrors.ErrInstructorNotFound
	}
	return instructor, nil
}

// DeleteInstructor deletes an instructor by ID after checking existence
func (s *InstructorService) DeleteInstructor(ctx context.Context, id int64) error {
	exists, err := s.instructors.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking instructor existence: %w", err)
	}
	if !exists {
		return apperrors.ErrInstructorNotFound
	}

	return s.instructors.DeleteByID(ctx, id)
}
