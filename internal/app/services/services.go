package services

import (
	"context"

	"github.com/educonnect/backend/internal/app/models"
)

// The store interfaces mirror the generic persistence gateway each entity type
// needs: find-all, find-by-id (nil, nil when absent), exists-by-id, save
// (upsert by id, assigned id populated on the passed model), delete-by-id
// (safe only after an existence check by the caller) and count.

// CourseStore is the persistence gateway for courses
type CourseStore interface {
	FindAll(ctx context.Context) ([]*models.Course, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, course *models.Course) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// InstructorStore is the persistence gateway for instructors
type InstructorStore interface {
	FindAll(ctx context.Context) ([]*models.Instructor, error)
	FindByID(ctx context.Context, id int64) (*models.Instructor, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, instructor *models.Instructor) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// StudentStore is the persistence gateway for students
type StudentStore interface {
	FindAll(ctx context.Context) ([]*models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, student *models.Student) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// SectionStore is the persistence gateway for sections
type SectionStore interface {
	FindAll(ctx context.Context) ([]*models.Section, error)
	FindByID(ctx context.Context, id int64) (*models.Section, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, section *models.Section) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
