package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/educonnect/backend/internal/app/models"
	"github.com/educonnect/backend/internal/pkg/apperrors"
	"github.com/educonnect/backend/internal/pkg/dberrors"
)

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
	}
}

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	var instructor models.Instructor
	err := row.Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.Login,
		&instructor.PasswordHash,
		&instructor.Specialty,
		&instructor.RegistrationNumber,
	)
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

// FindAll retrieves all instructors
func (r *InstructorRepository) FindAll(ctx context.Context) ([]*models.Instructor, error) {
	query := `
		SELECT id, name, login, password_hash, specialty, registration_number
		FROM instructors
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}

// FindByID retrieves an instructor by ID. Returns (nil, nil) if no row matches.
func (r *InstructorRepository) FindByID(ctx context.Context, id int64) (*models.Instructor, error) {
	query := `
		SELECT id, name, login, password_hash, specialty, registration_number
		FROM instructors
		WHERE id = $1
	`

	instructor, err := scanInstructor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}

	return instructor, nil
}

// ExistsByID checks if an instructor exists by ID
func (r *InstructorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM instructors WHERE id = $1)`, id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking instructor existence: %w", err)
	}

	return exists, nil
}

// Save upserts an instructor by id, populating the assigned id on insert.
func (r *InstructorRepository) Save(ctx context.Context, instructor *models.Instructor) error {
	if instructor.ID == 0 {
		query := `
			INSERT INTO instructors (name, login, password_hash, specialty, registration_number)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err := r.db.QueryRow(ctx, query,
			instructor.Name, instructor.Login, instructor.PasswordHash,
			instructor.Specialty, instructor.RegistrationNumber,
		).Scan(&instructor.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "instructor login or registration number already exists")
			}
			return fmt.Errorf("error inserting instructor: %w", err)
		}
		return nil
	}

	query := `
		UPDATE instructors
		SET name = $1, login = $2, password_hash = $3, specialty = $4, registration_number = $5
		WHERE id = $6
	`
	cmdTag, err := r.db.Exec(ctx, query,
		instructor.Name, instructor.Login, instructor.PasswordHash,
		instructor.Specialty, instructor.RegistrationNumber, instructor.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "instructor login or registration number already exists")
		}
		return fmt.Errorf("error updating instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		insert := `
			INSERT INTO instructors (id, name, login, password_hash, specialty, registration_number)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := r.db.Exec(ctx, insert,
			instructor.ID, instructor.Name, instructor.Login, instructor.PasswordHash,
			instructor.Specialty, instructor.RegistrationNumber); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "instructor login or registration number already exists")
			}
			return fmt.Errorf("error inserting instructor with explicit id: %w", err)
		}
	}

	return nil
}

// DeleteByID deletes an instructor by ID
func (r *InstructorRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrResourceInUse, "instructor is referenced by sections")
		}
		return fmt.Errorf("error deleting instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}

// Count returns the number of instructors
func (r *InstructorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM instructors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting instructors: %w", err)
	}
	return count, nil
}
