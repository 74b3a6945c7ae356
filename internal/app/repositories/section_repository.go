package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/educonnect/backend/internal/app/models"
	"github.com/educonnect/backend/internal/db"
	"github.com/educonnect/backend/internal/pkg/apperrors"
	"github.com/educonnect/backend/internal/pkg/dberrors"
)

// SectionRepository handles database operations for sections and their rosters.
// It holds the full database handle rather than the bare pool because roster
// writes run inside a managed transaction.
type SectionRepository struct {
	database *db.PostgresDB
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(database *db.PostgresDB) *SectionRepository {
	return &SectionRepository{
		database: database,
	}
}

// FindAll retrieves all sections with instructor, course and roster populated
func (r *SectionRepository) FindAll(ctx context.Context) ([]*models.Section, error) {
	query := `
		SELECT id, code, instructor_id, course_id
		FROM sections
		ORDER BY id
	`

	rows, err := r.database.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(&section.ID, &section.Code, &section.InstructorID, &section.CourseID); err != nil {
			return nil, err
		}
		sections = append(sections, &section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, section := range sections {
		if err := r.loadRelations(ctx, section); err != nil {
			return nil, err
		}
	}

	return sections, nil
}

// FindByID retrieves a section by ID. Returns (nil, nil) if no row matches.
func (r *SectionRepository) FindByID(ctx context.Context, id int64) (*models.Section, error) {
	query := `
		SELECT id, code, instructor_id, course_id
		FROM sections
		WHERE id = $1
	`

	var section models.Section
	err := r.database.Pool.QueryRow(ctx, query, id).Scan(&section.ID, &section.Code, &section.InstructorID, &section.CourseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving section: %w", err)
	}

	if err := r.loadRelations(ctx, &section); err != nil {
		return nil, err
	}

	return &section, nil
}

// loadRelations attaches the instructor, course and roster to a section
func (r *SectionRepository) loadRelations(ctx context.Context, section *models.Section) error {
	instructorQuery := `
		SELECT id, name, login, password_hash, specialty, registration_number
		FROM instructors
		WHERE id = $1
	`
	instructor, err := scanInstructor(r.database.Pool.QueryRow(ctx, instructorQuery, section.InstructorID))
	if err == nil {
		section.Instructor = instructor
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("error loading section instructor: %w", err)
	}

	courseQuery := `
		SELECT id, name, code, total_hours, modality, room, platform
		FROM courses
		WHERE id = $1
	`
	course, err := scanCourse(r.database.Pool.QueryRow(ctx, courseQuery, section.CourseID))
	if err == nil {
		section.Course = course
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("error loading section course: %w", err)
	}

	// Roster in insertion order.
	rosterQuery := studentSelect + `
		JOIN section_students ss ON ss.student_id = s.id
		WHERE ss.section_id = $1
		ORDER BY ss.position
	`
	rows, err := r.database.Pool.Query(ctx, rosterQuery, section.ID)
	if err != nil {
		return fmt.Errorf("error loading section roster: %w", err)
	}
	defer rows.Close()

	section.Students = []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return err
		}
		section.Students = append(section.Students, student)
	}

	return rows.Err()
}

// ExistsByID checks if a section exists by ID
func (r *SectionRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.database.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM sections WHERE id = $1)`, id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking section existence: %w", err)
	}

	return exists, nil
}

// Save upserts a section and rewrites its roster in a single transaction, so a
// rejected membership row leaves the store unchanged.
func (r *SectionRepository) Save(ctx context.Context, section *models.Section) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if section.ID == 0 {
			query := `
				INSERT INTO sections (code, instructor_id, course_id)
				VALUES ($1, $2, $3)
				RETURNING id
			`
			if err := tx.QueryRow(ctx, query, section.Code, section.InstructorID, section.CourseID).Scan(&section.ID); err != nil {
				if dberrors.IsUniqueViolation(err) {
					return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "section code already exists")
				}
				return fmt.Errorf("error inserting section: %w", err)
			}
		} else {
			query := `
				UPDATE sections
				SET code = $1, instructor_id = $2, course_id = $3
				WHERE id = $4
			`
			cmdTag, err := tx.Exec(ctx, query, section.Code, section.InstructorID, section.CourseID, section.ID)
			if err != nil {
				if dberrors.IsUniqueViolation(err) {
					return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "section code already exists")
				}
				return fmt.Errorf("error updating section: %w", err)
			}
			if cmdTag.RowsAffected() == 0 {
				insert := `
					INSERT INTO sections (id, code, instructor_id, course_id)
					VALUES ($1, $2, $3, $4)
				`
				if _, err := tx.Exec(ctx, insert, section.ID, section.Code, section.InstructorID, section.CourseID); err != nil {
					if dberrors.IsUniqueViolation(err) {
						return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "section code already exists")
					}
					return fmt.Errorf("error inserting section with explicit id: %w", err)
				}
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM section_students WHERE section_id = $1`, section.ID); err != nil {
			return fmt.Errorf("error clearing section roster: %w", err)
		}

		for position, student := range section.Students {
			_, err := tx.Exec(ctx, `
				INSERT INTO section_students (section_id, student_id, position)
				VALUES ($1, $2, $3)`,
				section.ID, student.ID, position)
			if err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.NewReferenceNotFoundError("section roster references a missing student")
				}
				return fmt.Errorf("error inserting section roster entry: %w", err)
			}
		}

		return nil
	})
}

// DeleteByID deletes a section by ID. Roster rows go with it via ON DELETE CASCADE.
func (r *SectionRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.database.Pool.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// Count returns the number of sections
func (r *SectionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.database.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM sections`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting sections: %w", err)
	}
	return count, nil
}
