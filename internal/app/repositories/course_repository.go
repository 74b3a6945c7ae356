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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Code,
		&course.TotalHours,
		&course.Modality,
		&course.Room,
		&course.Platform,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// FindAll retrieves all courses
func (r *CourseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, code, total_hours, modality, room, platform
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// FindByID retrieves a course by ID. Returns (nil, nil) if no row matches.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, code, total_hours, modality, room, platform
		FROM courses
		WHERE id = $1
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// ExistsByID checks if a course exists by ID
func (r *CourseRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// Save upserts a course by id. A zero id inserts a new row and populates the
// assigned id on the passed model; a known id updates the existing row; an
// unknown non-zero id inserts a row with that id.
func (r *CourseRepository) Save(ctx context.Context, course *models.Course) error {
	if course.ID == 0 {
		query := `
			INSERT INTO courses (name, code, total_hours, modality, room, platform)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		err := r.db.QueryRow(ctx, query,
			course.Name, course.Code, course.TotalHours, course.Modality, course.Room, course.Platform,
		).Scan(&course.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "course code already exists")
			}
			return fmt.Errorf("error inserting course: %w", err)
		}
		return nil
	}

	query := `
		UPDATE courses
		SET name = $1, code = $2, total_hours = $3, modality = $4, room = $5, platform = $6
		WHERE id = $7
	`
	cmdTag, err := r.db.Exec(ctx, query,
		course.Name, course.Code, course.TotalHours, course.Modality, course.Room, course.Platform, course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "course code already exists")
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		insert := `
			INSERT INTO courses (id, name, code, total_hours, modality, room, platform)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		if _, err := r.db.Exec(ctx, insert,
			course.ID, course.Name, course.Code, course.TotalHours, course.Modality, course.Room, course.Platform); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "course code already exists")
			}
			return fmt.Errorf("error inserting course with explicit id: %w", err)
		}
	}

	return nil
}

// DeleteByID deletes a course by ID. The caller is expected to have checked
// existence; a delete blocked by referencing students or sections is reported
// as apperrors.ErrResourceInUse.
func (r *CourseRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrResourceInUse, "course is referenced by students or sections")
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Count returns the number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
