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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// studentSelect joins the optional course so reads return the full reference,
// not just the id.
const studentSelect = `
	SELECT s.id, s.name, s.login, s.password_hash, s.enrollment_number, s.course_id,
	       c.id, c.name, c.code, c.total_hours, c.modality, c.room, c.platform
	FROM students s
	LEFT JOIN courses c ON c.id = s.course_id
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var courseID *int64
	var courseName, courseCode *string
	var courseHours *int
	var courseModality *models.Modality
	var courseRoom, coursePlatform *string

	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Login,
		&student.PasswordHash,
		&student.EnrollmentNumber,
		&student.CourseID,
		&courseID,
		&courseName,
		&courseCode,
		&courseHours,
		&courseModality,
		&courseRoom,
		&coursePlatform,
	)
	if err != nil {
		return nil, err
	}

	if courseID != nil {
		student.Course = &models.Course{
			ID:         *courseID,
			Name:       *courseName,
			Code:       *courseCode,
			TotalHours: *courseHours,
			Modality:   *courseModality,
			Room:       courseRoom,
			Platform:   coursePlatform,
		}
	}

	return &student, nil
}

// FindAll retrieves all students with their course reference populated
func (r *StudentRepository) FindAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, studentSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// FindByID retrieves a student by ID. Returns (nil, nil) if no row matches.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, studentSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// ExistsByID checks if a student exists by ID
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// Save upserts a student by id, populating the assigned id on insert.
func (r *StudentRepository) Save(ctx context.Context, student *models.Student) error {
	if student.ID == 0 {
		query := `
			INSERT INTO students (name, login, password_hash, enrollment_number, course_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err := r.db.QueryRow(ctx, query,
			student.Name, student.Login, student.PasswordHash,
			student.EnrollmentNumber, student.CourseID,
		).Scan(&student.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "student login or enrollment number already exists")
			}
			return fmt.Errorf("error inserting student: %w", err)
		}
		return nil
	}

	query := `
		UPDATE students
		SET name = $1, login = $2, password_hash = $3, enrollment_number = $4, course_id = $5
		WHERE id = $6
	`
	cmdTag, err := r.db.Exec(ctx, query,
		student.Name, student.Login, student.PasswordHash,
		student.EnrollmentNumber, student.CourseID, student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "student login or enrollment number already exists")
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		insert := `
			INSERT INTO students (id, name, login, password_hash, enrollment_number, course_id)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := r.db.Exec(ctx, insert,
			student.ID, student.Name, student.Login, student.PasswordHash,
			student.EnrollmentNumber, student.CourseID); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "student login or enrollment number already exists")
			}
			return fmt.Errorf("error inserting student with explicit id: %w", err)
		}
	}

	return nil
}

// DeleteByID deletes a student by ID
func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrResourceInUse, "student is referenced by sections")
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Count returns the number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
