package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/educonnect/backend/internal/app/models"
	appRepos "github.com/educonnect/backend/internal/app/repositories"
	"github.com/educonnect/backend/internal/db"
	"github.com/educonnect/backend/internal/pkg/helpers"
)

// CreateDefaultData loads the initial catalog (courses, instructors, students,
// one section) on a fresh database. It is a no-op when courses already exist,
// so restarting the server never duplicates rows.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(database)

	courseCount, err := repos.CourseRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing courses: %w", err)
	}
	if courseCount > 0 {
		lgr.Debug().Int64("courses", courseCount).Msg("Database already seeded, skipping default data")
		return nil
	}

	lgr.Info().Msg("Seeding default data...")

	// Courses
	courseIT := &appModels.Course{
		Name:       "Sistemas de Informação",
		Code:       "SI001",
		TotalHours: 3600,
		Modality:   appModels.ModalityInPerson,
		Room:       helpers.StringPtr("Sala 101"),
	}
	courseADM := &appModels.Course{
		Name:       "Administração",
		Code:       "ADM001",
		TotalHours: 3000,
		Modality:   appModels.ModalityRemote,
		Platform:   helpers.StringPtr("Plataforma EduConnect"),
	}
	for _, course := range []*appModels.Course{courseIT, courseADM} {
		if err := repos.CourseRepository.Save(ctx, course); err != nil {
			return fmt.Errorf("failed to seed course %s: %w", course.Code, err)
		}
	}

	defaultHash, err := hashPassword("123")
	if err != nil {
		return err
	}

	// Instructors
	instructorJoao := &appModels.Instructor{
		Name:               "João Silva",
		Login:              "joao",
		PasswordHash:       defaultHash,
		Specialty:          "TI",
		RegistrationNumber: "REG001",
	}
	instructorMaria := &appModels.Instructor{
		Name:               "Maria Santos",
		Login:              "maria",
		PasswordHash:       defaultHash,
		Specialty:          "Administração",
		RegistrationNumber: "REG002",
	}
	for _, instructor := range []*appModels.Instructor{instructorJoao, instructorMaria} {
		if err := repos.InstructorRepository.Save(ctx, instructor); err != nil {
			return fmt.Errorf("failed to seed instructor %s: %w", instructor.Login, err)
		}
	}

	// Students
	studentPedro := &appModels.Student{
		Name:             "Pedro Oliveira",
		Login:            "pedro",
		PasswordHash:     defaultHash,
		EnrollmentNumber: "MAT001",
		CourseID:         &courseIT.ID,
	}
	studentAna := &appModels.Student{
		Name:             "Ana Costa",
		Login:            "ana",
		PasswordHash:     defaultHash,
		EnrollmentNumber: "MAT002",
		CourseID:         &courseADM.ID,
	}
	for _, student := range []*appModels.Student{studentPedro, studentAna} {
		if err := repos.StudentRepository.Save(ctx, student); err != nil {
			return fmt.Errorf("failed to seed student %s: %w", student.Login, err)
		}
	}

	// One section with a single enrolled student
	section := &appModels.Section{
		Code:         "TURMA001",
		InstructorID: instructorJoao.ID,
		CourseID:     courseIT.ID,
	}
	section.AddStudent(studentPedro)
	if err := repos.SectionRepository.Save(ctx, section); err != nil {
		return fmt.Errorf("failed to seed section %s: %w", section.Code, err)
	}

	lgr.Info().
		Int("courses", 2).
		Int("instructors", 2).
		Int("students", 2).
		Int("sections", 1).
		Msg("Default data seeded")
	return nil
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash seed password: %w", err)
	}
	return string(hashed), nil
}
