package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educonnect/backend/internal/app/models"
	"github.com/educonnect/backend/internal/app/models/dto"
	"github.com/educonnect/backend/internal/pkg/apperrors"
	"github.com/educonnect/backend/internal/pkg/helpers"
)

type sectionFixture struct {
	svc        *SectionService
	sections   *fakeSectionStore
	instructor *models.Instructor
	course     *models.Course
	student    *models.Student
}

func newSectionFixture(t *testing.T) *sectionFixture {
	t.Helper()
	ctx := context.Background()

	instructors := newFakeInstructorStore()
	courses := newFakeCourseStore()
	students := newFakeStudentStore()
	sections := newFakeSectionStore(students)

	instructor := &models.Instructor{Name: "João Silva", Login: "joao", Specialty: "TI", RegistrationNumber: "REG001"}
	require.NoError(t, instructors.Save(ctx, instructor))

	course := &models.Course{
		Name:       "Sistemas de Informação",
		Code:       "SI001",
		TotalHours: 3600,
		Modality:   models.ModalityInPerson,
		Room:       helpers.StringPtr("Sala 101"),
	}
	require.NoError(t, courses.Save(ctx, course))

	student := &models.Student{Name: "Pedro Oliveira", Login: "pedro", EnrollmentNumber: "MAT001"}
	require.NoError(t, students.Save(ctx, student))

	return &sectionFixture{
		svc:        NewSectionService(sections, instructors, courses),
		sections:   sections,
		instructor: instructor,
		course:     course,
		student:    student,
	}
}

func TestSaveSectionResolvesReferences(t *testing.T) {
	fx := newSectionFixture(t)

	section, err := fx.svc.SaveSection(context.Background(), 0, &dto.SaveSectionRequest{
		Code:       "TURMA001",
		Instructor: &dto.EntityRef{ID: fx.instructor.ID},
		Course:     &dto.EntityRef{ID: fx.course.ID},
		Students:   []dto.EntityRef{{ID: fx.student.ID}},
	})

	require.NoError(t, err)
	assert.NotZero(t, section.ID)
	assert.Equal(t, fx.instructor.ID, section.InstructorID)
	assert.Equal(t, fx.course.ID, section.CourseID)
	require.Len(t, section.Students, 1)
	// Roster entries come back as full records, not id stubs.
	assert.Equal(t, "Pedro Oliveira", section.Students[0].Name)
}

func TestSaveSectionRequiresInstructorReference(t *testing.T) {
	fx := newSectionFixture(t)

	_, err := fx.svc.SaveSection(context.Background(), 0, &dto.SaveSectionRequest{
		Code:   "TURMA001",
		Course: &dto.EntityRef{ID: fx.course.ID},
	})
	assert.True(t, errors.Is(err, apperrors.ErrReferenceNotFound))
}

func TestSaveSectionRequiresCourseReference(t *testing.T) {
	fx := newSectionFixture(t)

	_, err := fx.svc.SaveSection(context.Background(), 0, &dto.SaveSectionRequest{
		Code:       "TURMA001",
		Instructor: &dto.EntityRef{ID: fx.instructor.ID},
	})
	assert.True(t, errors.Is(err, apperrors.ErrReferenceNotFound))
}

func TestSaveSectionRejectsUnresolvableInstructor(t *testing.T) {
	fx := newSectionFixture(t)

	_, err := fx.svc.SaveSection(context.Background(), 0, &dto.SaveSectionRequest{
		Code:       "TURMA001",
		Instructor: &dto.EntityRef{ID: 99},
		Course:     &dto.EntityRef{ID: fx.course.ID},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrReferenceNotFound))

	count, _ := fx.sections.Count(context.Background())
	assert.Zero(t, count)
}

func TestSaveSectionRejectsMissingRosterMember(t *testing.T) {
	fx := newSectionFixture(t)

	// One valid member plus one unknown; the whole save must fail.
	_, err := fx.svc.SaveSection(context.Background(), 0, &dto.SaveSectionRequest{
		Code:       "TURMA001",
		Instructor: &dto.EntityRef{ID: fx.instructor.ID},
		Course:     &dto.EntityRef{ID: fx.course.ID},
		Students:   []dto.EntityRef{{ID: fx.student.ID}, {ID: 99}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrReferenceNotFound))

	count, _ := fx.sections.Count(context.Background())
	assert.Zero(t, count)
}

func TestDeleteSection(t *testing.T) {
	fx := newSectionFixture(t)

	section, err := fx.svc.SaveSection(context.Background(), 0, &dto.SaveSectionRequest{
		Code:       "TURMA001",
		Instructor: &dto.EntityRef{ID: fx.instructor.ID},
		Course:     &dto.EntityRef{ID: fx.course.ID},
	})
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteSection(context.Background(), section.ID))

	err = fx.svc.DeleteSection(context.Background(), section.ID)
	assert.True(t, errors.Is(err, apperrors.ErrSectionNotFound))
}

func TestGetSectionByIDNotFound(t *testing.T) {
	fx := newSectionFixture(t)

	_, err := fx.svc.GetSectionByID(context.Background(), 44)
	assert.True(t, errors.Is(err, apperrors.ErrSectionNotFound))
}
