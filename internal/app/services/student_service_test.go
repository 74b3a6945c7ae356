package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/educonnect/backend/internal/app/models"
	"github.com/educonnect/backend/internal/app/models/dto"
	"github.com/educonnect/backend/internal/pkg/apperrors"
	"github.com/educonnect/backend/internal/pkg/helpers"
)

func TestSaveStudentWithoutCourse(t *testing.T) {
	students := newFakeStudentStore()
	courses := newFakeCourseStore()
	svc := NewStudentService(students, courses)

	student, err := svc.SaveStudent(context.Background(), 0, &dto.SaveStudentRequest{
		Name:             "Pedro Oliveira",
		Login:            "pedro",
		Password:         "123",
		EnrollmentNumber: "MAT001",
	})

	require.NoError(t, err)
	assert.NotZero(t, student.ID)
	assert.Nil(t, student.CourseID)
	assert.Nil(t, student.Course)
}

func TestSaveStudentResolvesCourseReference(t *testing.T) {
	students := newFakeStudentStore()
	courses := newFakeCourseStore()
	stored := &models.Course{
		Name:       "Sistemas de Informação",
		Code:       "SI001",
		TotalHours: 3600,
		Modality:   models.ModalityInPerson,
		Room:       helpers.StringPtr("Sala 101"),
	}
	require.NoError(t, courses.Save(context.Background(), stored))

	svc := NewStudentService(students, courses)
	student, err := svc.SaveStudent(context.Background(), 0, &dto.SaveStudentRequest{
		Name:             "Pedro Oliveira",
		Login:            "pedro",
		Password:         "123",
		EnrollmentNumber: "MAT001",
		Course:           &dto.EntityRef{ID: stored.ID},
	})

	require.NoError(t, err)
	require.NotNil(t, student.Course)
	// The authoritative stored record wins, not whatever the client sent.
	assert.Equal(t, "Sistemas de Informação", student.Course.Name)
	require.NotNil(t, student.CourseID)
	assert.Equal(t, stored.ID, *student.CourseID)
}

func TestSaveStudentRejectsMissingCourse(t *testing.T) {
	students := newFakeStudentStore()
	courses := newFakeCourseStore()
	svc := NewStudentService(students, courses)

	_, err := svc.SaveStudent(context.Background(), 0, &dto.SaveStudentRequest{
		Name:             "Pedro Oliveira",
		Login:            "pedro",
		Password:         "123",
		EnrollmentNumber: "MAT001",
		Course:           &dto.EntityRef{ID: 42},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrReferenceNotFound))

	// Rejected write must leave the store unchanged.
	count, _ := students.Count(context.Background())
	assert.Zero(t, count)
}

func TestSaveStudentHashesPassword(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewStudentService(students, newFakeCourseStore())

	student, err := svc.SaveStudent(context.Background(), 0, &dto.SaveStudentRequest{
		Name:             "Ana Costa",
		Login:            "ana",
		Password:         "123",
		EnrollmentNumber: "MAT002",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "123", student.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte("123")))
}

func TestSaveStudentUpdatesExisting(t *testing.T) {
	students := newFakeStudentStore()
	courses := newFakeCourseStore()
	svc := NewStudentService(students, courses)

	created, err := svc.SaveStudent(context.Background(), 0, &dto.SaveStudentRequest{
		Name:             "Pedro Oliveira",
		Login:            "pedro",
		Password:         "123",
		EnrollmentNumber: "MAT001",
	})
	require.NoError(t, err)

	updated, err := svc.SaveStudent(context.Background(), created.ID, &dto.SaveStudentRequest{
		Name:             "Pedro O. Santos",
		Login:            "pedro",
		Password:         "123",
		EnrollmentNumber: "MAT001",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	count, _ := students.Count(context.Background())
	assert.Equal(t, int64(1), count)

	stored, err := svc.GetStudentByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pedro O. Santos", stored.Name)
}

func TestGetStudentByIDNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore(), newFakeCourseStore())

	_, err := svc.GetStudentByID(context.Background(), 99)
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestDeleteStudent(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewStudentService(students, newFakeCourseStore())

	created, err := svc.SaveStudent(context.Background(), 0, &dto.SaveStudentRequest{
		Name:             "Pedro Oliveira",
		Login:            "pedro",
		Password:         "123",
		EnrollmentNumber: "MAT001",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(context.Background(), created.ID))

	err = svc.DeleteStudent(context.Background(), created.ID)
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}
