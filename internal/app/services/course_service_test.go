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
)

func TestCreateInPersonCourse(t *testing.T) {
	courses := newFakeCourseStore()
	svc := NewCourseService(courses)

	course, err := svc.CreateInPersonCourse(context.Background(), &dto.CreateInPersonCourseRequest{
		Name:       "Sistemas de Informação",
		Code:       "SI001",
		TotalHours: 3600,
		Room:       "Sala 101",
	})

	require.NoError(t, err)
	assert.NotZero(t, course.ID)
	assert.Equal(t, models.ModalityInPerson, course.Modality)
	require.NotNil(t, course.Room)
	assert.Equal(t, "Sala 101", *course.Room)
	assert.Nil(t, course.Platform)
}

func TestCreateRemoteCourse(t *testing.T) {
	courses := newFakeCourseStore()
	svc := NewCourseService(courses)

	course, err := svc.CreateRemoteCourse(context.Background(), &dto.CreateRemoteCourseRequest{
		Name:       "Administração",
		Code:       "ADM001",
		TotalHours: 3000,
		Platform:   "Plataforma EduConnect",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ModalityRemote, course.Modality)
	require.NotNil(t, course.Platform)
	assert.Equal(t, "Plataforma EduConnect", *course.Platform)
	assert.Nil(t, course.Room)
}

func TestCreateCourseValidation(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	tests := []struct {
		name string
		req  dto.CreateInPersonCourseRequest
	}{
		{"empty name", dto.CreateInPersonCourseRequest{Name: "  ", Code: "SI001", TotalHours: 100, Room: "A"}},
		{"empty code", dto.CreateInPersonCourseRequest{Name: "X", Code: "", TotalHours: 100, Room: "A"}},
		{"negative hours", dto.CreateInPersonCourseRequest{Name: "X", Code: "SI001", TotalHours: -1, Room: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateInPersonCourse(context.Background(), &tt.req)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}
}

func TestCreateCourseRejectsDuplicateCode(t *testing.T) {
	courses := newFakeCourseStore()
	svc := NewCourseService(courses)

	_, err := svc.CreateInPersonCourse(context.Background(), &dto.CreateInPersonCourseRequest{
		Name:       "Sistemas de Informação",
		Code:       "SI001",
		TotalHours: 3600,
		Room:       "Sala 101",
	})
	require.NoError(t, err)

	// Same code again, other variant: the store's uniqueness constraint wins.
	_, err = svc.CreateRemoteCourse(context.Background(), &dto.CreateRemoteCourseRequest{
		Name:       "Sistemas de Informação EAD",
		Code:       "SI001",
		TotalHours: 3000,
		Platform:   "Plataforma EduConnect",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateResource))

	count, _ := courses.Count(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestUpdateCourseKeepsModality(t *testing.T) {
	courses := newFakeCourseStore()
	svc := NewCourseService(courses)

	created, err := svc.CreateInPersonCourse(context.Background(), &dto.CreateInPersonCourseRequest{
		Name:       "Sistemas de Informação",
		Code:       "SI001",
		TotalHours: 3600,
		Room:       "Sala 101",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCourse(context.Background(), created.ID, &dto.UpdateCourseRequest{
		Name:       "Sistemas de Informação II",
		Code:       "SI002",
		TotalHours: 3800,
		Room:       "Sala 202",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ModalityInPerson, updated.Modality)
	assert.Equal(t, "Sala 202", *updated.Room)
	assert.Equal(t, "Sistemas de Informação II", updated.Name)
}

func TestUpdateCourseRejectsModalityChange(t *testing.T) {
	courses := newFakeCourseStore()
	svc := NewCourseService(courses)

	created, err := svc.CreateInPersonCourse(context.Background(), &dto.CreateInPersonCourseRequest{
		Name:       "Sistemas de Informação",
		Code:       "SI001",
		TotalHours: 3600,
		Room:       "Sala 101",
	})
	require.NoError(t, err)

	// Sending a platform for an in-person course is an attempted variant switch.
	_, err = svc.UpdateCourse(context.Background(), created.ID, &dto.UpdateCourseRequest{
		Name:       "Sistemas de Informação",
		Code:       "SI001",
		TotalHours: 3600,
		Platform:   "Plataforma EduConnect",
	})
	assert.True(t, errors.Is(err, apperrors.ErrModalityImmutable))
}

func TestUpdateCourseNotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	_, err := svc.UpdateCourse(context.Background(), 77, &dto.UpdateCourseRequest{
		Name: "X", Code: "Y", TotalHours: 1,
	})
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}

func TestDeleteCourse(t *testing.T) {
	courses := newFakeCourseStore()
	svc := NewCourseService(courses)

	created, err := svc.CreateRemoteCourse(context.Background(), &dto.CreateRemoteCourseRequest{
		Name:       "Administração",
		Code:       "ADM001",
		TotalHours: 3000,
		Platform:   "Plataforma EduConnect",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(context.Background(), created.ID))

	err = svc.DeleteCourse(context.Background(), created.ID)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}

func TestGetCourseByIDNotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore())

	_, err := svc.GetCourseByID(context.Background(), 5)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}
