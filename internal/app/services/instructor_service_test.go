package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/educonnect/backend/internal/app/models/dto"
	"github.com/educonnect/backend/internal/pkg/apperrors"
)

func TestSaveInstructorHashesPassword(t *testing.T) {
	instructors := newFakeInstructorStore()
	svc := NewInstructorService(instructors)

	instructor, err := svc.SaveInstructor(context.Background(), 0, &dto.SaveInstructorRequest{
		Name:               "João Silva",
		Login:              "joao",
		Password:           "123",
		Specialty:          "TI",
		RegistrationNumber: "REG001",
	})

	require.NoError(t, err)
	assert.NotZero(t, instructor.ID)
	assert.NotEqual(t, "123", instructor.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(instructor.PasswordHash), []byte("123")))
}

func TestSaveInstructorUpsertsByID(t *testing.T) {
	instructors := newFakeInstructorStore()
	svc := NewInstructorService(instructors)

	created, err := svc.SaveInstructor(context.Background(), 0, &dto.SaveInstructorRequest{
		Name: "João Silva", Login: "joao", Password: "123", Specialty: "TI", RegistrationNumber: "REG001",
	})
	require.NoError(t, err)

	updated, err := svc.SaveInstructor(context.Background(), created.ID, &dto.SaveInstructorRequest{
		Name: "João S. Pereira", Login: "joao", Password: "123", Specialty: "TI", RegistrationNumber: "REG001",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	count, _ := instructors.Count(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestGetInstructorByIDNotFound(t *testing.T) {
	svc := NewInstructorService(newFakeInstructorStore())

	_, err := svc.GetInstructorByID(context.Background(), 7)
	assert.True(t, errors.Is(err, apperrors.ErrInstructorNotFound))
}

func TestDeleteInstructorNotFound(t *testing.T) {
	svc := NewInstructorService(newFakeInstructorStore())

	err := svc.DeleteInstructor(context.Background(), 7)
	assert.True(t, errors.Is(err, apperrors.ErrInstructorNotFound))
}
