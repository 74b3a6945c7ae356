package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educonnect/backend/internal/app/models"
)

func TestGetDashboardCounts(t *testing.T) {
	ctx := context.Background()

	students := newFakeStudentStore()
	instructors := newFakeInstructorStore()
	courses := newFakeCourseStore()
	sections := newFakeSectionStore(students)

	require.NoError(t, courses.Save(ctx, &models.Course{Name: "A", Code: "A1", Modality: models.ModalityRemote}))
	require.NoError(t, courses.Save(ctx, &models.Course{Name: "B", Code: "B1", Modality: models.ModalityInPerson}))
	require.NoError(t, instructors.Save(ctx, &models.Instructor{Name: "João"}))
	require.NoError(t, students.Save(ctx, &models.Student{Name: "Pedro"}))
	require.NoError(t, students.Save(ctx, &models.Student{Name: "Ana"}))
	require.NoError(t, students.Save(ctx, &models.Student{Name: "Rui"}))
	require.NoError(t, sections.Save(ctx, &models.Section{Code: "TURMA001"}))

	svc := NewDashboardService(students, instructors, courses, sections)
	dashboard, err := svc.GetDashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), dashboard.TotalStudents)
	assert.Equal(t, int64(1), dashboard.TotalInstructors)
	assert.Equal(t, int64(2), dashboard.TotalCourses)
	assert.Equal(t, int64(1), dashboard.TotalSections)
}

func TestGetDashboardEmpty(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewDashboardService(students, newFakeInstructorStore(), newFakeCourseStore(), newFakeSectionStore(students))

	dashboard, err := svc.GetDashboard(context.Background())

	require.NoError(t, err)
	assert.Zero(t, dashboard.TotalStudents)
	assert.Zero(t, dashboard.TotalInstructors)
	assert.Zero(t, dashboard.TotalCourses)
	assert.Zero(t, dashboard.TotalSections)
}
