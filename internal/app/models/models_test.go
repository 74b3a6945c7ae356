package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCourseSummary(t *testing.T) {
	tests := []struct {
		name   string
		course Course
		want   string
	}{
		{
			name: "in-person course includes room",
			course: Course{
				Name:       "Sistemas de Informação",
				Code:       "SI001",
				TotalHours: 3600,
				Modality:   ModalityInPerson,
				Room:       strPtr("Sala 101"),
			},
			want: "Course: Sistemas de Informação | Code: SI001 | Hours: 3600h | Modality: In-person | Room: Sala 101",
		},
		{
			name: "remote course includes platform",
			course: Course{
				Name:       "Administração",
				Code:       "ADM001",
				TotalHours: 3000,
				Modality:   ModalityRemote,
				Platform:   strPtr("Plataforma EduConnect"),
			},
			want: "Course: Administração | Code: ADM001 | Hours: 3000h | Modality: Remote | Platform: Plataforma EduConnect",
		},
		{
			name: "in-person course with no room keeps the label",
			course: Course{
				Name:       "Engenharia",
				Code:       "ENG001",
				TotalHours: 4000,
				Modality:   ModalityInPerson,
			},
			want: "Course: Engenharia | Code: ENG001 | Hours: 4000h | Modality: In-person | Room: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.course.Summary())
		})
	}
}

func TestModalityIsValid(t *testing.T) {
	assert.True(t, ModalityInPerson.IsValid())
	assert.True(t, ModalityRemote.IsValid())
	assert.False(t, Modality("HYBRID").IsValid())
	assert.False(t, Modality("").IsValid())
}

func TestInstructorSummary(t *testing.T) {
	instructor := Instructor{
		Name:               "João Silva",
		Specialty:          "TI",
		RegistrationNumber: "REG001",
	}
	assert.Equal(t, "Instructor: João Silva | Registration: REG001 | Specialty: TI", instructor.Summary())
}

func TestStudentSummary(t *testing.T) {
	t.Run("with course", func(t *testing.T) {
		student := Student{
			Name:             "Pedro Oliveira",
			EnrollmentNumber: "MAT001",
			Course:           &Course{Name: "Sistemas de Informação"},
		}
		assert.Equal(t, "Student: Pedro Oliveira | Enrollment: MAT001 | Course: Sistemas de Informação", student.Summary())
	})

	t.Run("without course uses placeholder", func(t *testing.T) {
		student := Student{
			Name:             "Ana Costa",
			EnrollmentNumber: "MAT002",
		}
		assert.Equal(t, "Student: Ana Costa | Enrollment: MAT002 | Course: N/A", student.Summary())
	})
}

func TestSectionSummary(t *testing.T) {
	section := Section{
		Code:       "TURMA001",
		Instructor: &Instructor{Name: "João Silva"},
		Course:     &Course{Name: "Sistemas de Informação"},
	}
	section.AddStudent(&Student{Name: "Pedro Oliveira"})

	assert.Equal(t, "Section TURMA001 | Instructor: João Silva | Course: Sistemas de Informação | Students: 1", section.Summary())
}

func TestSectionSummaryWithoutRelations(t *testing.T) {
	section := Section{Code: "TURMA002"}
	assert.Equal(t, "Section TURMA002 | Instructor: N/A | Course: N/A | Students: 0", section.Summary())
}

func TestSectionAddStudentPreservesOrder(t *testing.T) {
	section := Section{Code: "TURMA003"}
	section.AddStudent(&Student{ID: 2})
	section.AddStudent(&Student{ID: 1})
	section.AddStudent(&Student{ID: 3})

	ids := make([]int64, 0, len(section.Students))
	for _, s := range section.Students {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{2, 1, 3}, ids)
}
