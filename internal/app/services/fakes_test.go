package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/educonnect/backend/internal/app/models"
	"github.com/educonnect/backend/internal/pkg/apperrors"
)

// In-memory stores backing the service tests. They mirror the persistence
// gateway contract: FindByID returns (nil, nil) when absent, Save assigns ids
// on insert and overwrites on update, DeleteByID assumes the caller already
// checked existence.

type fakeCourseStore struct {
	byID   map[int64]*models.Course
	nextID int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{byID: make(map[int64]*models.Course)}
}

func (f *fakeCourseStore) FindAll(ctx context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseStore) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	return f.byID[id], nil
}

func (f *fakeCourseStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

// Save enforces code uniqueness the way the real store's constraint does.
func (f *fakeCourseStore) Save(ctx context.Context, course *models.Course) error {
	for _, existing := range f.byID {
		if existing.Code == course.Code && existing.ID != course.ID {
			return apperrors.NewCustomError(apperrors.ErrDuplicateResource, "course code already exists")
		}
	}
	if course.ID == 0 {
		f.nextID++
		course.ID = f.nextID
	}
	f.byID[course.ID] = course
	return nil
}

func (f *fakeCourseStore) DeleteByID(ctx context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeCourseStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeInstructorStore struct {
	byID   map[int64]*models.Instructor
	nextID int64
}

func newFakeInstructorStore() *fakeInstructorStore {
	return &fakeInstructorStore{byID: make(map[int64]*models.Instructor)}
}

func (f *fakeInstructorStore) FindAll(ctx context.Context) ([]*models.Instructor, error) {
	out := make([]*models.Instructor, 0, len(f.byID))
	for _, i := range f.byID {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeInstructorStore) FindByID(ctx context.Context, id int64) (*models.Instructor, error) {
	return f.byID[id], nil
}

func (f *fakeInstructorStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeInstructorStore) Save(ctx context.Context, instructor *models.Instructor) error {
	if instructor.ID == 0 {
		f.nextID++
		instructor.ID = f.nextID
	}
	f.byID[instructor.ID] = instructor
	return nil
}

func (f *fakeInstructorStore) DeleteByID(ctx context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeInstructorStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeStudentStore struct {
	byID   map[int64]*models.Student
	nextID int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{byID: make(map[int64]*models.Student)}
}

func (f *fakeStudentStore) FindAll(ctx context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentStore) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	return f.byID[id], nil
}

func (f *fakeStudentStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeStudentStore) Save(ctx context.Context, student *models.Student) error {
	if student.ID == 0 {
		f.nextID++
		student.ID = f.nextID
	}
	f.byID[student.ID] = student
	return nil
}

func (f *fakeStudentStore) DeleteByID(ctx context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeStudentStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

// fakeSectionStore enforces roster membership against a student store the way
// the real one relies on referential constraints: a roster entry pointing at a
// missing student rejects the whole save.
type fakeSectionStore struct {
	byID     map[int64]*models.Section
	nextID   int64
	students *fakeStudentStore
}

func newFakeSectionStore(students *fakeStudentStore) *fakeSectionStore {
	return &fakeSectionStore{byID: make(map[int64]*models.Section), students: students}
}

func (f *fakeSectionStore) FindAll(ctx context.Context) ([]*models.Section, error) {
	out := make([]*models.Section, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSectionStore) FindByID(ctx context.Context, id int64) (*models.Section, error) {
	return f.byID[id], nil
}

func (f *fakeSectionStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeSectionStore) Save(ctx context.Context, section *models.Section) error {
	if f.students != nil {
		roster := make([]*models.Student, 0, len(section.Students))
		for _, stub := range section.Students {
			student, ok := f.students.byID[stub.ID]
			if !ok {
				return apperrors.NewReferenceNotFoundError(
					fmt.Sprintf("section roster references a missing student (%d)", stub.ID))
			}
			roster = append(roster, student)
		}
		section.Students = roster
	}
	if section.ID == 0 {
		f.nextID++
		section.ID = f.nextID
	}
	f.byID[section.ID] = section
	return nil
}

func (f *fakeSectionStore) DeleteByID(ctx context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeSectionStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}
