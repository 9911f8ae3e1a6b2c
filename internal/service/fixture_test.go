package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/gradebook/internal/model"
)

// memoryRepository serves fixed datasets; a size without a dataset is missing.
type memoryRepository struct {
	datasets map[model.DBSize]*model.Dataset
	loads    int
}

func (r *memoryRepository) dataset(size model.DBSize, entity model.Entity) (*model.Dataset, error) {
	r.loads++
	ds, ok := r.datasets[size]
	if !ok {
		return nil, notFound(size, entity)
	}
	return ds, nil
}

func (r *memoryRepository) Students(_ context.Context, size model.DBSize) ([]model.Student, error) {
	ds, err := r.dataset(size, model.EntityStudents)
	if err != nil {
		return nil, err
	}
	return ds.Students, nil
}

func (r *memoryRepository) Teachers(_ context.Context, size model.DBSize) ([]model.Teacher, error) {
	ds, err := r.dataset(size, model.EntityTeachers)
	if err != nil {
		return nil, err
	}
	return ds.Teachers, nil
}

func (r *memoryRepository) Courses(_ context.Context, size model.DBSize) ([]model.Course, error) {
	ds, err := r.dataset(size, model.EntityCourses)
	if err != nil {
		return nil, err
	}
	return ds.Courses, nil
}

func (r *memoryRepository) Exams(_ context.Context, size model.DBSize) ([]model.Exam, error) {
	ds, err := r.dataset(size, model.EntityExams)
	if err != nil {
		return nil, err
	}
	return ds.Exams, nil
}

type missingCollection struct {
	size   model.DBSize
	entity model.Entity
}

func (m missingCollection) Error() string { return string(m.size) + "_" + string(m.entity) + " missing" }
func (m missingCollection) Unwrap() error { return model.ErrNotFound }

func notFound(size model.DBSize, entity model.Entity) error {
	return missingCollection{size: size, entity: entity}
}

// smallDataset:
//
//	S1 Rossi Anna        30, 24       -> 27.0
//	S2 Bianchi Luca      28           -> 28.0
//	S3 Esposito Chiara   30, 29       -> 29.5
//	S4 Bianchi Aldo      28           -> 28.0
//	S0 Bianchi Aldo      28           -> 28.0
//	S7 Verdi Nadia       no exams
//	S8 Gallo Paolo       29, 28, 28   -> 28.33
func smallDataset() *model.Dataset {
	return &model.Dataset{
		Students: []model.Student{
			{Code: "S1", Name: "Anna", Surname: "Rossi", Email: "anna@example.org"},
			{Code: "S2", Name: "Luca", Surname: "Bianchi", Email: "luca@example.org"},
			{Code: "S3", Name: "Chiara", Surname: "Esposito", Email: "chiara@example.org"},
			{Code: "S4", Name: "Aldo", Surname: "Bianchi", Email: "aldo4@example.org"},
			{Code: "S0", Name: "Aldo", Surname: "Bianchi", Email: "aldo0@example.org"},
			{Code: "S7", Name: "Nadia", Surname: "Verdi", Email: "nadia@example.org"},
			{Code: "S8", Name: "Paolo", Surname: "Gallo", Email: "paolo@example.org"},
		},
		Teachers: []model.Teacher{
			{Code: "T1", Name: "Marco", Surname: "Ferrari", Email: "marco@example.org"},
			{Code: "T2", Name: "Giulia", Surname: "Ricci", Email: "giulia@example.org"},
			{Code: "T3", Name: "Elena", Surname: "Conti", Email: "elena@example.org"},
		},
		Courses: []model.Course{
			{Code: "C1", Name: "Analisi", TeacherCode: "T1"},
			{Code: "C2", Name: "Fisica", TeacherCode: "T2"},
			{Code: "C3", Name: "Chimica", TeacherCode: "T1"},
		},
		Exams: []model.Exam{
			{Code: "E1", CourseCode: "C1", StudentCode: "S1", Date: "2021-01-15", Grade: 30},
			{Code: "E2", CourseCode: "C2", StudentCode: "S1", Date: "2021-01-10", Grade: 24},
			{Code: "E3", CourseCode: "C1", StudentCode: "S2", Date: "2021-01-15", Grade: 28},
			{Code: "E4", CourseCode: "C3", StudentCode: "S3", Date: "2021-02-01", Grade: 30},
			{Code: "E5", CourseCode: "C2", StudentCode: "S3", Date: "2021-02-01", Grade: 29},
			{Code: "E6", CourseCode: "C3", StudentCode: "S4", Date: "2021-03-01", Grade: 28},
			{Code: "E7", CourseCode: "C1", StudentCode: "S0", Date: "2021-03-01", Grade: 28},
			{Code: "E8", CourseCode: "C1", StudentCode: "S8", Date: "2021-01-20", Grade: 29},
			{Code: "E9", CourseCode: "C2", StudentCode: "S8", Date: "2021-01-21", Grade: 28},
			{Code: "E10", CourseCode: "C3", StudentCode: "S8", Date: "2021-01-22", Grade: 28},
		},
	}
}

// mediumDataset holds dangling references: exam C1 (whose code collides with
// a course code) points at a missing course, M3 at a course whose teacher is
// missing and M4 at a missing student.
func mediumDataset() *model.Dataset {
	return &model.Dataset{
		Students: []model.Student{
			{Code: "S1", Name: "Anna", Surname: "Rossi", Email: "anna@example.org"},
		},
		Teachers: []model.Teacher{
			{Code: "T1", Name: "Marco", Surname: "Ferrari", Email: "marco@example.org"},
		},
		Courses: []model.Course{
			{Code: "C1", Name: "Analisi", TeacherCode: "T1"},
			{Code: "C2", Name: "Logica", TeacherCode: "T9"},
		},
		Exams: []model.Exam{
			{Code: "M1", CourseCode: "C1", StudentCode: "S1", Date: "2022-06-01", Grade: 30},
			{Code: "C1", CourseCode: "C9", StudentCode: "S1", Date: "2022-06-02", Grade: 18},
			{Code: "M3", CourseCode: "C2", StudentCode: "S1", Date: "2022-06-03", Grade: 26},
			{Code: "M4", CourseCode: "C1", StudentCode: "S9", Date: "2022-06-04", Grade: 21},
		},
	}
}

func newTestRepository() *memoryRepository {
	return &memoryRepository{datasets: map[model.DBSize]*model.Dataset{
		model.DBSizeSmall:  smallDataset(),
		model.DBSizeMedium: mediumDataset(),
	}}
}

func newTestGradebook() (*Gradebook, *memoryRepository) {
	repo := newTestRepository()
	return NewGradebook(repo, zerolog.Nop()), repo
}
