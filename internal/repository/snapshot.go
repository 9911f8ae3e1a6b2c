package repository

import (
	"context"
	"fmt"

	"github.com/stemsi/gradebook/internal/model"
)

// Snapshot holds the collections one operation needs, indexed by primary key.
// It is built once per operation and never shared between calls.
type Snapshot struct {
	Size     model.DBSize
	Students []model.Student
	Teachers []model.Teacher
	Courses  []model.Course
	Exams    []model.Exam

	students map[string]int
	teachers map[string]int
	courses  map[string]int
	exams    map[string]int
}

// LoadSnapshot loads the requested entities from repo and indexes them.
func LoadSnapshot(ctx context.Context, repo Repository, size model.DBSize, entities ...model.Entity) (*Snapshot, error) {
	s := &Snapshot{Size: size}
	for _, entity := range entities {
		var err error
		switch entity {
		case model.EntityStudents:
			if s.Students, err = repo.Students(ctx, size); err == nil {
				s.students = index(s.Students, func(r model.Student) string { return r.Code })
			}
		case model.EntityTeachers:
			if s.Teachers, err = repo.Teachers(ctx, size); err == nil {
				s.teachers = index(s.Teachers, func(r model.Teacher) string { return r.Code })
			}
		case model.EntityCourses:
			if s.Courses, err = repo.Courses(ctx, size); err == nil {
				s.courses = index(s.Courses, func(r model.Course) string { return r.Code })
			}
		case model.EntityExams:
			if s.Exams, err = repo.Exams(ctx, size); err == nil {
				s.exams = index(s.Exams, func(r model.Exam) string { return r.Code })
			}
		default:
			err = fmt.Errorf("%w: unknown entity %q", model.ErrInvalidArgument, entity)
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entity, err)
		}
	}
	return s, nil
}

// Student looks up a student by stud_code.
func (s *Snapshot) Student(code string) (model.Student, error) {
	return lookup(s.Students, s.students, code, "student")
}

// Teacher looks up a teacher by teach_code.
func (s *Snapshot) Teacher(code string) (model.Teacher, error) {
	return lookup(s.Teachers, s.teachers, code, "teacher")
}

// Course looks up a course by course_code.
func (s *Snapshot) Course(code string) (model.Course, error) {
	return lookup(s.Courses, s.courses, code, "course")
}

// Exam looks up an exam by exam_code.
func (s *Snapshot) Exam(code string) (model.Exam, error) {
	return lookup(s.Exams, s.exams, code, "exam")
}

// index maps each primary key to the position of its first occurrence.
func index[T any](rows []T, key func(T) string) map[string]int {
	idx := make(map[string]int, len(rows))
	for i, r := range rows {
		k := key(r)
		if _, dup := idx[k]; !dup {
			idx[k] = i
		}
	}
	return idx
}

func lookup[T any](rows []T, idx map[string]int, code, kind string) (T, error) {
	var zero T
	if idx == nil {
		return zero, fmt.Errorf("%w: %s collection not loaded", model.ErrNotFound, kind)
	}
	i, ok := idx[code]
	if !ok {
		return zero, fmt.Errorf("%w: %s %q", model.ErrNotFound, kind, code)
	}
	return rows[i], nil
}
