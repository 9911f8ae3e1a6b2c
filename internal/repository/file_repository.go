package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/stemsi/gradebook/internal/model"
)

// FileRepository reads collections from UTF-8 JSON files named
// <size>_<entity>.json inside a directory.
type FileRepository struct {
	dir string
}

// NewFileRepository creates a new FileRepository rooted at dir.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

// Path returns the file backing a collection.
func (r *FileRepository) Path(size model.DBSize, entity model.Entity) string {
	return filepath.Join(r.dir, fmt.Sprintf("%s_%s.json", size, entity))
}

// Students reads <size>_students.json.
func (r *FileRepository) Students(ctx context.Context, size model.DBSize) ([]model.Student, error) {
	var rows []model.Student
	if err := r.read(ctx, size, model.EntityStudents, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Teachers reads <size>_teachers.json.
func (r *FileRepository) Teachers(ctx context.Context, size model.DBSize) ([]model.Teacher, error) {
	var rows []model.Teacher
	if err := r.read(ctx, size, model.EntityTeachers, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Courses reads <size>_courses.json.
func (r *FileRepository) Courses(ctx context.Context, size model.DBSize) ([]model.Course, error) {
	var rows []model.Course
	if err := r.read(ctx, size, model.EntityCourses, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Exams reads <size>_exams.json.
func (r *FileRepository) Exams(ctx context.Context, size model.DBSize) ([]model.Exam, error) {
	var rows []model.Exam
	if err := r.read(ctx, size, model.EntityExams, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FileRepository) read(ctx context.Context, size model.DBSize, entity model.Entity, dst interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(r.Path(size, entity))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return collectionNotFound(size, entity)
		}
		return fmt.Errorf("read %s_%s: %w", size, entity, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s_%s: %w", size, entity, err)
	}
	return nil
}
