package repository

import (
	"context"
	"fmt"

	"github.com/stemsi/gradebook/internal/model"
)

// Repository exposes the four read-only collections of every dataset instance.
// Each call returns the full collection in source order, or an error wrapping
// model.ErrNotFound when the (size, entity) collection does not exist.
type Repository interface {
	Students(ctx context.Context, size model.DBSize) ([]model.Student, error)
	Teachers(ctx context.Context, size model.DBSize) ([]model.Teacher, error)
	Courses(ctx context.Context, size model.DBSize) ([]model.Course, error)
	Exams(ctx context.Context, size model.DBSize) ([]model.Exam, error)
}

// LoadDataset reads all four collections of one dataset instance.
func LoadDataset(ctx context.Context, repo Repository, size model.DBSize) (*model.Dataset, error) {
	snap, err := LoadSnapshot(ctx, repo, size, model.Entities...)
	if err != nil {
		return nil, err
	}
	return &model.Dataset{
		Students: snap.Students,
		Teachers: snap.Teachers,
		Courses:  snap.Courses,
		Exams:    snap.Exams,
	}, nil
}

func collectionNotFound(size model.DBSize, entity model.Entity) error {
	return fmt.Errorf("%w: collection %s_%s", model.ErrNotFound, size, entity)
}
