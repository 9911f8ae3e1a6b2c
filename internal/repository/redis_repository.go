package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stemsi/gradebook/internal/config"
	"github.com/stemsi/gradebook/internal/model"
)

// RedisRepository reads collections stored as JSON arrays, one key per
// (dbsize, entity) pair.
type RedisRepository struct {
	rdb *redis.Client
}

// NewRedisRepository creates a new RedisRepository.
func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

// Students reads the students key of a dataset.
func (r *RedisRepository) Students(ctx context.Context, size model.DBSize) ([]model.Student, error) {
	var rows []model.Student
	if err := r.get(ctx, size, model.EntityStudents, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Teachers reads the teachers key of a dataset.
func (r *RedisRepository) Teachers(ctx context.Context, size model.DBSize) ([]model.Teacher, error) {
	var rows []model.Teacher
	if err := r.get(ctx, size, model.EntityTeachers, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Courses reads the courses key of a dataset.
func (r *RedisRepository) Courses(ctx context.Context, size model.DBSize) ([]model.Course, error) {
	var rows []model.Course
	if err := r.get(ctx, size, model.EntityCourses, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Exams reads the exams key of a dataset.
func (r *RedisRepository) Exams(ctx context.Context, size model.DBSize) ([]model.Exam, error) {
	var rows []model.Exam
	if err := r.get(ctx, size, model.EntityExams, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceDataset writes all four collections of ds in one MULTI/EXEC block.
func (r *RedisRepository) ReplaceDataset(ctx context.Context, size model.DBSize, ds *model.Dataset) error {
	payloads := map[model.Entity]interface{}{
		model.EntityStudents: ds.Students,
		model.EntityTeachers: ds.Teachers,
		model.EntityCourses:  ds.Courses,
		model.EntityExams:    ds.Exams,
	}

	encoded := make(map[string][]byte, len(payloads))
	for entity, rows := range payloads {
		data, err := json.Marshal(rows)
		if err != nil {
			return fmt.Errorf("encode %s: %w", entity, err)
		}
		encoded[config.DatasetKey.CollectionKey(string(size), string(entity))] = data
	}

	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, data := range encoded {
			pipe.Set(ctx, key, data, 0)
		}
		return nil
	})
	return err
}

func (r *RedisRepository) get(ctx context.Context, size model.DBSize, entity model.Entity, dst interface{}) error {
	key := config.DatasetKey.CollectionKey(string(size), string(entity))

	data, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return collectionNotFound(size, entity)
		}
		return fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
