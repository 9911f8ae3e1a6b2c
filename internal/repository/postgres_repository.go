package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/gradebook/internal/model"
)

// PostgresRepository reads collections from PostgreSQL. Every table carries a
// dbsize column; dataset_collections records which (dbsize, entity) pairs
// have been loaded so an empty collection can be told apart from a missing one.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Students retrieves the students of a dataset in load order.
func (r *PostgresRepository) Students(ctx context.Context, size model.DBSize) ([]model.Student, error) {
	if err := r.requireCollection(ctx, size, model.EntityStudents); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT stud_code, stud_name, stud_surname, stud_email
		 FROM students WHERE dbsize = $1 ORDER BY position`, string(size),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.Code, &s.Name, &s.Surname, &s.Email); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Teachers retrieves the teachers of a dataset in load order.
func (r *PostgresRepository) Teachers(ctx context.Context, size model.DBSize) ([]model.Teacher, error) {
	if err := r.requireCollection(ctx, size, model.EntityTeachers); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT teach_code, teach_name, teach_surname, teach_email
		 FROM teachers WHERE dbsize = $1 ORDER BY position`, string(size),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.Code, &t.Name, &t.Surname, &t.Email); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// Courses retrieves the courses of a dataset in load order.
func (r *PostgresRepository) Courses(ctx context.Context, size model.DBSize) ([]model.Course, error) {
	if err := r.requireCollection(ctx, size, model.EntityCourses); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT course_code, course_name, teach_code
		 FROM courses WHERE dbsize = $1 ORDER BY position`, string(size),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.Code, &c.Name, &c.TeacherCode); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Exams retrieves the exams of a dataset in load order.
func (r *PostgresRepository) Exams(ctx context.Context, size model.DBSize) ([]model.Exam, error) {
	if err := r.requireCollection(ctx, size, model.EntityExams); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT exam_code, course_code, stud_code, exam_date, grade
		 FROM exams WHERE dbsize = $1 ORDER BY position`, string(size),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		var grade int
		if err := rows.Scan(&e.Code, &e.CourseCode, &e.StudentCode, &e.Date, &grade); err != nil {
			return nil, err
		}
		e.Grade = model.Grade(grade)
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// ReplaceDataset swaps the stored copy of one dataset instance for ds inside a
// single transaction and marks all four collections as present.
func (r *PostgresRepository) ReplaceDataset(ctx context.Context, size model.DBSize, ds *model.Dataset) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// 1. Clear the previous copy (children first)
	for _, table := range []string{"exams", "courses", "teachers", "students", "dataset_collections"} {
		if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE dbsize = $1", table), string(size)); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	// 2. Bulk copy every collection
	copies := []struct {
		table   string
		columns []string
		rows    [][]interface{}
	}{
		{"students", []string{"dbsize", "position", "stud_code", "stud_name", "stud_surname", "stud_email"}, studentRows(size, ds.Students)},
		{"teachers", []string{"dbsize", "position", "teach_code", "teach_name", "teach_surname", "teach_email"}, teacherRows(size, ds.Teachers)},
		{"courses", []string{"dbsize", "position", "course_code", "course_name", "teach_code"}, courseRows(size, ds.Courses)},
		{"exams", []string{"dbsize", "position", "exam_code", "course_code", "stud_code", "exam_date", "grade"}, examRows(size, ds.Exams)},
	}
	for _, c := range copies {
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{c.table}, c.columns, pgx.CopyFromRows(c.rows)); err != nil {
			return fmt.Errorf("copy %s: %w", c.table, err)
		}
	}

	// 3. Register the collections
	for _, entity := range model.Entities {
		if _, err := tx.Exec(ctx,
			`INSERT INTO dataset_collections (dbsize, entity) VALUES ($1, $2)`,
			string(size), string(entity),
		); err != nil {
			return fmt.Errorf("register %s: %w", entity, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) requireCollection(ctx context.Context, size model.DBSize, entity model.Entity) error {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM dataset_collections WHERE dbsize = $1 AND entity = $2)`,
		string(size), string(entity),
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return collectionNotFound(size, entity)
	}
	return nil
}

func studentRows(size model.DBSize, students []model.Student) [][]interface{} {
	rows := make([][]interface{}, len(students))
	for i, s := range students {
		rows[i] = []interface{}{string(size), i, s.Code, s.Name, s.Surname, s.Email}
	}
	return rows
}

func teacherRows(size model.DBSize, teachers []model.Teacher) [][]interface{} {
	rows := make([][]interface{}, len(teachers))
	for i, t := range teachers {
		rows[i] = []interface{}{string(size), i, t.Code, t.Name, t.Surname, t.Email}
	}
	return rows
}

func courseRows(size model.DBSize, courses []model.Course) [][]interface{} {
	rows := make([][]interface{}, len(courses))
	for i, c := range courses {
		rows[i] = []interface{}{string(size), i, c.Code, c.Name, c.TeacherCode}
	}
	return rows
}

func examRows(size model.DBSize, exams []model.Exam) [][]interface{} {
	rows := make([][]interface{}, len(exams))
	for i, e := range exams {
		rows[i] = []interface{}{string(size), i, e.Code, e.CourseCode, e.StudentCode, e.Date, int(e.Grade)}
	}
	return rows
}
