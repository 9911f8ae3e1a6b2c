package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stemsi/gradebook/internal/model"
)

func TestFileRepositoryReadsCollections(t *testing.T) {
	repo := NewFileRepository("testdata")
	ctx := context.Background()

	students, err := repo.Students(ctx, model.DBSizeSmall)
	if err != nil {
		t.Fatalf("Students: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("expected 3 students, got %d", len(students))
	}
	if students[0].Code != "1001" || students[0].Surname != "Rossi" || students[0].Name != "Anna" {
		t.Errorf("unexpected first student: %+v", students[0])
	}

	courses, err := repo.Courses(ctx, model.DBSizeSmall)
	if err != nil {
		t.Fatalf("Courses: %v", err)
	}
	if courses[1].TeacherCode != "T02" {
		t.Errorf("course C2 teacher = %q, want T02", courses[1].TeacherCode)
	}

	exams, err := repo.Exams(ctx, model.DBSizeSmall)
	if err != nil {
		t.Fatalf("Exams: %v", err)
	}
	wantGrades := []model.Grade{30, 24, 28}
	for i, e := range exams {
		if e.Grade != wantGrades[i] {
			t.Errorf("exam %s grade = %d, want %d", e.Code, e.Grade, wantGrades[i])
		}
	}
}

func TestFileRepositoryMissingDataset(t *testing.T) {
	repo := NewFileRepository("testdata")

	_, err := repo.Exams(context.Background(), model.DBSizeMedium)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileRepositoryRejectsMalformedGrade(t *testing.T) {
	dir := t.TempDir()
	body := `[{"exam_code":"E1","course_code":"C1","stud_code":"1","date":"2021-01-01","grade":"thirty"}]`
	if err := os.WriteFile(filepath.Join(dir, "large_exams.json"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileRepository(dir).Exams(context.Background(), model.DBSizeLarge)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, model.ErrNotFound) {
		t.Fatalf("decode error must not be reported as not found: %v", err)
	}
}

func TestFileRepositoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFileRepository("testdata").Students(ctx, model.DBSizeSmall); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
