package service

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/gradebook/internal/model"
	"github.com/stemsi/gradebook/internal/repository"
)

// Gradebook is the public query surface. Every operation takes the raw
// dbsize selector, loads what it needs from the repository and keeps no
// state between calls.
type Gradebook struct {
	grades  *GradeService
	reports *ReportService
	log     zerolog.Logger
}

// NewGradebook wires the grade and report services over repo.
func NewGradebook(repo repository.Repository, log zerolog.Logger) *Gradebook {
	grades := NewGradeService(repo, log)
	return &Gradebook{
		grades:  grades,
		reports: NewReportService(repo, grades, log),
		log:     log.With().Str("component", "gradebook").Logger(),
	}
}

// StudentAverage returns the average grade of a student.
func (g *Gradebook) StudentAverage(ctx context.Context, studCode, dbsize string) (float64, error) {
	size, err := model.ParseDBSize(dbsize)
	if err != nil {
		return 0, err
	}
	return g.grades.StudentAverage(ctx, studCode, size)
}

// CourseAverage returns the average grade of a course.
func (g *Gradebook) CourseAverage(ctx context.Context, courseCode, dbsize string) (float64, error) {
	size, err := model.ParseDBSize(dbsize)
	if err != nil {
		return 0, err
	}
	return g.grades.CourseAverage(ctx, courseCode, size)
}

// TeacherAverage returns the average grade over all courses of a teacher.
func (g *Gradebook) TeacherAverage(ctx context.Context, teachCode, dbsize string) (float64, error) {
	size, err := model.ParseDBSize(dbsize)
	if err != nil {
		return 0, err
	}
	return g.grades.TeacherAverage(ctx, teachCode, size)
}

// TopStudents returns the stud_codes of students averaging at least 28.
func (g *Gradebook) TopStudents(ctx context.Context, dbsize string) ([]string, error) {
	size, err := model.ParseDBSize(dbsize)
	if err != nil {
		return nil, err
	}
	return g.grades.TopStudents(ctx, size)
}

// PrintRecordedExams writes the exam list of a student to w and returns the
// number of exam rows.
func (g *Gradebook) PrintRecordedExams(ctx context.Context, studCode, dbsize string, w io.Writer) (int, error) {
	size, err := model.ParseDBSize(dbsize)
	if err != nil {
		return 0, err
	}
	text, count, err := g.reports.RecordedExams(ctx, studCode, size)
	if err != nil {
		return 0, err
	}
	if err := g.emit(w, "recorded_exams", text); err != nil {
		return 0, err
	}
	return count, nil
}

// PrintTopStudents writes the top-student roster to w and returns the number
// of rows.
func (g *Gradebook) PrintTopStudents(ctx context.Context, dbsize string, w io.Writer) (int, error) {
	size, err := model.ParseDBSize(dbsize)
	if err != nil {
		return 0, err
	}
	text, count, err := g.reports.TopStudents(ctx, size)
	if err != nil {
		return 0, err
	}
	if err := g.emit(w, "top_students", text); err != nil {
		return 0, err
	}
	return count, nil
}

// PrintExamRecord writes the description of one exam to w and returns its
// grade.
func (g *Gradebook) PrintExamRecord(ctx context.Context, examCode, dbsize string, w io.Writer) (int, error) {
	size, err := model.ParseDBSize(dbsize)
	if err != nil {
		return 0, err
	}
	text, grade, err := g.reports.ExamRecord(ctx, examCode, size)
	if err != nil {
		return 0, err
	}
	if err := g.emit(w, "exam_record", text); err != nil {
		return 0, err
	}
	return grade, nil
}

// emit hands a fully rendered report to the sink in a single write.
func (g *Gradebook) emit(w io.Writer, name, text string) error {
	start := time.Now()
	if _, err := io.WriteString(w, text); err != nil {
		g.log.Error().Err(err).Str("report", name).Msg("Failed to write report")
		return err
	}
	g.log.Debug().
		Str("report", name).
		Int("bytes", len(text)).
		Dur("elapsed", time.Since(start)).
		Msg("Report written")
	return nil
}
