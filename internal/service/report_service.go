package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/gradebook/internal/model"
	"github.com/stemsi/gradebook/internal/report"
	"github.com/stemsi/gradebook/internal/repository"
)

// ReportService gathers the records behind each text report and renders it.
type ReportService struct {
	repo   repository.Repository
	grades *GradeService
	log    zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(repo repository.Repository, grades *GradeService, log zerolog.Logger) *ReportService {
	return &ReportService{
		repo:   repo,
		grades: grades,
		log:    log.With().Str("component", "report_service").Logger(),
	}
}

// RecordedExams renders the exam list of a student and returns the row count.
func (s *ReportService) RecordedExams(ctx context.Context, studCode string, size model.DBSize) (string, int, error) {
	snap, err := repository.LoadSnapshot(ctx, s.repo, size,
		model.EntityStudents, model.EntityCourses, model.EntityExams)
	if err != nil {
		return "", 0, err
	}

	student, err := snap.Student(studCode)
	if err != nil {
		return "", 0, err
	}

	var rows []report.ExamRow
	for _, e := range snap.Exams {
		if e.StudentCode != studCode {
			continue
		}
		course, err := snap.Course(e.CourseCode)
		if err != nil {
			return "", 0, fmt.Errorf("exam %s: %w", e.Code, err)
		}
		rows = append(rows, report.ExamRow{CourseName: course.Name, Date: e.Date, Grade: e.Grade})
	}

	text, count := report.RecordedExams(student, rows)
	s.log.Debug().Str("stud_code", studCode).Int("exams", count).Msg("Recorded exams rendered")
	return text, count, nil
}

// TopStudents renders the top-student roster and returns the row count.
func (s *ReportService) TopStudents(ctx context.Context, size model.DBSize) (string, int, error) {
	ranked, err := s.grades.RankedStudents(ctx, size)
	if err != nil {
		return "", 0, err
	}

	text, count := report.TopStudents(ranked)
	return text, count, nil
}

// ExamRecord renders the description of one exam and returns its grade.
// Any missing exam, student, course or teacher fails with ErrNotFound.
func (s *ReportService) ExamRecord(ctx context.Context, examCode string, size model.DBSize) (string, int, error) {
	snap, err := repository.LoadSnapshot(ctx, s.repo, size, model.Entities...)
	if err != nil {
		return "", 0, err
	}

	exam, err := snap.Exam(examCode)
	if err != nil {
		return "", 0, err
	}
	student, err := snap.Student(exam.StudentCode)
	if err != nil {
		return "", 0, fmt.Errorf("exam %s: %w", examCode, err)
	}
	course, err := snap.Course(exam.CourseCode)
	if err != nil {
		return "", 0, fmt.Errorf("exam %s: %w", examCode, err)
	}
	teacher, err := snap.Teacher(course.TeacherCode)
	if err != nil {
		return "", 0, fmt.Errorf("course %s: %w", course.Code, err)
	}

	text, grade := report.ExamRecord(exam, student, course, teacher)
	return text, grade, nil
}
