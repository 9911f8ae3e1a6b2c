package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/stemsi/gradebook/internal/model"
	"github.com/stemsi/gradebook/internal/repository"
)

// TopStudentThreshold is the minimum rounded average of a top student.
const TopStudentThreshold = 28.0

// GradeService computes grade averages and the top-student ranking.
type GradeService struct {
	repo repository.Repository
	log  zerolog.Logger
}

// NewGradeService creates a new GradeService.
func NewGradeService(repo repository.Repository, log zerolog.Logger) *GradeService {
	return &GradeService{
		repo: repo,
		log:  log.With().Str("component", "grade_service").Logger(),
	}
}

// StudentAverage returns the rounded mean grade of the exams taken by a student.
func (s *GradeService) StudentAverage(ctx context.Context, studCode string, size model.DBSize) (float64, error) {
	exams, err := s.repo.Exams(ctx, size)
	if err != nil {
		return 0, err
	}

	var acc gradeAccumulator
	for _, e := range exams {
		if e.StudentCode == studCode {
			acc.add(e.Grade)
		}
	}
	return acc.average("student", studCode)
}

// CourseAverage returns the rounded mean grade of the exams of a course.
// Only the course_code field of an exam is matched.
func (s *GradeService) CourseAverage(ctx context.Context, courseCode string, size model.DBSize) (float64, error) {
	exams, err := s.repo.Exams(ctx, size)
	if err != nil {
		return 0, err
	}

	var acc gradeAccumulator
	for _, e := range exams {
		if e.CourseCode == courseCode {
			acc.add(e.Grade)
		}
	}
	return acc.average("course", courseCode)
}

// TeacherAverage returns the rounded mean grade over the exams of every course
// owned by a teacher.
func (s *GradeService) TeacherAverage(ctx context.Context, teachCode string, size model.DBSize) (float64, error) {
	snap, err := repository.LoadSnapshot(ctx, s.repo, size, model.EntityCourses, model.EntityExams)
	if err != nil {
		return 0, err
	}

	owned := make(map[string]struct{})
	for _, c := range snap.Courses {
		if c.TeacherCode == teachCode {
			owned[c.Code] = struct{}{}
		}
	}

	var acc gradeAccumulator
	for _, e := range snap.Exams {
		if _, ok := owned[e.CourseCode]; ok {
			acc.add(e.Grade)
		}
	}

	s.log.Debug().
		Str("teach_code", teachCode).
		Int("courses", len(owned)).
		Int("exams", acc.count).
		Msg("Teacher average computed")

	return acc.average("teacher", teachCode)
}

// RankedStudents returns every student whose rounded average reaches
// TopStudentThreshold, ordered by model.RankedStudent.Compare. Students
// without exams have no average and never qualify.
func (s *GradeService) RankedStudents(ctx context.Context, size model.DBSize) ([]model.RankedStudent, error) {
	snap, err := repository.LoadSnapshot(ctx, s.repo, size, model.EntityStudents, model.EntityExams)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[string]*gradeAccumulator, len(snap.Students))
	for _, e := range snap.Exams {
		acc, ok := byStudent[e.StudentCode]
		if !ok {
			acc = &gradeAccumulator{}
			byStudent[e.StudentCode] = acc
		}
		acc.add(e.Grade)
	}

	ranked := make([]model.RankedStudent, 0)
	for _, st := range snap.Students {
		acc, ok := byStudent[st.Code]
		if !ok {
			continue
		}
		avg, err := acc.average("student", st.Code)
		if err != nil {
			return nil, err
		}
		if avg >= TopStudentThreshold {
			ranked = append(ranked, model.RankedStudent{Student: st, Average: avg})
		}
	}

	slices.SortFunc(ranked, model.RankedStudent.Compare)
	return ranked, nil
}

// TopStudents returns the stud_codes of RankedStudents in rank order.
func (s *GradeService) TopStudents(ctx context.Context, size model.DBSize) ([]string, error) {
	ranked, err := s.RankedStudents(ctx, size)
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(ranked))
	for i, r := range ranked {
		codes[i] = r.Code
	}
	return codes, nil
}

type gradeAccumulator struct {
	sum   int
	count int
}

func (a *gradeAccumulator) add(g model.Grade) {
	a.sum += int(g)
	a.count++
}

// average fails with ErrNotFound when nothing was accumulated.
func (a *gradeAccumulator) average(kind, code string) (float64, error) {
	if a.count == 0 {
		return 0, fmt.Errorf("%w: no exams for %s %q", model.ErrNotFound, kind, code)
	}
	return roundAverage(float64(a.sum) / float64(a.count)), nil
}

// roundAverage rounds to two decimals, ties to even on the exact binary value.
func roundAverage(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
