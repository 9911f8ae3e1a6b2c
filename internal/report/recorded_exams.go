package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/stemsi/gradebook/internal/model"
)

// ExamRow is one line of the recorded-exams report.
type ExamRow struct {
	CourseName string
	Date       string
	Grade      model.Grade
}

// RecordedExams renders the exam list of one student: a header line followed
// by one "<course>\t<date>\t<grade>" row per exam. Course names are padded to
// the longest one so dates and grades line up. Rows are ordered by date, then
// course name, then grade. It returns the text and the number of rows.
func RecordedExams(student model.Student, rows []ExamRow) (string, int) {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b ExamRow) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		if c := strings.Compare(a.CourseName, b.CourseName); c != 0 {
			return c
		}
		return cmp.Compare(a.Grade, b.Grade)
	})

	names := make([]string, len(sorted))
	for i, r := range sorted {
		names[i] = r.CourseName
	}
	width := maxWidth(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Exams taken by student %s, student number %s\n", student.FullName(), student.Code)
	for _, r := range sorted {
		fmt.Fprintf(&b, "%s\t%s\t%d\n", padRight(r.CourseName, width), r.Date, r.Grade)
	}
	return b.String(), len(sorted)
}
