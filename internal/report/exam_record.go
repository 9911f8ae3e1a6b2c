package report

import (
	"fmt"

	"github.com/stemsi/gradebook/internal/model"
)

// ExamRecord renders the single-sentence description of one exam. The text
// has no trailing newline. The grade is returned alongside for callers that
// need the numeric value.
func ExamRecord(exam model.Exam, student model.Student, course model.Course, teacher model.Teacher) (string, int) {
	text := fmt.Sprintf(
		"The student %s %s, student number %s, took on %s the %s exam with the teacher %s %s with grade %d.",
		student.Surname, student.Name, student.Code,
		exam.Date, course.Name,
		teacher.Surname, teacher.Name,
		exam.Grade,
	)
	return text, int(exam.Grade)
}
