package model

// Course is a row of the courses collection. Exactly one teacher owns a course.
type Course struct {
	Code        string `json:"course_code"`
	Name        string `json:"course_name"`
	TeacherCode string `json:"teach_code"`
}
