package model

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Grade is an integer exam grade. Source files encode it either as a JSON
// number or as a numeric string.
type Grade int

// UnmarshalJSON accepts 30, "30" and integral fractions such as 30.0.
func (g *Grade) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(bytes.Trim(bytes.TrimSpace(data), `"`)))
	if n, err := strconv.Atoi(raw); err == nil {
		*g = Grade(n)
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("grade %s: %w", data, err)
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("grade %s is not an integer", data)
	}
	*g = Grade(f)
	return nil
}

// Exam is a row of the exams collection: one grade given to one student for
// one course on one date.
type Exam struct {
	Code        string `json:"exam_code"`
	CourseCode  string `json:"course_code"`
	StudentCode string `json:"stud_code"`
	Date        string `json:"date"`
	Grade       Grade  `json:"grade"`
}
