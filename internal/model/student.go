package model

import (
	"cmp"
	"strings"
)

// Student is a row of the students collection.
type Student struct {
	Code    string `json:"stud_code"`
	Name    string `json:"stud_name"`
	Surname string `json:"stud_surname"`
	Email   string `json:"stud_email"`
}

// FullName returns "<surname> <name>", the form used in every report.
func (s Student) FullName() string {
	return s.Surname + " " + s.Name
}

// RankedStudent pairs a student with their rounded average grade.
type RankedStudent struct {
	Student
	Average float64 `json:"average"`
}

// Compare orders ranked students by average descending, then surname, given
// name and stud_code ascending. It returns a negative number when r sorts
// before o.
func (r RankedStudent) Compare(o RankedStudent) int {
	if c := cmp.Compare(o.Average, r.Average); c != 0 {
		return c
	}
	if c := strings.Compare(r.Surname, o.Surname); c != 0 {
		return c
	}
	if c := strings.Compare(r.Name, o.Name); c != 0 {
		return c
	}
	return strings.Compare(r.Code, o.Code)
}
