package model

import (
	"fmt"
	"strings"
)

// DBSize selects one of the dataset instances.
type DBSize string

const (
	DBSizeSmall  DBSize = "small"
	DBSizeMedium DBSize = "medium"
	DBSizeLarge  DBSize = "large"
)

// DBSizes lists every known dataset instance.
var DBSizes = []DBSize{DBSizeSmall, DBSizeMedium, DBSizeLarge}

// ParseDBSize converts a raw selector into a DBSize.
// Unknown values are rejected with ErrInvalidArgument.
func ParseDBSize(raw string) (DBSize, error) {
	switch s := DBSize(strings.TrimSpace(raw)); s {
	case DBSizeSmall, DBSizeMedium, DBSizeLarge:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown dbsize %q", ErrInvalidArgument, raw)
	}
}

// Entity names one of the four record collections of a dataset.
type Entity string

const (
	EntityStudents Entity = "students"
	EntityTeachers Entity = "teachers"
	EntityCourses  Entity = "courses"
	EntityExams    Entity = "exams"
)

// Entities lists the collections in load order (referenced before referencing).
var Entities = []Entity{EntityStudents, EntityTeachers, EntityCourses, EntityExams}

// Dataset is a full in-memory copy of one dataset instance.
type Dataset struct {
	Students []Student `json:"students"`
	Teachers []Teacher `json:"teachers"`
	Courses  []Course  `json:"courses"`
	Exams    []Exam    `json:"exams"`
}
