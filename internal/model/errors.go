package model

import "errors"

var (
	// ErrNotFound reports a missing collection, a missing primary key or an
	// average over zero exams.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument reports a malformed request such as an unknown dbsize.
	ErrInvalidArgument = errors.New("invalid argument")
)
