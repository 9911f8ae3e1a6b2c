package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/gradebook/internal/model"
	"github.com/stemsi/gradebook/internal/repository"
	"github.com/stemsi/gradebook/internal/service"
)

func newGradebook() *service.Gradebook {
	return service.NewGradebook(repository.NewFileRepository("../../internal/repository/testdata"), zerolog.Nop())
}

func TestRunPrintsToStdout(t *testing.T) {
	gb := newGradebook()
	opts := options{size: "small"}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"student-average", "1001"}, "27.0\n"},
		{[]string{"course-average", "C2"}, "24.0\n"},
		{[]string{"teacher-average", "T01"}, "29.0\n"},
		{[]string{"top-students"}, "1002\n"},
		{[]string{"top-report"}, "Bianchi Luca\t28.0\n"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if err := run(context.Background(), gb, opts, tt.args, &out); err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if out.String() != tt.want {
			t.Errorf("%v: output %q, want %q", tt.args, out.String(), tt.want)
		}
	}
}

func TestRunWritesReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.txt")
	var out bytes.Buffer

	err := run(context.Background(), newGradebook(), options{size: "small", out: path}, []string{"exam-record", "E1"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "30\n" {
		t.Errorf("stdout = %q, want grade", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	want := "The student Rossi Anna, student number 1001, took on 2021-01-15 the Analisi Matematica exam with the teacher Ferrari Marco with grade 30."
	if string(data) != want {
		t.Errorf("file = %q", data)
	}
}

func TestRunLeavesNoFileOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exams.txt")

	err := run(context.Background(), newGradebook(), options{size: "small", out: path}, []string{"recorded-exams", "9999"}, &bytes.Buffer{})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("report file created on failure")
	}
}

func TestRunUsageErrors(t *testing.T) {
	gb := newGradebook()
	for _, args := range [][]string{nil, {"bogus"}, {"exam-record"}, {"student-average", "1", "2"}} {
		if err := run(context.Background(), gb, options{size: "small"}, args, &bytes.Buffer{}); !errors.Is(err, errUsage) {
			t.Errorf("%v: expected usage error, got %v", args, err)
		}
	}

	err := run(context.Background(), gb, options{size: "tiny"}, []string{"top-report"}, &bytes.Buffer{})
	if !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("invalid size: expected ErrInvalidArgument, got %v", err)
	}
}
