package main

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

const migrationsDir = "../../migrations"

func TestMigrationsArePaired(t *testing.T) {
	ups, err := filepath.Glob(filepath.Join(migrationsDir, "*.up.sql"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ups) == 0 {
		t.Fatal("no migrations found")
	}
	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		if _, err := os.Stat(down); err != nil {
			t.Errorf("%s has no down migration", filepath.Base(up))
		}
	}
}

// Dates are stored as given by the source files, whatever their length.
func TestExamDateIsUnbounded(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(migrationsDir, "000001_create_dataset_tables.up.sql"))
	if err != nil {
		t.Fatal(err)
	}
	col := regexp.MustCompile(`(?m)^\s*exam_date\s+(\w+)`).FindSubmatch(data)
	if col == nil {
		t.Fatal("exams.exam_date column not found")
	}
	if got := strings.ToUpper(string(col[1])); got != "TEXT" {
		t.Errorf("exam_date type = %s, want TEXT", got)
	}
}
