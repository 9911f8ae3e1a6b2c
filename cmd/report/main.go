// Command report answers gradebook queries from the command line.
//
//	report [-size small] [-out file] <command> [code]
//
// Commands: student-average, course-average, teacher-average, top-students,
// recorded-exams, top-report, exam-record.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/stemsi/gradebook/internal/config"
	"github.com/stemsi/gradebook/internal/database"
	"github.com/stemsi/gradebook/internal/logger"
	"github.com/stemsi/gradebook/internal/model"
	"github.com/stemsi/gradebook/internal/report"
	"github.com/stemsi/gradebook/internal/service"
)

var errUsage = errors.New("usage")

type options struct {
	size string
	out  string
}

func main() {
	var opts options
	flag.StringVar(&opts.size, "size", string(model.DBSizeSmall), "Dataset size: small, medium or large")
	flag.StringVar(&opts.out, "out", "", "Write reports to this file instead of stdout")
	flag.Usage = printUsage
	flag.Parse()

	cfg := config.Load()
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repo, closeRepo, err := database.OpenRepository(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open dataset repository")
	}
	defer closeRepo()

	gradebook := service.NewGradebook(repo, log)

	if err := run(ctx, gradebook, opts, flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			printUsage()
			os.Exit(2)
		}
		log.Error().Err(err).Strs("args", flag.Args()).Msg("Query failed")
		os.Exit(1)
	}
}

// run executes one command. Reports are rendered completely before anything
// is written to out or to the -out file.
func run(ctx context.Context, gb *service.Gradebook, opts options, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	command, rest := args[0], args[1:]

	code := func() (string, error) {
		if len(rest) != 1 {
			return "", fmt.Errorf("%w: %s needs exactly one code", errUsage, command)
		}
		return rest[0], nil
	}

	var (
		buf   bytes.Buffer
		value string
		err   error
	)

	switch command {
	case "student-average", "course-average", "teacher-average":
		var c string
		if c, err = code(); err != nil {
			return err
		}
		var avg float64
		switch command {
		case "student-average":
			avg, err = gb.StudentAverage(ctx, c, opts.size)
		case "course-average":
			avg, err = gb.CourseAverage(ctx, c, opts.size)
		default:
			avg, err = gb.TeacherAverage(ctx, c, opts.size)
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, report.FormatAverage(avg))
		return err

	case "top-students":
		codes, err := gb.TopStudents(ctx, opts.size)
		if err != nil {
			return err
		}
		for _, c := range codes {
			fmt.Fprintln(&buf, c)
		}
		_, err = out.Write(buf.Bytes())
		return err

	case "recorded-exams":
		var c string
		if c, err = code(); err != nil {
			return err
		}
		var n int
		n, err = gb.PrintRecordedExams(ctx, c, opts.size, &buf)
		value = strconv.Itoa(n)

	case "top-report":
		var n int
		n, err = gb.PrintTopStudents(ctx, opts.size, &buf)
		value = strconv.Itoa(n)

	case "exam-record":
		var c string
		if c, err = code(); err != nil {
			return err
		}
		var grade int
		grade, err = gb.PrintExamRecord(ctx, c, opts.size, &buf)
		value = strconv.Itoa(grade)

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = out.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.out, buf.Bytes(), 0o644); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, value)
	return err
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: report [flags] <command> [code]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  student-average <stud_code>   average grade of a student")
	fmt.Fprintln(os.Stderr, "  course-average <course_code>  average grade of a course")
	fmt.Fprintln(os.Stderr, "  teacher-average <teach_code>  average grade over a teacher's courses")
	fmt.Fprintln(os.Stderr, "  top-students                  stud_codes averaging 28 or more")
	fmt.Fprintln(os.Stderr, "  recorded-exams <stud_code>    exam list of a student")
	fmt.Fprintln(os.Stderr, "  top-report                    top-student roster")
	fmt.Fprintln(os.Stderr, "  exam-record <exam_code>       description of one exam")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}
