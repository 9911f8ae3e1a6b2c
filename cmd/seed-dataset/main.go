// Command seed-dataset copies the JSON dataset files into PostgreSQL and/or
// Redis so the server can run with DATA_SOURCE=postgres or DATA_SOURCE=redis.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/gradebook/internal/config"
	"github.com/stemsi/gradebook/internal/database"
	"github.com/stemsi/gradebook/internal/logger"
	"github.com/stemsi/gradebook/internal/model"
	"github.com/stemsi/gradebook/internal/repository"
)

// datasetWriter is implemented by the stores that accept a full dataset copy.
type datasetWriter interface {
	ReplaceDataset(ctx context.Context, size model.DBSize, ds *model.Dataset) error
}

func main() {
	var (
		dir     string
		sizes   string
		targets string
	)
	flag.StringVar(&dir, "dir", "", "Directory holding <size>_<entity>.json files (default DATA_DIR)")
	flag.StringVar(&sizes, "sizes", "small,medium,large", "Comma separated dataset sizes to load")
	flag.StringVar(&targets, "to", "postgres", "Comma separated targets: postgres, redis")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if dir == "" {
		dir = cfg.DataDir
	}

	selected, err := parseSizes(sizes)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid -sizes")
	}

	writers := map[string]datasetWriter{}
	for _, target := range splitList(targets) {
		switch target {
		case config.SourcePostgres:
			pool, err := database.NewPostgresPool(ctx, cfg, log)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
			}
			defer pool.Close()
			writers[target] = repository.NewPostgresRepository(pool)
		case config.SourceRedis:
			rdb, err := database.NewRedisClient(ctx, cfg, log)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to connect to Redis")
			}
			defer rdb.Close()
			writers[target] = repository.NewRedisRepository(rdb)
		default:
			log.Fatal().Str("target", target).Msg("Unknown seed target")
		}
	}

	source := repository.NewFileRepository(dir)
	if err := seed(ctx, source, writers, selected, log); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
	log.Info().Int("sizes", len(selected)).Int("targets", len(writers)).Msg("Seeding complete")
}

// seed loads each dataset size from source and hands it to every writer.
// Missing sizes are skipped so a directory may hold only some of them.
func seed(ctx context.Context, source repository.Repository, writers map[string]datasetWriter, sizes []model.DBSize, log zerolog.Logger) error {
	for _, size := range sizes {
		ds, err := repository.LoadDataset(ctx, source, size)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				log.Warn().Err(err).Str("dbsize", string(size)).Msg("Dataset files missing, skipping")
				continue
			}
			return fmt.Errorf("load %s: %w", size, err)
		}

		for name, w := range writers {
			if err := w.ReplaceDataset(ctx, size, ds); err != nil {
				return fmt.Errorf("write %s to %s: %w", size, name, err)
			}
			log.Info().
				Str("dbsize", string(size)).
				Str("target", name).
				Int("students", len(ds.Students)).
				Int("teachers", len(ds.Teachers)).
				Int("courses", len(ds.Courses)).
				Int("exams", len(ds.Exams)).
				Msg("Dataset seeded")
		}
	}
	return nil
}

func parseSizes(raw string) ([]model.DBSize, error) {
	var sizes []model.DBSize
	for _, s := range splitList(raw) {
		size, err := model.ParseDBSize(s)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no dataset size given", model.ErrInvalidArgument)
	}
	return sizes, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
