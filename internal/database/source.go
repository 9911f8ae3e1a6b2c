package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/gradebook/internal/config"
	"github.com/stemsi/gradebook/internal/repository"
)

// OpenRepository connects the backend selected by cfg.DataSource and returns
// it as a repository together with a function releasing its connections.
func OpenRepository(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.Repository, func(), error) {
	switch cfg.DataSource {
	case config.SourceFile:
		log.Info().Str("dir", cfg.DataDir).Msg("Using JSON dataset files")
		return repository.NewFileRepository(cfg.DataDir), func() {}, nil

	case config.SourcePostgres:
		pool, err := NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresRepository(pool), pool.Close, nil

	case config.SourceRedis:
		rdb, err := NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisRepository(rdb), func() { _ = rdb.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown DATA_SOURCE %q (want %s, %s or %s)",
			cfg.DataSource, config.SourceFile, config.SourcePostgres, config.SourceRedis)
	}
}
