package database

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/gradebook/internal/config"
	"github.com/stemsi/gradebook/internal/repository"
)

func TestOpenRepositoryFile(t *testing.T) {
	cfg := &config.Config{DataSource: config.SourceFile, DataDir: t.TempDir()}

	repo, closeFn, err := OpenRepository(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenRepository: %v", err)
	}
	defer closeFn()

	if _, ok := repo.(*repository.FileRepository); !ok {
		t.Errorf("expected *repository.FileRepository, got %T", repo)
	}
}

func TestOpenRepositoryUnknownSource(t *testing.T) {
	cfg := &config.Config{DataSource: "sqlite"}

	if _, _, err := OpenRepository(context.Background(), cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected error for unknown data source")
	}
}

func TestOpenRepositoryBadURLs(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"postgres", &config.Config{DataSource: config.SourcePostgres, DatabaseURL: "postgres://localhost:badport/gradebook"}},
		{"redis", &config.Config{DataSource: config.SourceRedis, RedisURL: "ftp://bad"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := OpenRepository(context.Background(), tt.cfg, zerolog.Nop()); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}
