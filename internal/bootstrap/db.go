package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/timeledger/project-billing-api/config"
	"github.com/timeledger/project-billing-api/internal/projects/repository"
	"github.com/timeledger/project-billing-api/internal/storage/postgres"
)

// Store is an opened project store. DB is nil for the in-memory driver.
type Store struct {
	Projects repository.Store
	DB       *sql.DB
}

// Close releases the underlying pool, if any.
func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// OpenStore connects the configured store and, for SQL drivers, ensures the
// schema when auto-migration is on.
func OpenStore(ctx context.Context, cfg *config.DatabaseConfig) (*Store, error) {
	if cfg.Driver == config.DriverMemory {
		return &Store{Projects: repository.NewMemoryRepository()}, nil
	}

	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("db migrate: %w", err)
		}
	}

	return &Store{Projects: repository.NewProjectRepository(db), DB: db}, nil
}
