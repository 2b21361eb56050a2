//go:build e2e

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/timeledger/project-billing-api/config"
	"github.com/timeledger/project-billing-api/internal/projects/domain"
	"github.com/timeledger/project-billing-api/internal/storage/postgres"
)

func startPostgres(t *testing.T, driver string) *ProjectRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("projects"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.NewConnection(ctx, &config.DatabaseConfig{Driver: driver, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.EnsureSchema(ctx, db))
	// idempotent
	require.NoError(t, postgres.EnsureSchema(ctx, db))

	return NewProjectRepository(db)
}

func TestProjectRepository_E2E(t *testing.T) {
	for _, driver := range []string{config.DriverPostgres, config.DriverPgx} {
		t.Run(driver, func(t *testing.T) {
			repo := startPostgres(t, driver)
			ctx := context.Background()

			start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
			req := domain.CreateProjectRequest{
				ProjectName: "Sales Dashboard",
				TaskOwner:   "Maria Souza",
				ProjectType: "Data Engineering",
				StartTime:   start,
				EndTime:     start.Add(90 * time.Minute),
				HourlyRate:  100,
			}
			rec, err := domain.Prepare(req)
			require.NoError(t, err)

			first, err := repo.Insert(ctx, rec)
			require.NoError(t, err)
			assert.NotEmpty(t, first.ID)
			assert.Equal(t, 90.0, first.DurationMinutes)
			assert.Equal(t, 150.0, first.TotalValue)
			assert.True(t, first.StartTime.Equal(start))

			second, err := repo.Insert(ctx, rec)
			require.NoError(t, err)

			items, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, items, 2)
			assert.Equal(t, second.ID, items[0].ID)
			assert.Equal(t, first.ID, items[1].ID)

			got, err := repo.GetByID(ctx, first.ID)
			require.NoError(t, err)
			assert.Equal(t, first.TotalValue, got.TotalValue)
			assert.Equal(t, first.DurationMinutes, got.DurationMinutes)

			_, err = repo.GetByID(ctx, "not-a-uuid")
			assert.ErrorIs(t, err, domain.ErrNotFound)

			require.NoError(t, repo.Delete(ctx, first.ID))
			_, err = repo.GetByID(ctx, first.ID)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.ErrorIs(t, repo.Delete(ctx, first.ID), domain.ErrNotFound)
		})
	}
}
