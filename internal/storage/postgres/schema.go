package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is the DDL for the projects table. gen_random_uuid is built in
// from PostgreSQL 13.
const Schema = `
CREATE TABLE IF NOT EXISTS projects (
	id               uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	project_name     text NOT NULL,
	task_owner       text NOT NULL,
	project_type     text NOT NULL,
	start_time       timestamptz NOT NULL,
	end_time         timestamptz NOT NULL,
	hourly_rate      double precision NOT NULL CHECK (hourly_rate > 0),
	duration_minutes double precision,
	total_value      double precision,
	created_at       timestamptz NOT NULL DEFAULT now(),
	CHECK (end_time > start_time)
);

CREATE INDEX IF NOT EXISTS projects_created_at_idx ON projects (created_at DESC);
`

// EnsureSchema creates the projects table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
