package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id             INTEGER PRIMARY KEY AUTOINCREMENT,
  title          TEXT    NOT NULL,
  file_path      TEXT    NOT NULL UNIQUE,
  file_name      TEXT    NOT NULL,
  file_size      INTEGER NOT NULL CHECK (file_size >= 0),
  page_count     INTEGER NOT NULL CHECK (page_count >= 0),
  archive_serial TEXT,
  date_created   TEXT    NOT NULL,
  correspondent  TEXT,
  document_type  TEXT,
  storage_path   TEXT    NOT NULL DEFAULT 'Default',
  tags           TEXT    NOT NULL DEFAULT '[]',
  notes          TEXT,
  created_at     TEXT    NOT NULL,
  updated_at     TEXT    NOT NULL
);`,
	},
}

var postgresSteps = []migrationStep{
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id             BIGSERIAL PRIMARY KEY,
  title          TEXT      NOT NULL,
  file_path      TEXT      NOT NULL UNIQUE,
  file_name      TEXT      NOT NULL,
  file_size      BIGINT    NOT NULL CHECK (file_size >= 0),
  page_count     INTEGER   NOT NULL CHECK (page_count >= 0),
  archive_serial TEXT,
  date_created   TEXT      NOT NULL,
  correspondent  TEXT,
  document_type  TEXT,
  storage_path   TEXT      NOT NULL DEFAULT 'Default',
  tags           TEXT      NOT NULL DEFAULT '[]',
  notes          TEXT,
  created_at     TEXT      NOT NULL,
  updated_at     TEXT      NOT NULL
);`,
	},
}

// Indices shared by both dialects.
var indexSteps = []migrationStep{
	{Name: "create_index_documents_title", SQL: `CREATE INDEX IF NOT EXISTS idx_documents_title ON documents (title);`},
	{Name: "create_index_documents_file_name", SQL: `CREATE INDEX IF NOT EXISTS idx_documents_file_name ON documents (file_name);`},
	{Name: "create_index_documents_date_created", SQL: `CREATE INDEX IF NOT EXISTS idx_documents_date_created ON documents (date_created);`},
	{Name: "create_index_documents_document_type", SQL: `CREATE INDEX IF NOT EXISTS idx_documents_document_type ON documents (document_type);`},
	{Name: "create_index_documents_updated_at", SQL: `CREATE INDEX IF NOT EXISTS idx_documents_updated_at ON documents (updated_at);`},
}

func stepsFor(driver string) ([]migrationStep, string, error) {
	switch driver {
	case "", "sqlite":
		return append(append([]migrationStep{}, sqliteSteps...), indexSteps...),
			"SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'documents'", nil
	case "postgres":
		return append(append([]migrationStep{}, postgresSteps...), indexSteps...),
			"SELECT to_regclass('public.documents') IS NOT NULL", nil
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// EnsureMigrated brings the schema up to date. Every step is idempotent and
// all of them run in one transaction on every start, so a run interrupted
// after the table was created still gets its indices on the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, driver string, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_driver", driver))

	steps, sentinel, err := stepsFor(driver)
	if err != nil {
		return err
	}

	var exists bool
	if err := db.QueryRowContext(ctx, sentinel).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	log.Info("db_migration_start", zap.Bool("schema_present", exists))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("db_migration_step",
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	log.Info("db_migration_success", zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
