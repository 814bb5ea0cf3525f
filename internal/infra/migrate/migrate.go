package migrate

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"table-reservation/internal/infra/pgquery"
	"table-reservation/internal/pkg/errs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Up applies pending migrations in file name order and records them in schema_migrations.
func Up(ctx context.Context, db pgquery.DBTX, logger *slog.Logger) error {
	files, err := Files()
	if err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT now())`); err != nil {
		return errs.Wrap(err, "create schema_migrations")
	}

	for _, f := range files {
		var applied bool
		if err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, f).Scan(&applied); err != nil {
			return errs.Wrapf(err, "check migration %s", f)
		}
		if applied {
			continue
		}

		b, err := fs.ReadFile(migrations, "migrations/"+f)
		if err != nil {
			return errs.Wrapf(err, "read migration %s", f)
		}
		if _, err := db.Exec(ctx, string(b)); err != nil {
			return errs.Wrapf(err, "apply %s", f)
		}
		if _, err := db.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, f); err != nil {
			return errs.Wrapf(err, "record migration %s", f)
		}
		logger.Info("migration applied", "version", f)
	}

	return nil
}

// Files lists the embedded migration file names in apply order.
func Files() ([]string, error) {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}
