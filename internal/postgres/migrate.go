package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every embedded migration in file name order, each in its own
// transaction. The scripts are idempotent, so it is safe to run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	const op = "postgres.Migrate"

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := migrations.ReadFile(file)
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			_, err := tx.Exec(ctx, string(content))
			return err
		})
		if err != nil {
			return fmt.Errorf("%s: %s: %w", op, file, err)
		}

		log.Info("migration applied", "file", file)
	}

	return nil
}
