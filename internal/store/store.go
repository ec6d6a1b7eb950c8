package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"careconnect/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// sortColumns maps wire field names to columns. Both tables carry
// created_at; the others only exist on appointments.
var sortColumns = map[types.SortField]string{
	types.SortByCreatedAt:       "created_at",
	types.SortByUpdatedAt:       "updated_at",
	types.SortByAppointmentDate: "appointment_date",
}

func orderBy(opts types.ListOptions, fallback string) (string, error) {
	column := fallback
	if opts.SortField != "" {
		c, ok := sortColumns[opts.SortField]
		if !ok {
			return "", fmt.Errorf("unsupported sort field %q", opts.SortField)
		}
		column = c
	}

	if opts.Descending {
		return column + " DESC", nil
	}
	return column + " ASC", nil
}

// Migrate applies every embedded migration in file name order. The
// migrations are idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := migrationsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}

		if _, err := pool.Exec(ctx, string(data)); err != nil {
			return nil, fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	return names, nil
}
