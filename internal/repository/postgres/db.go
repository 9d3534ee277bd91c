package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the minimal query surface the repositories need, satisfied by
// *pgxpool.Pool. Repositories receive it at construction time and never
// build or own the connection source themselves; every operation here is a
// single statement, so no transaction plumbing is involved.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ensureDB guards against a nil query surface slipping through a constructor.
func ensureDB(db DB) error {
	if db == nil {
		return errors.New("postgres db is nil")
	}
	return nil
}
