package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the SQL access layer. Both *sql.DB and *sql.Tx satisfy
// it, so an adapter can run against a plain connection pool or inside a
// caller-managed transaction without code changes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
