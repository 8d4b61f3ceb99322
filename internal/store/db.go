package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database access layer. It is satisfied by both
// *sql.DB and *sql.Tx, so the postgres stores run the same queries on a
// plain connection or inside a transaction started by RunInTransaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
