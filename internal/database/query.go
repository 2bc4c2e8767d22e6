package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// Querier is satisfied by both *sql.DB and *sql.Tx, so the helpers below work in and out of
// transactions.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Exec runs a built statement.
func Exec(ctx context.Context, q Querier, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return q.ExecContext(ctx, query, args...)
}

// Query runs a built select and returns its rows.
func Query(ctx context.Context, q Querier, b sq.SelectBuilder) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return q.QueryContext(ctx, query, args...)
}

// Get runs a built select expected to return one row and scans it into dest.
// sql.ErrNoRows is returned unwrapped.
func Get(ctx context.Context, q Querier, b sq.SelectBuilder, dest ...any) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return q.QueryRowContext(ctx, query, args...).Scan(dest...)
}
