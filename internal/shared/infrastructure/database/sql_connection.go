package database

import (
	"context"
	"database/sql"
)

// SQLConnection implements Connection over a database/sql pool.
type SQLConnection struct {
	db     *sql.DB
	driver Driver
}

// NewSQLConnection wraps db. driver selects the SQL dialect repositories emit.
func NewSQLConnection(db *sql.DB, driver Driver) *SQLConnection {
	return &SQLConnection{db: db, driver: driver}
}

// DB returns the underlying *sql.DB.
func (c *SQLConnection) DB() *sql.DB { return c.db }

func (c *SQLConnection) Driver() Driver { return c.driver }

func (c *SQLConnection) Close() error { return c.db.Close() }

func (c *SQLConnection) Ping(ctx context.Context) error { return c.db.PingContext(ctx) }

// BeginTx starts a new transaction.
func (c *SQLConnection) BeginTx(ctx context.Context) (Transaction, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &SQLTransaction{tx: tx}, nil
}

func (c *SQLConnection) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	return c.db.ExecContext(ctx, query, args...)
}

func (c *SQLConnection) QueryRow(ctx context.Context, query string, args ...any) Row {
	return c.db.QueryRowContext(ctx, query, args...)
}

func (c *SQLConnection) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SQLTransaction implements Transaction over *sql.Tx.
type SQLTransaction struct {
	tx *sql.Tx
}

func (t *SQLTransaction) Commit(context.Context) error   { return t.tx.Commit() }
func (t *SQLTransaction) Rollback(context.Context) error { return t.tx.Rollback() }

func (t *SQLTransaction) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *SQLTransaction) QueryRow(ctx context.Context, query string, args ...any) Row {
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *SQLTransaction) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
