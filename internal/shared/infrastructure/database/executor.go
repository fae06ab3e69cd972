package database

import "context"

// Row is the subset of pgx.Row and *sql.Row repositories rely on.
type Row interface {
	Scan(dest ...any) error
}

// Rows is the subset of pgx.Rows and *sql.Rows repositories rely on.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}

// Result reports the effect of an Exec.
type Result interface {
	RowsAffected() (int64, error)
}

// Executor runs queries against either a connection or a transaction.
type Executor interface {
	Exec(ctx context.Context, query string, args ...any) (Result, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
	Query(ctx context.Context, query string, args ...any) (Rows, error)
}

// Transaction is an Executor that can be committed or rolled back.
type Transaction interface {
	Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Connection is an open database that can start transactions.
type Connection interface {
	Executor
	BeginTx(ctx context.Context) (Transaction, error)
	Close() error
	Ping(ctx context.Context) error
	Driver() Driver
}
