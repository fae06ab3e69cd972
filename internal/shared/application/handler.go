// Package application holds the use-case plumbing shared by bounded contexts:
// handler contracts, the unit of work, event dispatch and paging output.
package application

import "context"

// Command is a request that changes state. CommandName identifies it in
// logs and metrics.
type Command interface {
	CommandName() string
}

// Query is a request that only reads state.
type Query interface {
	QueryName() string
}

// CommandHandler executes one command type and returns its result.
type CommandHandler[C Command, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// QueryHandler answers one query type.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
