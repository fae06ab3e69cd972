package database

import "context"

type txKey struct{}

type txInfo struct {
	tx    Transaction
	owned bool
}

func withTx(ctx context.Context, tx Transaction, owned bool) context.Context {
	return context.WithValue(ctx, txKey{}, txInfo{tx: tx, owned: owned})
}

func txInfoFromContext(ctx context.Context) (txInfo, bool) {
	info, ok := ctx.Value(txKey{}).(txInfo)
	if !ok || info.tx == nil {
		return txInfo{}, false
	}
	return info, true
}

// TxFromContext returns the transaction started by a UnitOfWork, or nil.
func TxFromContext(ctx context.Context) Transaction {
	info, _ := txInfoFromContext(ctx)
	return info.tx
}

// ExecutorFromContext returns the active transaction when there is one,
// otherwise conn. Repositories call it on every query.
func ExecutorFromContext(ctx context.Context, conn Connection) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return conn
}

// UnitOfWork implements application.UnitOfWork on top of a Connection.
type UnitOfWork struct {
	conn Connection
}

// NewUnitOfWork creates a UnitOfWork for conn.
func NewUnitOfWork(conn Connection) *UnitOfWork {
	return &UnitOfWork{conn: conn}
}

// Begin starts a transaction and stores it in the returned context.
// A nested Begin joins the outer transaction without taking ownership.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if info, ok := txInfoFromContext(ctx); ok {
		return withTx(ctx, info.tx, false), nil
	}

	tx, err := u.conn.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return withTx(ctx, tx, true), nil
}

// Commit commits the transaction if this unit started it.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	info, ok := txInfoFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}
	if !info.owned {
		return nil
	}
	return info.tx.Commit(ctx)
}

// Rollback rolls back the transaction if this unit started it.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	info, ok := txInfoFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}
	if !info.owned {
		return nil
	}
	return info.tx.Rollback(ctx)
}
