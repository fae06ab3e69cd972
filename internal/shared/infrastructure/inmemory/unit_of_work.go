package inmemory

import "context"

// UnitOfWork satisfies application.UnitOfWork for the in-process store.
// Each repository call is already atomic, so there is nothing to commit.
type UnitOfWork struct{}

// NewUnitOfWork creates a UnitOfWork.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{}
}

func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (u *UnitOfWork) Commit(context.Context) error                      { return nil }
func (u *UnitOfWork) Rollback(context.Context) error                    { return nil }
