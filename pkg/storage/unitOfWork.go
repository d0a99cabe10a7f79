package storage

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork carries the transaction of a single request. Repositories performing writes take it
// as an explicit argument so nothing is committed behind the caller's back.
type UnitOfWork struct {
	tx *gorm.DB
}

// Tx returns the transaction scoped database handle.
func (u *UnitOfWork) Tx() *gorm.DB {
	return u.tx
}

func NewTransactor(db *gorm.DB) Transactor {
	return Transactor{db: db}
}

type Transactor struct {
	db *gorm.DB
}

// Do runs fn within a new transaction. The transaction is committed exactly once if fn returns nil
// and rolled back otherwise, in which case the error returned by fn is returned as is.
func (t Transactor) Do(ctx context.Context, fn func(uow *UnitOfWork) error) error {
	// only use ctx for values (logging, tracing) and not cancellation signals. A client hanging up
	// must not roll back a transaction midway.
	ctx = context.WithoutCancel(ctx)

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UnitOfWork{tx: tx})
	})
}
