package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// GetDBTX returns the underlying database transaction or connection interface
// This is useful for starting transactions or accessing the raw database connection
func (q *Queries) GetDBTX() DBTX {
	return q.db
}

// TxRunner executes a function atomically when the backing connection
// supports transactions.
type TxRunner interface {
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

var _ TxRunner = (*Queries)(nil)

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ExecTx runs fn with a Queries bound to a single transaction, committing on
// success and rolling back on error. When the underlying DBTX cannot begin a
// transaction (a plain connection or a test double), fn runs against q
// directly.
func (q *Queries) ExecTx(ctx context.Context, fn func(Querier) error) error {
	beginner, ok := q.db.(txBeginner)
	if !ok {
		return fn(q)
	}

	tx, err := beginner.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(q.WithTx(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
