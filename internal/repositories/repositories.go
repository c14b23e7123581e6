package repositories

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrUsernameExists is returned when an insert hits the unique constraint on users.username.
	ErrUsernameExists = errors.New("username already exists")
	// ErrConflictRetryExhausted is returned when a duplicate-insert race could not
	// be resolved after bounded retries.
	ErrConflictRetryExhausted = errors.New("conflict retry attempts exhausted")
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the context transaction when present, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
