// Package db provides database helpers shared by the repositories,
// including transaction management and common query scopes.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key under which an open transaction travels.
type txKey struct{}

// TransactionManager runs units of work inside a database transaction and
// hands the transaction to repositories through the context, so a service
// can span several repository calls with one commit.
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new TransactionManager.
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn within a transaction. A non-nil error from fn
// rolls the transaction back; otherwise it is committed.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTx returns the transaction carried by ctx, or the default DB when the
// call is not running inside RunInTransaction.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return tm.db.WithContext(ctx)
}

// TxFromContext is the repository-side counterpart of GetTx for code that
// holds a *gorm.DB rather than a manager.
func TxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
