// Package db carries gorm helpers shared by the repository layer.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txContextKey marks a gorm transaction stored on a context.
type txContextKey struct{}

// WithTransaction runs fn inside a transaction on db. The transaction handle
// is placed on the derived context so repository calls made from fn join it;
// any error from fn rolls the whole transaction back.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// GetTxFromContext returns the transaction carried by ctx, or defaultDB bound
// to ctx when no transaction is in flight. Repositories call this for every
// query so they transparently join an enclosing WithTransaction.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
