// Package storage defines the persistence interfaces of the catalog. The
// postgres subpackage implements them.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"errors"
)

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
)

// AllStorage is everything the catalog reads and writes, usable both inside
// and outside a transaction.
type AllStorage interface {
	ProductStorage
	JobStorage
}

// TxStorage is an AllStorage bound to one transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle the application holds for its lifetime.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction that is committed when cb returns nil
	// and rolled back otherwise. Jobs enqueued through cb commit with it.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
