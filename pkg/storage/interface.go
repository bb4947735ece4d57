// Package storage defines the persistence contract of the token ledger.
// Everything a single call mutates (balances, allowances, registries, the
// token state, pool reserves, native balances and emitted events) lives behind
// these interfaces so a backend can commit or discard the whole call at once.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is the composite of every domain-specific capability. Both the
// root handle and transactional handles implement it.
type AllStorage interface {
	LedgerStorage
	StateStorage
	RegistryStorage
	ClockStorage
	NativeStorage
	PoolStorage
	ForeignStorage
	EventStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a transaction. It
// becomes unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and then commits on
	// success or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
