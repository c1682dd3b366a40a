// Package storage defines the persistence interfaces the application relies
// on. It abstracts reads, writes and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
// Lookups by id or slug return (nil, nil) when no row matches; callers decide
// whether absence is an error.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go travel/pkg/storage AllStorage,TxStorage,Storage
package storage

import "context"

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	DestinationStorage
	TourPackageStorage
	CategoryStorage
	PostStorage
	SettingsStorage
	PlannerOptionStorage
	InquiryStorage
	BookingStorage
	ContactStorage
	UserStorage
	SessionStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. Implementations become unusable after Commit or Rollback.
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

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it and commits when cb
	// returns nil, rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
