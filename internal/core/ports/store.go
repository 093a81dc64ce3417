package ports

import "go.trai.ch/recheck/internal/core/domain"

// ResultStore defines the interface for storing and retrieving check records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultStore interface {
	// Get retrieves the record for a given puzzle name.
	// Returns nil, nil if not found.
	Get(puzzle string) (*domain.CheckRecord, error)

	// Put stores the record.
	Put(record domain.CheckRecord) error

	// All returns every record sorted by puzzle name.
	All() ([]domain.CheckRecord, error)

	// Clear removes every stored record.
	Clear() error
}

// ResultStoreOpener opens the result store kept under a manifest root.
type ResultStoreOpener interface {
	// Open returns the store of root. A missing store is empty.
	Open(root string) (ResultStore, error)
}
