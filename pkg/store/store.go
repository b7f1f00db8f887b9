package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no value. It is the only sentinel
// callers need to branch on.
var ErrNotFound = errors.New("store: key not found")

// Store is a minimal key-value collaborator for route handlers. The router
// treats stores as opaque asynchronous producers of view data; retry and
// caching policy belong to the implementation or the caller, never to the
// router.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put writes the value for key, overwriting any prior value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all keys with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)

	// Close releases the store's resources.
	Close() error
}
