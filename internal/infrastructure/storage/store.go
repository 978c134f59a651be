// internal/infrastructure/storage/store.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no value exists for a key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable key-value blob store backing session state. It mirrors
// the browser local storage the storefront demo was built on: independent
// keys, JSON-encoded values, no transaction across keys. A crash between two
// saves can leave keys mutually inconsistent; acceptable at this scope.
type Store interface {
	// Load returns the blob stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Clear removes key. Clearing an absent key is not an error.
	Clear(ctx context.Context, key string) error
}
