// Package metadata stores small key/value records in the local database:
// the persisted session token and its bookkeeping.
package metadata

import (
	"context"
	"time"
)

// Entry is a stored value together with the time it was last written.
type Entry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
}
