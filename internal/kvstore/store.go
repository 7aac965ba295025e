// Package kvstore is the small key-value persistence layer behind favorites
// and the auth session. Multi-key writes and deletes are applied as a unit.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Store persists opaque values under string keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// SetMany writes every entry or none of them.
	SetMany(ctx context.Context, entries map[string][]byte) error
	// DeleteMany removes every key or none of them. Missing keys are ignored.
	DeleteMany(ctx context.Context, keys ...string) error
	Close() error
}

// Set writes a single key.
func Set(ctx context.Context, s Store, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}
