package kv

import (
	"context"
)

// Repository is a persistent key-value store of opaque byte values.
//
// Get returns (nil, nil) when the key is absent. Delete of an absent key is not
// an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	// Update performs an atomic read-modify-write of key. fn receives the
	// current value (nil when absent) and returns the value to store; returning
	// a nil value deletes the key. An error from fn aborts the update and is
	// returned unchanged.
	Update(ctx context.Context, key string, fn UpdateFunc) error

	Close() error
}

// UpdateFunc computes a new value from the current one.
type UpdateFunc func(current []byte) ([]byte, error)
