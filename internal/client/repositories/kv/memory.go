package kv

import (
	"context"
	"sync"
)

// MemoryRepository keeps values in process memory. Values are copied on the
// way in and out so callers cannot alias stored bytes.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.store[key]
	if !ok {
		return nil, nil
	}
	return clone(v), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[key] = clone(value)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, key)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]byte, len(r.store))
	for k, v := range r.store {
		out[k] = clone(v)
	}
	return out, nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = make(map[string][]byte)
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, key string, fn UpdateFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var current []byte
	if v, ok := r.store[key]; ok {
		current = clone(v)
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	if next == nil {
		delete(r.store, key)
		return nil
	}
	r.store[key] = clone(next)
	return nil
}

func (r *MemoryRepository) Close() error { return nil }

func clone(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
