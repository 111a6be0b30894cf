// Package storage is the typed accessor over the client's key-value
// repository. It owns serialisation: lists and records are JSON, the theme is a
// bare string.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/aroma/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aroma/internal/common"
)

type Store struct {
	repo kv.Repository
}

func New(repo kv.Repository) *Store {
	return &Store{repo: repo}
}

// GetJSON decodes the value under key into v. It reports false, leaving v
// untouched, when the key is absent.
func (s *Store) GetJSON(ctx context.Context, key Key, v any) (bool, error) {
	raw, err := s.repo.Get(ctx, string(key))
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w: %v", key, common.ErrorCorruptedRecord, err)
	}
	return true, nil
}

func (s *Store) SetJSON(ctx context.Context, key Key, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.repo.Set(ctx, string(key), raw)
}

func (s *Store) Has(ctx context.Context, key Key) (bool, error) {
	raw, err := s.repo.Get(ctx, string(key))
	if err != nil {
		return false, err
	}
	return raw != nil, nil
}

func (s *Store) GetString(ctx context.Context, key Key) (string, bool, error) {
	raw, err := s.repo.Get(ctx, string(key))
	if err != nil {
		return "", false, err
	}
	if raw == nil {
		return "", false, nil
	}
	return string(raw), true, nil
}

func (s *Store) SetString(ctx context.Context, key Key, v string) error {
	return s.repo.Set(ctx, string(key), []byte(v))
}

func (s *Store) Remove(ctx context.Context, key Key) error {
	return s.repo.Delete(ctx, string(key))
}

// Clear wipes every key. Not reachable from the CLI.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func (s *Store) Close() error {
	return s.repo.Close()
}

// UpdateJSON atomically replaces the value under key with fn's result. fn gets
// the decoded current value and whether it existed.
func UpdateJSON[T any](ctx context.Context, s *Store, key Key, fn func(cur T, found bool) (T, error)) (T, error) {
	var out T
	err := s.repo.Update(ctx, string(key), func(raw []byte) ([]byte, error) {
		var cur T
		found := raw != nil
		if found {
			if err := json.Unmarshal(raw, &cur); err != nil {
				return nil, fmt.Errorf("decode %s: %w: %v", key, common.ErrorCorruptedRecord, err)
			}
		}
		next, err := fn(cur, found)
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		out = next
		return b, nil
	})
	return out, err
}

// AppendJSON appends rec to the list stored under key, creating the list when
// absent.
func AppendJSON[T any](ctx context.Context, s *Store, key Key, rec T) error {
	_, err := UpdateJSON(ctx, s, key, func(cur []T, _ bool) ([]T, error) {
		return append(cur, rec), nil
	})
	return err
}

// UpdateString atomically replaces a bare string value.
func (s *Store) UpdateString(ctx context.Context, key Key, fn func(cur string, found bool) string) (string, error) {
	var out string
	err := s.repo.Update(ctx, string(key), func(raw []byte) ([]byte, error) {
		out = fn(string(raw), raw != nil)
		return []byte(out), nil
	})
	return out, err
}
