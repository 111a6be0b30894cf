package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository { return NewMemoryRepository() })
}

func TestMemoryRepository_ConcurrentUpdates(t *testing.T) {
	runConcurrentUpdates(t, NewMemoryRepository(), 8, 50)
}

func TestMemoryRepository_ValuesAreCopied(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	in := []byte("dark")
	require.NoError(t, r.Set(ctx, "theme", in))
	in[0] = 'X'

	out, err := r.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), out)

	out[0] = 'Y'
	again, err := r.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), again)
}
