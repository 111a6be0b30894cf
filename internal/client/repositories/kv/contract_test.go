package kv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behaviour every Repository must share.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Run("set then get", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "theme", []byte("dark")))
		v, err := r.Get(ctx, "theme")
		require.NoError(t, err)
		assert.Equal(t, []byte("dark"), v)
	})

	t.Run("absent key is nil nil", func(t *testing.T) {
		r := newRepo(t)
		v, err := r.Get(context.Background(), "currentUser")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "theme", []byte("light")))
		require.NoError(t, r.Set(ctx, "theme", []byte("dark")))
		v, err := r.Get(ctx, "theme")
		require.NoError(t, err)
		assert.Equal(t, []byte("dark"), v)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "currentUser", []byte(`{}`)))
		require.NoError(t, r.Delete(ctx, "currentUser"))
		v, err := r.Get(ctx, "currentUser")
		require.NoError(t, err)
		assert.Nil(t, v)
		require.NoError(t, r.Delete(ctx, "currentUser"))
	})

	t.Run("list and clear", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, "cart", []byte(`[]`)))
		require.NoError(t, r.Set(ctx, "theme", []byte("light")))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.Equal(t, []byte(`[]`), m["cart"])
		assert.Equal(t, []byte("light"), m["theme"])

		require.NoError(t, r.Clear(ctx))
		m, err = r.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("update creates, modifies and deletes", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Update(ctx, "n", func(cur []byte) ([]byte, error) {
			assert.Nil(t, cur)
			return []byte("1"), nil
		}))
		require.NoError(t, r.Update(ctx, "n", func(cur []byte) ([]byte, error) {
			assert.Equal(t, []byte("1"), cur)
			return []byte("2"), nil
		}))
		v, err := r.Get(ctx, "n")
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), v)

		require.NoError(t, r.Update(ctx, "n", func(cur []byte) ([]byte, error) { return nil, nil }))
		v, err = r.Get(ctx, "n")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("update error leaves value untouched", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		boom := errors.New("boom")

		require.NoError(t, r.Set(ctx, "cart", []byte(`[]`)))
		err := r.Update(ctx, "cart", func(cur []byte) ([]byte, error) { return nil, boom })
		require.ErrorIs(t, err, boom)

		v, err := r.Get(ctx, "cart")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), v)
	})
}

// runConcurrentUpdates checks that concurrent increments are not lost.
func runConcurrentUpdates(t *testing.T, r Repository, workers, perWorker int) {
	ctx := context.Background()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				err := r.Update(ctx, "counter", func(cur []byte) ([]byte, error) {
					var n int
					if cur != nil {
						_, _ = fmt.Sscanf(string(cur), "%d", &n)
					}
					return []byte(fmt.Sprintf("%d", n+1)), nil
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	v, err := r.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d", workers*perWorker), string(v))
}
