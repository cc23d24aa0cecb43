// Package kvtest provides a conformance suite for kv.Store implementations.
package kvtest

import (
	"context"
	"sync"
	"testing"

	"github.com/aalemi-dev/typedstore/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises the kv.Store contract against stores built by newStore.
// newStore is called once per subtest and must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) kv.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetMissing", func(t *testing.T) {
		s := newStore(t)
		v, ok, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "app:user", `{"name":"John","age":30}`))

		v, ok, err := s.Get(ctx, "app:user")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"name":"John","age":30}`, v)
	})

	t.Run("EmptyValueIsPresent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", ""))

		v, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "theme", `"light"`))
		require.NoError(t, s.Set(ctx, "theme", `"dark"`))

		v, _, err := s.Get(ctx, "theme")
		require.NoError(t, err)
		assert.Equal(t, `"dark"`, v)
	})

	t.Run("RemoveIsIdempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "theme", `"dark"`))
		require.NoError(t, s.Remove(ctx, "theme"))
		require.NoError(t, s.Remove(ctx, "theme"))
		require.NoError(t, s.Remove(ctx, "never-set"))

		_, ok, err := s.Get(ctx, "theme")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ClearRemovesEverything", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "a", "1"))
		require.NoError(t, s.Set(ctx, "b:c", "2"))
		require.NoError(t, s.Clear(ctx))

		for _, k := range []string{"a", "b:c"} {
			_, ok, err := s.Get(ctx, k)
			require.NoError(t, err)
			assert.False(t, ok, k)
		}

		require.NoError(t, s.Set(ctx, "a", "3"), "store stays usable after Clear")
	})

	t.Run("Keys", func(t *testing.T) {
		s := newStore(t)
		lister, ok := s.(kv.Lister)
		if !ok {
			t.Skip("store does not implement kv.Lister")
		}
		require.NoError(t, s.Set(ctx, "b", "2"))
		require.NoError(t, s.Set(ctx, "a", "1"))
		require.NoError(t, s.Set(ctx, "app:theme", "3"))

		keys, err := lister.Keys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "app:theme", "b"}, keys)
	})

	t.Run("ConcurrentWriters", func(t *testing.T) {
		s := newStore(t)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 25; j++ {
					assert.NoError(t, s.Set(ctx, "counter", "x"))
					_, _, err := s.Get(ctx, "counter")
					assert.NoError(t, err)
				}
			}()
		}
		wg.Wait()

		v, ok, err := s.Get(ctx, "counter")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "x", v)
	})
}
