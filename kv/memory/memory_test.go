package memory

import (
	"context"
	"testing"

	"github.com/aalemi-dev/typedstore/kv"
	"github.com/aalemi-dev/typedstore/kv/kvtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store { return New(Config{}) })
}

func TestCapacity_RejectsOversizedWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(Config{CapacityBytes: 10})

	require.NoError(t, s.Set(ctx, "k", "12345")) // 6 bytes
	assert.Equal(t, 6, s.Used())

	err := s.Set(ctx, "j", "123456") // would be 13 bytes
	assert.ErrorIs(t, err, kv.ErrQuotaExceeded)

	_, ok, _ := s.Get(ctx, "j")
	assert.False(t, ok)
	assert.Equal(t, 6, s.Used())
}

func TestCapacity_ReplacementKeepsOldValueOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(Config{CapacityBytes: 8})

	require.NoError(t, s.Set(ctx, "k", "abc"))
	require.NoError(t, s.Set(ctx, "k", "abcdefg"), "replacing counts only the new value")
	assert.Equal(t, 8, s.Used())

	err := s.Set(ctx, "k", "abcdefgh")
	assert.ErrorIs(t, err, kv.ErrQuotaExceeded)

	v, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abcdefg", v)
}

func TestCapacity_RemoveAndClearReleaseSpace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(Config{CapacityBytes: 4})

	require.NoError(t, s.Set(ctx, "a", "123"))
	require.NoError(t, s.Remove(ctx, "a"))
	assert.Equal(t, 0, s.Used())

	require.NoError(t, s.Set(ctx, "b", "123"))
	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, 0, s.Used())
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Set(ctx, "c", "123"))
	assert.Equal(t, 1, s.Len())
}

func TestUnlimitedByDefault(t *testing.T) {
	t.Parallel()
	s := New(Config{})
	big := make([]byte, 1<<20)
	require.NoError(t, s.Set(context.Background(), "big", string(big)))
}
