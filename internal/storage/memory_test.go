package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	v, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, m.Set(ctx, "k", []byte("v1")))
	require.NoError(t, m.Set(ctx, "k", []byte("v2")))

	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	require.NoError(t, m.Delete(ctx, "k"))
	require.NoError(t, m.Delete(ctx, "k"))

	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("abc")))

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'X'

	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again, "mutating a returned value must not leak into the store")
}

func TestMemoryStore_ListAndClear(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", []byte{1}))
	require.NoError(t, m.Set(ctx, "b", []byte{2}))

	all, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, m.Clear(ctx))
	all, err = m.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryStore_InTxRunsDirectly(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	err := m.InTx(ctx, func(s Store) error {
		return s.Set(ctx, "k", []byte("v"))
	})
	require.NoError(t, err)

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}
