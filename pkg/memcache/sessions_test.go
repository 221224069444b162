package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGet(t *testing.T) {
	store := NewStore[int64, string](time.Minute)

	store.Put(1, "hello")
	v, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "hello", v)

	_, ok = store.Get(2)
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore[string, int](10 * time.Millisecond)

	store.Put("k", 1)
	time.Sleep(20 * time.Millisecond)

	_, ok := store.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStoreTouchExtendsTTL(t *testing.T) {
	store := NewStore[string, int](40 * time.Millisecond)

	store.Put("k", 1)
	time.Sleep(25 * time.Millisecond)
	store.Touch("k")
	time.Sleep(25 * time.Millisecond)

	_, ok := store.Get("k")
	assert.True(t, ok)
}

func TestStoreSweep(t *testing.T) {
	store := NewStore[int, int](10 * time.Millisecond)
	for i := 0; i < 5; i++ {
		store.Put(i, i)
	}
	time.Sleep(20 * time.Millisecond)
	store.Put(99, 99)

	assert.Equal(t, 5, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestStoreDelete(t *testing.T) {
	store := NewStore[int, int](time.Minute)
	store.Put(1, 1)
	store.Delete(1)
	_, ok := store.Get(1)
	assert.False(t, ok)
}
