package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entwine/arena"
)

func TestHandle_ZeroValueIsNone(t *testing.T) {
	var h arena.Handle
	assert.True(t, h.IsNone())
	assert.Equal(t, arena.None, h)
	assert.Equal(t, "none", h.String())
}

func TestTable_InsertGet(t *testing.T) {
	tab := arena.NewTable[string]()
	h := tab.Insert("alpha")
	require.False(t, h.IsNone())

	v, err := tab.Get(h)
	require.NoError(t, err)
	assert.Equal(t, "alpha", *v)
	assert.Equal(t, 1, tab.Len())
	assert.True(t, tab.Contains(h))
}

func TestTable_GetNone(t *testing.T) {
	tab := arena.NewTable[int]()
	_, err := tab.Get(arena.None)
	assert.ErrorIs(t, err, arena.ErrNoneHandle)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)
}

func TestTable_GetForeignHandle(t *testing.T) {
	a := arena.NewTable[int]()
	b := arena.NewTable[int]()
	h := a.Insert(7)

	// b has no slot at h's index at all.
	_, err := b.Get(h)
	assert.ErrorIs(t, err, arena.ErrNoSuchEntity)
	assert.False(t, b.Contains(h))
}

func TestTable_RemoveInvalidatesHandle(t *testing.T) {
	tab := arena.NewTable[string]()
	h := tab.Insert("gone")
	require.NoError(t, tab.Remove(h))

	assert.Equal(t, 0, tab.Len())
	assert.False(t, tab.Contains(h))
	_, err := tab.Get(h)
	assert.ErrorIs(t, err, arena.ErrNoSuchEntity)

	// Double remove reports the same classification.
	assert.ErrorIs(t, tab.Remove(h), arena.ErrNoSuchEntity)
}

func TestTable_SlotReuseBumpsGeneration(t *testing.T) {
	tab := arena.NewTable[string]()
	old := tab.Insert("first")
	require.NoError(t, tab.Remove(old))

	// The freed slot is recycled, yet the stale handle must not resolve to
	// the new occupant.
	fresh := tab.Insert("second")
	require.NotEqual(t, old, fresh)

	v, err := tab.Get(fresh)
	require.NoError(t, err)
	assert.Equal(t, "second", *v)

	_, err = tab.Get(old)
	assert.ErrorIs(t, err, arena.ErrNoSuchEntity)
}

func TestTable_HandlesAscendingAndLiveOnly(t *testing.T) {
	tab := arena.NewTable[int]()
	h0 := tab.Insert(0)
	h1 := tab.Insert(1)
	h2 := tab.Insert(2)
	require.NoError(t, tab.Remove(h1))

	hs := tab.Handles()
	assert.Equal(t, []arena.Handle{h0, h2}, hs)
}

func TestTable_GetAllowsInPlaceMutation(t *testing.T) {
	tab := arena.NewTable[[]int]()
	h := tab.Insert([]int{1})

	v, err := tab.Get(h)
	require.NoError(t, err)
	*v = append(*v, 2)

	again, err := tab.Get(h)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, *again)
}

func TestTable_ManyInsertRemoveCycles(t *testing.T) {
	tab := arena.NewTable[int]()
	live := make([]arena.Handle, 0, 64)
	for i := 0; i < 64; i++ {
		live = append(live, tab.Insert(i))
	}
	// Remove every even entry, then refill; all stale handles must stay dead.
	stale := make([]arena.Handle, 0, 32)
	for i := 0; i < 64; i += 2 {
		require.NoError(t, tab.Remove(live[i]))
		stale = append(stale, live[i])
	}
	for i := 0; i < 32; i++ {
		tab.Insert(1000 + i)
	}
	assert.Equal(t, 64, tab.Len())
	for _, h := range stale {
		assert.False(t, tab.Contains(h))
	}
}
