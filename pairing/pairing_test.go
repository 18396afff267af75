package pairing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entwine/arena"
	"github.com/katalvlaran/entwine/pairing"
)

func TestPair_Symmetric(t *testing.T) {
	st := pairing.New()
	a := st.NewPortal("A")
	b := st.NewPortal("B")

	require.NoError(t, st.Pair(a, b))

	pa, err := st.Partner(a)
	require.NoError(t, err)
	pb, err := st.Partner(b)
	require.NoError(t, err)
	assert.Equal(t, b, pa)
	assert.Equal(t, a, pb)
	assert.NoError(t, st.Check())
}

func TestPair_Self(t *testing.T) {
	st := pairing.New()
	a := st.NewPortal("A")

	err := st.Pair(a, a)
	assert.ErrorIs(t, err, pairing.ErrSelfPair)
	assert.ErrorIs(t, err, arena.ErrInvalidArgument)

	p, _ := st.Partner(a)
	assert.True(t, p.IsNone())
}

func TestPair_OccupiedSide(t *testing.T) {
	st := pairing.New()
	a := st.NewPortal("A")
	b := st.NewPortal("B")
	c := st.NewPortal("C")
	require.NoError(t, st.Pair(a, b))

	// Either occupied side blocks, and nothing moves on failure.
	err := st.Pair(a, c)
	assert.ErrorIs(t, err, pairing.ErrAlreadyPaired)
	assert.ErrorIs(t, err, arena.ErrIllegalState)
	err = st.Pair(c, b)
	assert.ErrorIs(t, err, pairing.ErrAlreadyPaired)

	pa, _ := st.Partner(a)
	pc, _ := st.Partner(c)
	assert.Equal(t, b, pa)
	assert.True(t, pc.IsNone())
	assert.NoError(t, st.Check())
}

func TestPair_WithCurrentPartnerRejected(t *testing.T) {
	st := pairing.New()
	a := st.NewPortal("A")
	b := st.NewPortal("B")
	require.NoError(t, st.Pair(a, b))

	// Re-pairing the same two entities counts as occupied sides.
	err := st.Pair(a, b)
	assert.ErrorIs(t, err, pairing.ErrAlreadyPaired)

	pa, _ := st.Partner(a)
	assert.Equal(t, b, pa)
}

func TestUnpair_ClearsBothSides(t *testing.T) {
	st := pairing.New()
	a := st.NewPortal("A")
	b := st.NewPortal("B")
	require.NoError(t, st.Pair(a, b))
	require.NoError(t, st.Unpair(a))

	pa, err := st.Partner(a)
	require.NoError(t, err)
	pb, err := st.Partner(b)
	require.NoError(t, err)
	assert.True(t, pa.IsNone())
	assert.True(t, pb.IsNone())

	// Unpairing again fails: the precondition no longer holds.
	err = st.Unpair(a)
	assert.ErrorIs(t, err, pairing.ErrNotPaired)
	assert.ErrorIs(t, err, arena.ErrIllegalState)
	assert.NoError(t, st.Check())
}

func TestUnpair_EitherSideWorks(t *testing.T) {
	st := pairing.New()
	a := st.NewPortal("A")
	b := st.NewPortal("B")
	require.NoError(t, st.Pair(a, b))
	require.NoError(t, st.Unpair(b))

	pa, _ := st.Partner(a)
	assert.True(t, pa.IsNone())
}

func TestRepairAfterUnpair(t *testing.T) {
	st := pairing.New()
	a := st.NewPortal("A")
	b := st.NewPortal("B")
	c := st.NewPortal("C")

	require.NoError(t, st.Pair(a, b))
	require.NoError(t, st.Unpair(a))
	require.NoError(t, st.Pair(a, c))

	pa, _ := st.Partner(a)
	pb, _ := st.Partner(b)
	assert.Equal(t, c, pa)
	assert.True(t, pb.IsNone())
	assert.NoError(t, st.Check())
}

func TestRelease_Lifecycle(t *testing.T) {
	st := pairing.New()
	a := st.NewPortal("A")
	b := st.NewPortal("B")
	require.NoError(t, st.Pair(a, b))

	// Paired entities refuse to die.
	assert.ErrorIs(t, st.Release(a), pairing.ErrStillPaired)

	require.NoError(t, st.Unpair(a))
	require.NoError(t, st.Release(a))
	assert.Equal(t, 1, st.Len())

	// Dead handles are detected.
	_, err := st.Partner(a)
	assert.ErrorIs(t, err, arena.ErrNoSuchEntity)
	assert.NoError(t, st.Check())
}

func TestPair_DeadHandle(t *testing.T) {
	st := pairing.New()
	a := st.NewPortal("A")
	b := st.NewPortal("B")
	require.NoError(t, st.Release(b))

	err := st.Pair(a, b)
	assert.ErrorIs(t, err, arena.ErrNoSuchEntity)

	pa, _ := st.Partner(a)
	assert.True(t, pa.IsNone())
}

func TestTag(t *testing.T) {
	st := pairing.New()
	a := st.NewPortal("north gate")
	tag, err := st.Tag(a)
	require.NoError(t, err)
	assert.Equal(t, "north gate", tag)
}
