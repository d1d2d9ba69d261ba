package arrayvec

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrainMiddle(t *testing.T) {
	vec := New[int](8)
	vec.ExtendFromSlice([]int{1, 2, 3, 4, 5, 6})

	d, err := vec.Drain(1, 4)
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())
	require.Equal(t, 1, vec.Len())

	require.Equal(t, []int{2, 3, 4}, slices.Collect(d.Seq()))
	require.Equal(t, []int{1, 5, 6}, vec.Slice())
	requireVacant(t, vec)
}

func TestDrainBothEnds(t *testing.T) {
	tr := newTracker()
	vec := tr.vec(t, 6, 1, 2, 3, 4, 5, 6)

	d, err := vec.Drain(1, 5)
	require.NoError(t, err)

	front, ok := d.Next()
	require.True(t, ok)
	require.Equal(t, 2, front.id)

	back, ok := d.NextBack()
	require.True(t, ok)
	require.Equal(t, 5, back.id)
	require.Equal(t, 2, d.Len())

	d.Drop()
	tr.requireDropped(t, 3, 4)
	require.Equal(t, []int{1, 6}, ids(vec.Slice()))
	requireVacant(t, vec)

	d.Drop()
	_, ok = d.Next()
	require.False(t, ok)
	_, ok = d.NextBack()
	require.False(t, ok)
	require.Equal(t, 2, vec.Len())
	tr.requireDropped(t, 3, 4)
}

func TestDrainAll(t *testing.T) {
	vec := Of("a", "b", "c")

	d, err := vec.Drain(0, 3)
	require.NoError(t, err)
	var got []string
	for val, ok := d.NextBack(); ok; val, ok = d.NextBack() {
		got = append(got, val)
	}
	d.Drop()

	require.Equal(t, []string{"c", "b", "a"}, got)
	require.True(t, vec.Empty())
	require.Equal(t, 3, vec.Cap())
}

func TestDrainEmptyRange(t *testing.T) {
	vec := Of(1, 2, 3)

	d, err := vec.Drain(2, 2)
	require.NoError(t, err)
	require.Zero(t, d.Len())
	d.Drop()
	require.Equal(t, []int{1, 2, 3}, vec.Slice())
}

func TestDrainSeqBreak(t *testing.T) {
	tr := newTracker()
	vec := tr.vec(t, 5, 1, 2, 3, 4, 5)

	d, err := vec.Drain(0, 3)
	require.NoError(t, err)
	for val := range d.Seq() {
		require.Equal(t, 1, val.id)
		break
	}

	tr.requireDropped(t, 2, 3)
	require.Equal(t, []int{4, 5}, ids(vec.Slice()))
}

func TestDrainPanicRestoresTail(t *testing.T) {
	tr := newTracker()
	tr.panicOn = 2
	vec := tr.vec(t, 4, 1, 2, 3, 4)

	d, err := vec.Drain(0, 2)
	require.NoError(t, err)
	require.PanicsWithValue(t, "drop failed", d.Drop)

	tr.requireDropped(t, 1, 2)
	require.Equal(t, []int{3, 4}, ids(vec.Slice()))
	requireVacant(t, vec)
}

func TestDrainOutOfRange(t *testing.T) {
	vec := Of(1, 2, 3)

	_, err := vec.Drain(2, 1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = vec.Drain(-1, 1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = vec.Drain(0, 4)
	require.EqualError(t, err, "arrayvec: Vec.Drain(): index 4 is out of bounds in vector of length 3")

	require.Equal(t, []int{1, 2, 3}, vec.Slice())
}
