package arrayvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// tracker counts Drop calls per element id.
type tracker struct {
	drops map[int]int
	order []int
	// Drop panics for this id after recording it (0 = never)
	panicOn int
}

func newTracker() *tracker {
	return &tracker{drops: map[int]int{}}
}

type item struct {
	id int
	t  *tracker
}

func (it item) Drop() {
	it.t.drops[it.id]++
	it.t.order = append(it.t.order, it.id)
	if it.id == it.t.panicOn {
		panic("drop failed")
	}
}

func (t *tracker) items(ids ...int) []item {
	items := make([]item, len(ids))
	for i, id := range ids {
		items[i] = item{id, t}
	}
	return items
}

func (t *tracker) vec(tb testing.TB, capacity int, ids ...int) *Vec[item] {
	tb.Helper()
	vec := New[item](capacity)
	require.NoError(tb, vec.ExtendFromSlice(t.items(ids...)))
	return vec
}

// requireDropped asserts that exactly ids were dropped, once each.
func (t *tracker) requireDropped(tb testing.TB, ids ...int) {
	tb.Helper()
	want := map[int]int{}
	for _, id := range ids {
		want[id] = 1
	}
	require.Equal(tb, want, t.drops)
}

func ids(items []item) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.id
	}
	return ids
}

// requireVacant asserts that every slot past the live prefix holds the zero value.
func requireVacant[T any](tb testing.TB, vec *Vec[T]) {
	tb.Helper()
	require.LessOrEqual(tb, vec.length, len(vec.slots))
	var zero T
	for i := vec.length; i < len(vec.slots); i++ {
		require.Equal(tb, zero, vec.slots[i], "slot %d", i)
	}
}
