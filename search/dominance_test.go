package search

import (
	"container/heap"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tieKey = Priority{Difficulty: 2, Count: 2, NegPref: -1, Length: 4}

// requireSortedMarks asserts the DominanceReach list invariant:
// last strictly ascending, points strictly ascending.
func requireSortedMarks(t *testing.T, ms []mark) {
	t.Helper()
	for i := 1; i < len(ms); i++ {
		require.Less(t, ms[i-1].last, ms[i].last)
		require.Equal(t, -1, ms[i-1].points.Cmp(ms[i].points))
	}
}

func TestDominanceReach_PrunesOnlyWhenReachable(t *testing.T) {
	d := newDominanceTable(DominanceReach)

	require.True(t, d.admit(tieKey, 3, big.NewInt(10)))
	// Earlier last: can reach more, so fewer points still survive.
	assert.True(t, d.admit(tieKey, 1, big.NewInt(4)))
	// Later last with no more points than (3,10): dominated.
	assert.False(t, d.admit(tieKey, 5, big.NewInt(10)))
	// Same last, fewer points: dominated by (3,10).
	assert.False(t, d.admit(tieKey, 3, big.NewInt(9)))
	// Between the two marks, above (1,4): survives.
	assert.True(t, d.admit(tieKey, 2, big.NewInt(5)))

	ms := d.marks[tieKey]
	requireSortedMarks(t, ms)
	assert.Len(t, ms, 3)
}

func TestDominanceReach_RemovesDominatedMarks(t *testing.T) {
	d := newDominanceTable(DominanceReach)
	require.True(t, d.admit(tieKey, 4, big.NewInt(3)))
	require.True(t, d.admit(tieKey, 6, big.NewInt(7)))
	require.True(t, d.admit(tieKey, 8, big.NewInt(9)))

	// (2,8) dominates (4,3) and (6,7) but not (8,9).
	require.True(t, d.admit(tieKey, 2, big.NewInt(8)))
	ms := d.marks[tieKey]
	requireSortedMarks(t, ms)
	require.Len(t, ms, 2)
	assert.Equal(t, 2, ms[0].last)
	assert.Equal(t, 8, ms[1].last)
}

func TestDominanceReach_KeysAreIndependent(t *testing.T) {
	d := newDominanceTable(DominanceReach)
	other := tieKey
	other.Length++
	require.True(t, d.admit(tieKey, 0, big.NewInt(10)))
	assert.True(t, d.admit(other, 9, big.NewInt(1)))
	assert.Equal(t, 2, d.size())
}

func TestDominanceShape_IgnoresLast(t *testing.T) {
	d := newDominanceTable(DominanceShape)
	require.True(t, d.admit(tieKey, 5, big.NewInt(10)))
	assert.False(t, d.admit(tieKey, 0, big.NewInt(10)))
	assert.True(t, d.admit(tieKey, 0, big.NewInt(11)))
	assert.Equal(t, 1, d.size())
}

func TestDominanceOff_AdmitsAll(t *testing.T) {
	d := newDominanceTable(DominanceOff)
	for i := 0; i < 3; i++ {
		assert.True(t, d.admit(tieKey, 1, big.NewInt(1)))
	}
	assert.Zero(t, d.size())
}

func TestTrail_SharesParent(t *testing.T) {
	var root *trail
	a := root.push(4)
	b := a.push(7)
	c := a.push(9)

	assert.Equal(t, []int{}, root.ids())
	assert.Equal(t, []int{4}, a.ids())
	assert.Equal(t, []int{4, 7}, b.ids())
	assert.Equal(t, []int{4, 9}, c.ids())
	assert.Same(t, b.prev, c.prev)
	assert.Equal(t, 2, c.len())
}

func TestFrontier_FIFOOnTies(t *testing.T) {
	f := frontier{}
	heap.Init(&f)
	low := Priority{Difficulty: 1}
	push := func(k Priority, seq uint64) { heap.Push(&f, &node{key: k, seq: seq}) }
	push(tieKey, 0)
	push(low, 1)
	push(tieKey, 2)
	push(low, 3)

	var got []uint64
	for f.Len() > 0 {
		got = append(got, heap.Pop(&f).(*node).seq)
	}
	assert.Equal(t, []uint64{1, 3, 0, 2}, got)
}
