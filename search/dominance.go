package search

import (
	"math/big"
	"sort"
)

// mark is a state recorded in the dominance table.
type mark struct {
	last   int
	points *big.Int
}

// dominanceTable remembers, per Priority, the states that no other recorded
// state dominates.
//
// Under DominanceReach each list is sorted by last ascending with points
// strictly increasing: an entry with a smaller last and no fewer points would
// have removed the later one. Under DominanceShape each list holds one mark
// whose last is ignored.
type dominanceTable struct {
	policy Dominance
	marks  map[Priority][]mark
}

func newDominanceTable(policy Dominance) *dominanceTable {
	return &dominanceTable{policy: policy, marks: make(map[Priority][]mark)}
}

// admit reports whether a state (key, last, points) survives pruning. A
// surviving state is recorded before admit returns.
func (t *dominanceTable) admit(key Priority, last int, points *big.Int) bool {
	switch t.policy {
	case DominanceOff:
		return true
	case DominanceShape:
		return t.admitShape(key, last, points)
	default:
		return t.admitReach(key, last, points)
	}
}

func (t *dominanceTable) admitShape(key Priority, last int, points *big.Int) bool {
	if ms, ok := t.marks[key]; ok && ms[0].points.Cmp(points) >= 0 {
		return false
	}
	t.marks[key] = []mark{{last: last, points: points}}

	return true
}

func (t *dominanceTable) admitReach(key Priority, last int, points *big.Int) bool {
	ms := t.marks[key]

	// Entries [0, reach) can take every problem this state can.
	// Points increase along the list, so the best of them is the last one.
	reach := sort.Search(len(ms), func(i int) bool { return ms[i].last > last })
	if reach > 0 && ms[reach-1].points.Cmp(points) >= 0 {
		return false
	}

	// Drop entries this state dominates: last >= ours and points <= ours.
	// They form a contiguous run starting at lo.
	lo := sort.Search(len(ms), func(i int) bool { return ms[i].last >= last })
	hi := lo
	for hi < len(ms) && ms[hi].points.Cmp(points) <= 0 {
		hi++
	}

	updated := make([]mark, 0, len(ms)-(hi-lo)+1)
	updated = append(updated, ms[:lo]...)
	updated = append(updated, mark{last: last, points: points})
	updated = append(updated, ms[hi:]...)
	t.marks[key] = updated

	return true
}

// size returns the number of recorded marks.
func (t *dominanceTable) size() int {
	n := 0
	for _, ms := range t.marks {
		n += len(ms)
	}

	return n
}
