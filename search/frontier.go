package search

import "math/big"

// node is one generated state waiting in the frontier.
type node struct {
	key    Priority // cumulative cost tuple
	points *big.Int // cumulative points, never mutated after construction
	last   int      // canonical index of the last problem taken, -1 for the root
	trail  *trail   // problems taken so far
	seq    uint64   // insertion order, breaks Priority ties
}

// frontier is a min-heap of *node ordered by (key, seq).
// Ordering by seq on equal keys serves ties first-in first-out.
type frontier []*node

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by Priority, then by insertion sequence.
func (f frontier) Less(i, j int) bool {
	if c := f[i].key.Compare(f[j].key); c != 0 {
		return c < 0
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *node.
func (f *frontier) Push(x any) { *f = append(*f, x.(*node)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
