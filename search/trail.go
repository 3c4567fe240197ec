package search

// trail is a persistent list of the problems taken by a state, newest first.
// Children share their parent's trail; no trail is modified after push returns.
type trail struct {
	id   int
	prev *trail
	size int
}

// push returns a new trail with id appended. t may be nil (empty trail).
func (t *trail) push(id int) *trail {
	return &trail{id: id, prev: t, size: t.len() + 1}
}

// len returns the number of ids on the trail.
func (t *trail) len() int {
	if t == nil {
		return 0
	}

	return t.size
}

// ids returns the ids in the order they were taken.
func (t *trail) ids() []int {
	out := make([]int, t.len())
	for i, cur := len(out)-1, t; cur != nil; i, cur = i-1, cur.prev {
		out[i] = cur.id
	}

	return out
}
