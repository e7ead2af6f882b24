package astar

// entry is one frontier member.
type entry[N comparable] struct {
	node  N
	f     int    // g + h at the time of the last update
	h     int    // heuristic, fixed per node
	seq   uint64 // insertion order
	index int    // position in the heap, maintained by Swap/Push/Pop
}

// frontier is a min-heap of *entry ordered by (f, h, less, seq).
// Entries track their own index so that decrease-key can use heap.Fix.
type frontier[N comparable] struct {
	items []*entry[N]
	less  func(a, b N) bool
}

// Len returns the number of queued entries.
func (q frontier[N]) Len() int { return len(q.items) }

// Less implements the documented tie-break chain.
func (q frontier[N]) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if q.less != nil {
		if q.less(a.node, b.node) {
			return true
		}
		if q.less(b.node, a.node) {
			return false
		}
	}

	return a.seq < b.seq
}

// Swap swaps two entries and keeps their indices current.
func (q frontier[N]) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

// Push appends x; called by heap.Push.
func (q *frontier[N]) Push(x any) {
	e := x.(*entry[N])
	e.index = len(q.items)
	q.items = append(q.items, e)
}

// Pop removes the last entry; called by heap.Pop.
func (q *frontier[N]) Pop() any {
	old := q.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // avoid memory leak
	e.index = -1
	q.items = old[:n-1]

	return e
}
