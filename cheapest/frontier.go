package cheapest

// entry is one partial route waiting in the frontier.
type entry struct {
	cost int64 // accumulated price from the source
	node int   // node the partial route ends at
	hops int   // flights taken so far
}

// frontier is a min-heap of entries ordered by cost only. Ties are broken by
// whatever container/heap happens to do; nothing depends on the tie order.
//
// Entries are never updated in place: an improvement pushes a new entry and the
// old one is discarded when popped (lazy decrease-key).
type frontier []entry

// Len returns the number of pending entries.
func (f frontier) Len() int { return len(f) }

// Less orders entries by ascending cost.
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x, which must be an entry. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]

	return e
}
