package pathfind

// nodeItem is one frontier entry: a cell index, its tentative cost and the
// push sequence number used to break cost ties in insertion order.
type nodeItem struct {
	idx  int
	cost float64
	seq  uint64
}

// nodePQ is a min-heap of nodeItem ordered by cost, then seq.
// We use the “lazy-decrease-key” approach: an improved cost is pushed as a
// new entry and the outdated one is discarded when popped.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost ascending, then by insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
