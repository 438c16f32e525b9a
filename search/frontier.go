package search

import (
	"container/heap"

	"github.com/katalvlaran/voxmaze/grid"
)

// frontierItem pairs a cell with the priority it was pushed at and a
// monotonically increasing sequence number. The sequence is the explicit
// tie-break for equal priorities: insertion order wins, so behavior is
// reproducible and independent of any pointer/address scheme.
type frontierItem struct {
	cell     *grid.Cell
	priority float64
	seq      uint64
}

// itemHeap is the min-heap storage behind frontier, ordered by ascending
// priority, then ascending sequence.
type itemHeap []*frontierItem

// Len returns the number of items in the heap.
func (h itemHeap) Len() int { return len(h) }

// Less prefers lower priority; on exact ties, earlier insertion.
func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x onto the heap; called by heap.Push.
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*frontierItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// frontier is the min-priority queue shared by A* and Dijkstra. It follows
// the lazy-decrease-key pattern: improving a cell pushes a fresh entry and
// the stale one is skipped when popped.
type frontier struct {
	items   itemHeap
	nextSeq uint64
}

// newFrontier returns an empty frontier with the given initial capacity.
func newFrontier(capacity int) *frontier {
	f := &frontier{items: make(itemHeap, 0, capacity)}
	heap.Init(&f.items)
	return f
}

// push enqueues c at the given priority, stamping the next sequence number.
// Complexity: O(log n).
func (f *frontier) push(c *grid.Cell, priority float64) {
	heap.Push(&f.items, &frontierItem{cell: c, priority: priority, seq: f.nextSeq})
	f.nextSeq++
}

// pop removes and returns the lowest-priority entry.
// Complexity: O(log n).
func (f *frontier) pop() *frontierItem {
	return heap.Pop(&f.items).(*frontierItem)
}

// len returns the number of queued entries, stale ones included.
func (f *frontier) len() int {
	return f.items.Len()
}
