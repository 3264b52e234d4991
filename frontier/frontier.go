package frontier

import (
	"container/heap"

	"github.com/flowpath/solver/arena"
)

// handleHeap is the container/heap.Interface implementation backing
// Frontier: a small unexported slice type carrying just enough to order
// itself, with the cost looked up from the arena rather than duplicated
// onto each item.
type handleHeap struct {
	ar      *arena.Arena
	handles []arena.Handle
}

func (h handleHeap) Len() int { return len(h.handles) }

// Less orders ascending by node cost, tie-breaking ascending by handle
// value so that nodes enqueued earlier (lower handle, since the arena is
// a bump allocator) drain before later ones at equal cost — a stable,
// FIFO-like tie-break.
func (h handleHeap) Less(i, j int) bool {
	ni, nj := h.ar.Get(h.handles[i]), h.ar.Get(h.handles[j])
	if ni.CostToNode != nj.CostToNode {
		return ni.CostToNode < nj.CostToNode
	}

	return h.handles[i] < h.handles[j]
}

func (h handleHeap) Swap(i, j int) { h.handles[i], h.handles[j] = h.handles[j], h.handles[i] }

func (h *handleHeap) Push(x interface{}) {
	h.handles = append(h.handles, x.(arena.Handle))
}

func (h *handleHeap) Pop() interface{} {
	old := h.handles
	n := len(old)
	item := old[n-1]
	h.handles = old[:n-1]

	return item
}

// Frontier is the priority-ordered set of not-yet-expanded search nodes:
// a binary min-heap of arena.Handle, plus a monotonic enqueue counter
// distinct from the heap's current size.
type Frontier struct {
	h             handleHeap
	totalEnqueued int
}

// New builds an empty Frontier backed by ar, preallocating room for
// capacity handles (callers size it to match the arena's own capacity).
func New(capacity int, ar *arena.Arena) *Frontier {
	f := &Frontier{h: handleHeap{ar: ar, handles: make([]arena.Handle, 0, capacity)}}
	heap.Init(&f.h)

	return f
}

// Push adds h to the frontier and increments TotalEnqueued.
func (f *Frontier) Push(h arena.Handle) {
	heap.Push(&f.h, h)
	f.totalEnqueued++
}

// Pop removes and returns the lowest-cost handle, breaking ties by handle
// value. Calling Pop on an empty Frontier is a programmer error.
func (f *Frontier) Pop() arena.Handle {
	return heap.Pop(&f.h).(arena.Handle)
}

// Peek returns the lowest-cost handle without removing it.
func (f *Frontier) Peek() arena.Handle {
	return f.h.handles[0]
}

// IsEmpty reports whether the frontier has no handles left.
func (f *Frontier) IsEmpty() bool {
	return len(f.h.handles) == 0
}

// Len reports the frontier's current size, distinct from TotalEnqueued.
func (f *Frontier) Len() int {
	return len(f.h.handles)
}

// TotalEnqueued is the monotonic count of handles ever pushed onto this
// frontier, used by the driver as its "nodes examined" statistic.
func (f *Frontier) TotalEnqueued() int {
	return f.totalEnqueued
}
