// Package frontier implements the priority frontier: a binary min-heap of
// arena.Handle ordered by ascending node cost, with a handle-value
// tie-break so equal-cost nodes drain in a stable, FIFO-like order.
//
// The heap is a container/heap implementation over a small item type, with
// no decrease-key (entries are immutable once pushed). It additionally
// carries a total-enqueued counter the driver reports as its "nodes
// examined" statistic — distinct from the heap's current length, which
// shrinks as nodes are popped.
package frontier
