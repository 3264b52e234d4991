// Package arena implements the search-node arena: a single
// preallocated slice of search nodes handed out by bump allocation, with a
// strictly-LIFO rollback for the dead-end pruning pass to undo the most
// recent allocation without touching anything older.
//
// Handles are indices rather than pointers, so a node's Parent link stays
// valid for the arena's whole lifetime and the arena can be torn down in
// one step at search end — no per-node deallocation, no GC pressure on the
// hot path. Capacity is derived once, up front, from a node count or a
// byte budget, and is never grown: the memory budget is a hard cap, not a
// target.
package arena
