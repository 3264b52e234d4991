// Package solver is the root of a Flow Free puzzle solver: given a square
// grid of cells with paired colored endpoints, it finds a set of
// non-crossing monochromatic paths — one per color — connecting every pair
// of endpoints such that every cell of the grid is covered exactly once.
//
// What is here?
//
//	A single-threaded, synchronous, best-first search core built from
//	small, independently testable pieces:
//
//	  • packed    — bit-packed board positions and cells, direction algebra
//	  • board     — puzzle info and mutable game state, move legality and
//	                application, completion detection
//	  • order     — deterministic color branching order and the
//	                most-constrained dynamic selector
//	  • deadend   — post-move pruning over the free-cell graph
//	  • arena     — a linear bump allocator for search nodes
//	  • frontier  — a binary min-heap ordering nodes by path cost
//	  • search    — the Dijkstra-style expansion loop tying the above
//	                together behind a single Search entry point
//	  • puzzle    — the text puzzle file format reader (an external
//	                collaborator, not part of the search core)
//
// Why this shape?
//
//   - Deterministic   — with random ordering disabled, identical input
//     always produces an identical search tree and node count.
//   - Bounded memory  — the arena's capacity is fixed up front from a node
//     or byte budget; the search terminates with FULL rather than growing
//     without limit.
//   - Single cost field — the frontier orders nodes only by CostToNode and
//     handle, and the driver calls only its Push, Pop, IsEmpty and
//     TotalEnqueued methods. The driver holds the concrete
//     *frontier.Frontier type; there is no interface for plugging in a
//     different scheduler.
//
// See cmd/flowsolver for a command-line entry point that reads a puzzle
// file, runs the search, and reports the result.
package solver
