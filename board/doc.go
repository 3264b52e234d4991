// Package board holds the puzzle's immutable static info (PuzzleInfo) and
// its mutable per-node state (GameState), plus the move legality,
// application, and completion rules that operate on them.
//
// PuzzleInfo is built once by a reader (see package puzzle) and never
// mutated again. GameState is copied by value into every search node (its
// fields are fixed-size arrays and scalars, so a plain Go assignment is
// already a deep copy) and then mutated in place as moves are applied along a single
// branch of the search tree.
package board
