// Package puzzle implements the text puzzle file format: reading a
// puzzle into a board.PuzzleInfo/board.GameState pair, and rendering a
// GameState back out as a plain grid for debugging and test assertions.
//
// Neither direction is imported by package search — the reader and
// renderer are I/O adapters, kept adjacent to the search core rather than
// inside it.
package puzzle
