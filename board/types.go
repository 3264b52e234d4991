package board

import "github.com/flowpath/solver/packed"

// NoColor marks GameState.LastColor at the root of a search, before any
// move has been made: it is chosen >= any real color index so that
// "LastColor set and not completed" is always false at the root.
const NoColor = packed.MaxColors

// PuzzleInfo is the immutable, per-board static description produced by a
// reader and threaded unchanged through the whole search.
type PuzzleInfo struct {
	// Size is the board edge length, in [3, 15].
	Size int

	// NumColors is the number of distinct colors, in [1, 16].
	NumColors int

	// ColorIDs is the display palette index for each color, in load order.
	ColorIDs []int

	// ColorOrder is a permutation of [0, NumColors) giving the branching
	// order color selection falls back to; see package order.
	ColorOrder []int

	// InitPos and GoalPos hold each color's two packed endpoint positions.
	// Per the loader invariant, InitPos[c] is always the endpoint nearer a
	// wall (ties broken by position value); GoalPos[c] is the farther one.
	InitPos []packed.Pos
	GoalPos []packed.Pos

	// ColorTbl maps an input character to its color index. Only the
	// puzzle reader consumes this; it rides along on PuzzleInfo so the
	// whole immutable value can be threaded from reader to driver to
	// renderer without a second parallel struct.
	ColorTbl map[byte]int
}

// Offset wraps packed.Offset with this board's size.
func (info *PuzzleInfo) Offset(p packed.Pos, d packed.Dir) packed.Pos {
	return packed.Offset(info.Size, p, d)
}

// WallDistance wraps packed.WallDistance with this board's size.
func (info *PuzzleInfo) WallDistance(x, y int) int {
	return packed.WallDistance(info.Size, x, y)
}

// GameState is the mutable per-node board: the packed cell grid plus the
// bookkeeping needed to resume a search from it. Every field is a
// fixed-size array or a scalar so that GameState is copied by value with
// no aliasing.
type GameState struct {
	// Cells is indexed directly by packed.Pos.
	Cells [packed.MaxCells]packed.Cell

	// HeadPos[c] is color c's active head: the cell currently being
	// extended from. Once c completes it stays on the last PATH cell, the
	// one adjacent to PuzzleInfo.GoalPos[c].
	HeadPos [packed.MaxColors]packed.Pos

	// NumFree is the count of FREE cells remaining.
	NumFree int

	// LastColor is the color most recently advanced by MakeMove, or
	// NoColor at the root.
	LastColor int

	// Completed is a bitset: bit c is set iff color c's path is closed.
	Completed uint32
}

// NewGameState builds the initial GameState for info: INIT and GOAL cells
// placed at their endpoints, every other cell FREE, heads at each color's
// InitPos, nothing completed.
func NewGameState(info *PuzzleInfo) GameState {
	var st GameState
	st.LastColor = NoColor
	st.NumFree = info.Size*info.Size - 2*info.NumColors
	for c := 0; c < info.NumColors; c++ {
		st.Cells[info.InitPos[c]] = packed.PackCell(packed.Init, c, packed.DirLeft)
		st.Cells[info.GoalPos[c]] = packed.PackCell(packed.Goal, c, packed.DirLeft)
		st.HeadPos[c] = info.InitPos[c]
	}
	return st
}

// Clone returns an independent copy of st.
func (st GameState) Clone() GameState {
	return st
}
