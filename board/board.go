package board

import (
	"github.com/flowpath/solver/internal/assert"
	"github.com/flowpath/solver/packed"
)

// Dirs lists the four directions in the stable enumeration order the
// search driver iterates in.
var Dirs = [4]packed.Dir{packed.DirLeft, packed.DirRight, packed.DirUp, packed.DirDown}

// completedBit reports whether color c's bit is set in Completed.
func (st *GameState) completedBit(c int) bool {
	return st.Completed&(1<<uint(c)) != 0
}

// IsCompleted reports whether color c's path has already closed. Exported
// for package order's dynamic selector, which must not extend a color past
// its own completion.
func (st *GameState) IsCompleted(c int) bool {
	return st.completedBit(c)
}

// CanMove reports whether color can legally advance one step in direction
// d from its current head. It is a pure predicate: it never mutates st.
func (st *GameState) CanMove(info *PuzzleInfo, color int, d packed.Dir) bool {
	if color < 0 || color >= info.NumColors || st.completedBit(color) {
		return false
	}
	n := info.Offset(st.HeadPos[color], d)
	if n == packed.Invalid {
		return false
	}
	if st.Cells[n].Type() != packed.Free {
		return false
	}
	// At most one same-color neighbor of n is allowed, and only if it is
	// this color's predecessor (the current head) or its goal — otherwise
	// the path would touch itself.
	for _, dd := range Dirs {
		m := info.Offset(n, dd)
		if m == packed.Invalid {
			continue
		}
		if st.Cells[m].Type() == packed.Free {
			continue
		}
		if m == st.HeadPos[color] || m == info.GoalPos[color] {
			continue
		}
		if st.Cells[m].Color() == color {
			return false
		}
	}
	return true
}

// MakeMove applies color's move in direction d. The caller must have
// already confirmed CanMove(info, color, d); violating that is a
// programmer error, not a user-visible condition.
func (st *GameState) MakeMove(info *PuzzleInfo, color int, d packed.Dir) {
	assert.Truef(color >= 0 && color < info.NumColors && !st.completedBit(color),
		"board: MakeMove on out-of-range or completed color %d", color)

	n := info.Offset(st.HeadPos[color], d)
	assert.Truef(n != packed.Invalid, "board: MakeMove produced an invalid position")

	st.Cells[n] = packed.PackCell(packed.Path, color, d)
	st.HeadPos[color] = n
	st.NumFree--
	st.LastColor = color

	for _, dd := range Dirs {
		m := info.Offset(n, dd)
		if m != packed.Invalid && m == info.GoalPos[color] {
			st.Cells[m] = packed.PackCell(packed.Goal, color, dd)
			st.Completed |= 1 << uint(color)
			break
		}
	}
}

// FreeAround returns the number of p's in-bounds neighbors whose cell is
// FREE.
func (st *GameState) FreeAround(info *PuzzleInfo, p packed.Pos) int {
	n := 0
	for _, d := range Dirs {
		m := info.Offset(p, d)
		if m != packed.Invalid && st.Cells[m].Type() == packed.Free {
			n++
		}
	}
	return n
}

// IsSolved reports whether st is a terminal solved state: every cell is
// non-FREE and every color has closed its path.
func (st *GameState) IsSolved(info *PuzzleInfo) bool {
	return st.NumFree == 0 && st.Completed == uint32(1)<<uint(info.NumColors)-1
}
