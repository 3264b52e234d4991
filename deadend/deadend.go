package deadend

import (
	"github.com/flowpath/solver/board"
	"github.com/flowpath/solver/packed"
)

// effectivelyFree reports whether m can still be entered or exited by some
// active path: either it is FREE outright, or it is the active head or the
// unreached goal of a not-yet-completed color. The predicate is
// permissive: a head counted this way may not actually be able to turn
// toward the cell in question.
func effectivelyFree(info *board.PuzzleInfo, state *board.GameState, m packed.Pos) bool {
	if state.Cells[m].Type() == packed.Free {
		return true
	}
	for c := 0; c < info.NumColors; c++ {
		if state.IsCompleted(c) {
			continue
		}
		if m == state.HeadPos[c] || m == info.GoalPos[c] {
			return true
		}
	}

	return false
}

// IsDeadEnd reports whether p is a dead-end cell: FREE, with fewer than
// two in-bounds neighbors effectively free. A non-FREE cell is never a
// dead end under this predicate.
func IsDeadEnd(info *board.PuzzleInfo, state *board.GameState, p packed.Pos) bool {
	if state.Cells[p].Type() != packed.Free {
		return false
	}

	free := 0
	for _, d := range board.Dirs {
		m := info.Offset(p, d)
		if m == packed.Invalid {
			continue
		}
		if effectivelyFree(info, state, m) {
			free++
		}
	}

	return free < 2
}

// Prune examines the two-step neighborhood of state.LastColor's current
// head and reports true if any cell in it is a dead end. It is meant to
// be called on a state immediately after board.MakeMove; the caller rolls
// back the arena allocation when Prune returns true.
func Prune(info *board.PuzzleInfo, state *board.GameState) bool {
	if state.LastColor >= info.NumColors {
		// No move has been made yet (root node): there is no "just advanced
		// head" to examine, so nothing to prune.
		return false
	}

	h := state.HeadPos[state.LastColor]
	checked := make(map[packed.Pos]bool, 12)

	check := func(p packed.Pos) bool {
		if checked[p] {
			return false
		}
		checked[p] = true

		return IsDeadEnd(info, state, p)
	}

	for _, d := range board.Dirs {
		n1 := info.Offset(h, d)
		if n1 == packed.Invalid || state.Cells[n1].Type() != packed.Free {
			continue
		}
		if check(n1) {
			return true
		}
		for _, d2 := range board.Dirs {
			n2 := info.Offset(n1, d2)
			if n2 == packed.Invalid || state.Cells[n2].Type() != packed.Free {
				continue
			}
			if check(n2) {
				return true
			}
		}
	}

	return false
}
