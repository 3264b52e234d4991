package order

import (
	"math/rand"
	"sort"

	"github.com/flowpath/solver/board"
	"github.com/flowpath/solver/packed"
)

// colorFeatures holds the four sort keys the static ordering compares on.
// userIndex always equals packed.MaxColors here: this repo exposes no
// manual color-pinning option, so every color is absent a user override —
// the field exists only so a future caller could narrow the comparator
// without touching it.
type colorFeatures struct {
	userIndex    int
	wallDistInit int
	wallDistGoal int
	manhattan    int
}

func manhattan(a, b packed.Pos) int {
	ax, ay := a.Coords()
	bx, by := b.Coords()

	return absInt(ax-bx) + absInt(ay-by)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// StaticOrder computes the deterministic branching order for info's colors:
// ascending user index, then ascending init wall distance, then descending
// goal wall distance, then descending endpoint Manhattan distance.
//
// If randomize is true, the order is instead a Fisher-Yates permutation
// drawn from a rand.Source seeded with rngSeed; the seed is threaded in
// by the caller so StaticOrder stays a pure function of its inputs.
func StaticOrder(info *board.PuzzleInfo, randomize bool, rngSeed int64) []int {
	perm := make([]int, info.NumColors)
	for i := range perm {
		perm[i] = i
	}

	if randomize {
		rng := rand.New(rand.NewSource(rngSeed))
		rng.Shuffle(len(perm), func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})

		return perm
	}

	feats := make([]colorFeatures, info.NumColors)
	for c := 0; c < info.NumColors; c++ {
		ix, iy := info.InitPos[c].Coords()
		gx, gy := info.GoalPos[c].Coords()
		feats[c] = colorFeatures{
			userIndex:    packed.MaxColors,
			wallDistInit: info.WallDistance(ix, iy),
			wallDistGoal: info.WallDistance(gx, gy),
			manhattan:    manhattan(info.InitPos[c], info.GoalPos[c]),
		}
	}

	sort.SliceStable(perm, func(i, j int) bool {
		a, b := feats[perm[i]], feats[perm[j]]
		if a.userIndex != b.userIndex {
			return a.userIndex < b.userIndex
		}
		if a.wallDistInit != b.wallDistInit {
			return a.wallDistInit < b.wallDistInit
		}
		if a.wallDistGoal != b.wallDistGoal {
			return a.wallDistGoal > b.wallDistGoal
		}

		return a.manhattan > b.manhattan
	})

	return perm
}

// NextColor picks the color the driver should branch on from state, given
// the static order computed once for info.
//
// The last-moved color is returned first if it has not yet completed (the
// "last color bias", which unconditionally overrides most-constrained
// selection so the search finishes one path before switching).
// Otherwise, if mostConstrained is set, the not-yet-completed color in
// order whose head has the fewest free neighbors wins ties broken by
// static order; otherwise the first not-yet-completed color in order wins.
func NextColor(info *board.PuzzleInfo, state *board.GameState, order []int, mostConstrained bool) int {
	if state.LastColor != board.NoColor && !state.IsCompleted(state.LastColor) {
		return state.LastColor
	}

	if !mostConstrained {
		for _, c := range order {
			if !state.IsCompleted(c) {
				return c
			}
		}

		return board.NoColor
	}

	best := board.NoColor
	// The accumulator starts one past the real upper bound of 4 free
	// neighbors: 4 is itself a legal free count (a head open on every
	// side), and an initial best of 4 would never lose to a candidate
	// tied at 4, leaving best unset when every remaining head is fully
	// open. One past the bound guarantees the "<" comparison always
	// accepts the first candidate in order, which is exactly the
	// ties-go-to-static-order rule.
	bestFree := 5
	for _, c := range order {
		if state.IsCompleted(c) {
			continue
		}
		free := state.FreeAround(info, state.HeadPos[c])
		if free < bestFree {
			bestFree = free
			best = c
		}
	}

	return best
}
