package search_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/flowpath/solver/board"
	"github.com/flowpath/solver/packed"
	"github.com/flowpath/solver/puzzle"
	"github.com/flowpath/solver/search"
)

// SearchSuite exercises Search end to end: solvable and unsolvable boards,
// node and memory caps, determinism, and the invariants of a solved state.
type SearchSuite struct {
	suite.Suite
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// twoColorFiveByFive is a solvable 5x5 with two interlocking paths: R runs
// the border and curls inward to its center goal, B threads the left
// column and the remaining inner corridor. The solution covers all 25
// cells.
const twoColorFiveByFive = "R...." +
	"\n....." +
	"\n..R.." +
	"\n..B.." +
	"\nB....\n"

func (s *SearchSuite) TestTwoColorFiveByFiveSucceeds() {
	info, init, err := puzzle.Read(strings.NewReader(twoColorFiveByFive))
	require.NoError(s.T(), err)

	result, _, _, final, err := search.Search(info, init)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Success, result)
	require.Equal(s.T(), 0, final.NumFree)
	require.Equal(s.T(), uint32(0b11), final.Completed)
}

func (s *SearchSuite) TestSolvedStateChainsBackToInit() {
	info, init, err := puzzle.Read(strings.NewReader(twoColorFiveByFive))
	require.NoError(s.T(), err)

	result, _, _, final, err := search.Search(info, init)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Success, result)

	// Walk each color's chain backwards: the goal cell records the
	// direction of the step that reached it, and every path cell records
	// the direction it was entered by, so stepping against the recorded
	// direction must lead through same-colored path cells all the way to
	// the init endpoint. The chain lengths plus the endpoints must account
	// for the whole board.
	covered := 0
	for c := 0; c < info.NumColors; c++ {
		p := info.GoalPos[c]
		for steps := 0; ; steps++ {
			require.Less(s.T(), steps, info.Size*info.Size, "chain for color %d does not terminate", c)
			cell := final.Cells[p]
			require.Equal(s.T(), c, cell.Color())
			covered++
			if p == info.InitPos[c] {
				require.Equal(s.T(), packed.Init, cell.Type())

				break
			}
			p = info.Offset(p, cell.Dir().Opposite())
			require.NotEqual(s.T(), packed.Invalid, p)
		}
	}
	require.Equal(s.T(), info.Size*info.Size, covered)
	require.Equal(s.T(), info.Size*info.Size, countNonFree(info, &final)+final.NumFree)
}

func countNonFree(info *board.PuzzleInfo, st *board.GameState) int {
	n := 0
	for y := 0; y < info.Size; y++ {
		for x := 0; x < info.Size; x++ {
			if st.Cells[packed.PackPos(x, y)].Type() != packed.Free {
				n++
			}
		}
	}

	return n
}

func (s *SearchSuite) TestUncoveredFreeCellsAreUnreachable() {
	// A single color whose two endpoints are orthogonal neighbors, on a
	// 3x3 board. Covering the remaining 7 free cells with this one path is
	// impossible: the lone color completes the instant its head lands on
	// any cell adjacent to its goal, stranding the rest of the board
	// forever free, and a board full of free cells is not solved no matter
	// how many colors have closed.
	input := "AA.\n...\n...\n"
	info, init, err := puzzle.Read(strings.NewReader(input))
	require.NoError(s.T(), err)

	result, _, _, final, err := search.Search(info, init)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Unreachable, result)
	require.Equal(s.T(), init, final)
}

func (s *SearchSuite) TestFullyPackedTwoColorBoardIsUnreachable() {
	// A 2x2 board where every cell is an endpoint has zero free cells: the
	// only way for either color to progress would be to step directly
	// onto its own goal, which CanMove never permits (the goal cell is
	// non-FREE from the moment it is read). The root node therefore has no
	// legal moves in any direction and the search terminates after a
	// single frontier pop.
	input := "AB\nAB\n"
	info, init, err := puzzle.Read(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, init.NumFree)

	result, _, nodes, final, err := search.Search(info, init)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Unreachable, result)
	require.Equal(s.T(), init, final)
	require.Equal(s.T(), 1, nodes)
}

func (s *SearchSuite) TestCornerPocketBoardIsUnreachable() {
	// The top-right corner (4,0) can only ever be B's first move: B cannot
	// re-approach a cell adjacent to its own init later, and R entering
	// the corner could never leave. That first move commits B to marching
	// straight down the right column and completing against its corner
	// goal after four moves, which leaves every neighbor of R's goal to R
	// alone — impossible, since R closes on the first of them it touches
	// and strands the others.
	input := "R..B." +
		"\n....." +
		"\n.R..." +
		"\n....." +
		"\n....B\n"
	info, init, err := puzzle.Read(strings.NewReader(input))
	require.NoError(s.T(), err)

	result, _, nodes, final, err := search.Search(info, init)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Unreachable, result)
	require.Equal(s.T(), init, final)
	require.Greater(s.T(), nodes, 0)
}

func (s *SearchSuite) TestMaxNodesOneReturnsFull() {
	// A node cap of 1 on a puzzle requiring at least one move: the root
	// consumes the only slot, so the first child allocation reports the
	// arena full.
	input := "AA.\n...\n...\n"
	info, init, err := puzzle.Read(strings.NewReader(input))
	require.NoError(s.T(), err)

	result, _, _, final, err := search.Search(info, init, search.WithMaxNodes(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Full, result)
	require.Equal(s.T(), init, final)
}

func (s *SearchSuite) TestDeterministicAcrossRuns() {
	// With OrderRandom off, two runs on the same input must produce a
	// byte-identical final state and an identical node count.
	info, init, err := puzzle.Read(strings.NewReader(twoColorFiveByFive))
	require.NoError(s.T(), err)

	result1, _, nodes1, final1, err := search.Search(info, init)
	require.NoError(s.T(), err)
	result2, _, nodes2, final2, err := search.Search(info, init)
	require.NoError(s.T(), err)

	require.Equal(s.T(), result1, result2)
	require.Equal(s.T(), nodes1, nodes2)
	require.Equal(s.T(), final1, final2)
}

func (s *SearchSuite) TestContextCancellationReturnsFull() {
	info, init, err := puzzle.Read(strings.NewReader(twoColorFiveByFive))
	require.NoError(s.T(), err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, _, _, final, err := search.Search(info, init, search.WithContext(ctx))
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Full, result)
	require.Equal(s.T(), init, final)
}

func (s *SearchSuite) TestCheckDeadendsStillSolvesTheSameBoard() {
	info, init, err := puzzle.Read(strings.NewReader(twoColorFiveByFive))
	require.NoError(s.T(), err)

	result, _, _, final, err := search.Search(info, init, search.WithCheckDeadends(true))
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Success, result)
	require.Equal(s.T(), 0, final.NumFree)
}

func (s *SearchSuite) TestWithMaxNodesZeroIsOptionViolation() {
	info, init, err := puzzle.Read(strings.NewReader(twoColorFiveByFive))
	require.NoError(s.T(), err)

	_, _, _, _, err = search.Search(info, init, search.WithMaxNodes(0))
	require.ErrorIs(s.T(), err, search.ErrOptionViolation)
}

// sevenBySevenThreeColor is a roomy 7x7 board with three colors: enough
// free space for the search to wander through before either solving or
// exhausting the frontier.
const sevenBySevenThreeColor = "R..B..." +
	"\n......." +
	"\n.R....." +
	"\n......." +
	"\n....B.." +
	"\n......." +
	"\n..G...G\n"

func (s *SearchSuite) TestDeadEndPruningNeverIncreasesNodeCount() {
	// For the same board, dead-end checking on never enqueues more nodes
	// than dead-end checking off: pruning only ever discards an
	// already-legal child, it never makes an otherwise-illegal move legal,
	// so the pruned search tree is a subtree of the unpruned one. Both
	// runs share a generous but equal node budget so the comparison stays
	// meaningful even if one side would otherwise run long.
	info, init, err := puzzle.Read(strings.NewReader(sevenBySevenThreeColor))
	require.NoError(s.T(), err)

	_, _, nodesOff, _, err := search.Search(info, init, search.WithCheckDeadends(false), search.WithMaxNodes(50000))
	require.NoError(s.T(), err)
	_, _, nodesOn, _, err := search.Search(info, init, search.WithCheckDeadends(true), search.WithMaxNodes(50000))
	require.NoError(s.T(), err)

	require.LessOrEqual(s.T(), nodesOn, nodesOff)
}

func (s *SearchSuite) TestParityUnsolvableBoardTerminatesUnreachable() {
	// A board whose free-cell count can't match any valid path partition
	// by parity. A single color's path flips the (x+y)%2 checkerboard
	// parity of its head on every move, so after the fixed number of
	// moves a full-coverage path requires (size*size-2, independent of
	// route), the head's final parity is fixed too. Here size=4 makes
	// that move count 14 (even), and init (0,0) and goal (2,2) share
	// checkerboard parity 0 — so the head can never end on a cell
	// adjacent to goal (adjacency always flips parity), no matter which
	// route the search tries. No wall or obstacle is needed to force
	// this: it is an unsolvable board by parity alone.
	input := "A...\n....\n..A.\n....\n"
	info, init, err := puzzle.Read(strings.NewReader(input))
	require.NoError(s.T(), err)

	result, _, nodes, final, err := search.Search(info, init)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Unreachable, result)
	require.Equal(s.T(), init, final)
	require.Greater(s.T(), nodes, 0)
}

func (s *SearchSuite) TestMaxNodesTenOnSolvableBoardReturnsFull() {
	// The solvable 5x5 needs 21 moves, so its solution node lies far
	// deeper than a 10-node arena reaches: the cap must surface as FULL,
	// never as a false UNSOLVABLE or a phantom SUCCESS.
	info, init, err := puzzle.Read(strings.NewReader(twoColorFiveByFive))
	require.NoError(s.T(), err)

	result, _, _, final, err := search.Search(info, init, search.WithMaxNodes(10))
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Full, result)
	require.Equal(s.T(), init, final)
}

func (s *SearchSuite) TestResultStringNames() {
	require.Equal(s.T(), "SUCCESS", search.Success.String())
	require.Equal(s.T(), "UNSOLVABLE", search.Unreachable.String())
	require.Equal(s.T(), "FULL", search.Full.String())
}
