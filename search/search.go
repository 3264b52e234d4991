package search

import (
	"time"

	"github.com/flowpath/solver/arena"
	"github.com/flowpath/solver/board"
	"github.com/flowpath/solver/deadend"
	"github.com/flowpath/solver/frontier"
	"github.com/flowpath/solver/internal/clock"
	"github.com/flowpath/solver/order"
)

// Search is the §6 entry point: it runs the Dijkstra-style best-first
// search from init to a terminal result.
//
// err is non-nil only when an Option was malformed; whenever err is nil,
// the returned Result is one of Success, Unreachable, or Full. On
// Unreachable or Full,
// final equals init unchanged; partial search state is never returned.
func Search(info *board.PuzzleInfo, init board.GameState, opts ...Option) (result Result, elapsed time.Duration, nodesEnqueued int, final board.GameState, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return inProgress, 0, 0, board.GameState{}, cfg.err
	}

	capacity := cfg.capacity(arena.SizeofNode())
	ar := arena.New(capacity)
	fr := frontier.New(capacity, ar)
	colorOrder := order.StaticOrder(info, cfg.OrderRandom, cfg.RandSeed)

	clk := clock.Start()

	r := &runner{
		info:  info,
		cfg:   cfg,
		ar:    ar,
		fr:    fr,
		order: colorOrder,
	}

	result, final = r.run(init)
	elapsed = clk.Elapsed()
	nodesEnqueued = fr.TotalEnqueued()

	return result, elapsed, nodesEnqueued, final, nil
}

// runner holds the mutable state for a single Search call, split into
// init/loop/expand stages.
type runner struct {
	info  *board.PuzzleInfo
	cfg   Options
	ar    *arena.Arena
	fr    *frontier.Frontier
	order []int
}

// run executes the full search loop and returns the terminal result
// together with the final board state.
func (r *runner) run(init board.GameState) (Result, board.GameState) {
	root, ok := r.init(init)
	if !ok {
		return Full, init
	}
	if root == arena.None {
		// Pruned at the root. In practice this never fires: the root's
		// LastColor is the NoColor sentinel, and deadend.Prune reports no
		// dead end when no move has been made yet.
		return Unreachable, init
	}
	r.fr.Push(root)

	return r.loop(init)
}

// init allocates and prunes the root node. ok is false only if the arena
// has no free slot for the root; arena.New rejects a capacity below 1, so
// a freshly built arena always has one.
func (r *runner) init(init board.GameState) (arena.Handle, bool) {
	root, ok := r.ar.Alloc()
	if !ok {
		return arena.None, false
	}
	node := r.ar.Get(root)
	node.State = init
	node.Parent = arena.None
	node.CostToNode = 0

	if r.cfg.CheckDeadends && deadend.Prune(r.info, &node.State) {
		r.ar.RollbackLast(root)

		return arena.None, true
	}

	return root, true
}

// loop is the Dijkstra-style dequeue/expand cycle: pop the lowest-cost
// node, ask package order for the color to branch on, try its four moves,
// prune and enqueue the survivors, until a terminal condition holds.
func (r *runner) loop(init board.GameState) (Result, board.GameState) {
	for {
		select {
		case <-r.cfg.Ctx.Done():
			return Full, init
		default:
		}

		if r.fr.IsEmpty() {
			return Unreachable, init
		}

		n := r.fr.Pop()
		result, solved, final := r.expand(n)
		if result != inProgress {
			if solved {
				return Success, final
			}

			return result, init
		}
	}
}

// expand tries all four directions for the color package order selects
// from the node at handle n, enqueueing each legal, non-pruned child.
// It returns (Success, true, solvedState) if a child completes the
// puzzle, (Full, false, zero) if the arena fills mid-expansion, or
// (inProgress, false, zero) once all four directions have been tried
// without reaching either terminal condition.
func (r *runner) expand(n arena.Handle) (Result, bool, board.GameState) {
	parent := r.ar.Get(n)
	color := order.NextColor(r.info, &parent.State, r.order, r.cfg.OrderMostConstrained)

	for _, d := range board.Dirs {
		if !parent.State.CanMove(r.info, color, d) {
			continue
		}

		child, ok := r.ar.Alloc()
		if !ok {
			return Full, false, board.GameState{}
		}

		// Re-fetch parent: Alloc only appends within the arena's
		// preallocated capacity, so this never reallocates the backing
		// slice, but re-fetching keeps the pointer use local and obviously
		// safe rather than relying on that guarantee across the call.
		parent = r.ar.Get(n)
		cnode := r.ar.Get(child)
		cnode.Parent = n
		cnode.CostToNode = parent.CostToNode + 1
		cnode.State = parent.State
		cnode.State.MakeMove(r.info, color, d)

		if r.cfg.CheckDeadends && deadend.Prune(r.info, &cnode.State) {
			r.ar.RollbackLast(child)

			continue
		}

		if cnode.State.IsSolved(r.info) {
			return Success, true, cnode.State
		}

		r.fr.Push(child)
	}

	return inProgress, false, board.GameState{}
}
