// Package search implements the Dijkstra-style best-first driver:
// dequeue the lowest-cost frontier node, ask package order
// which color to branch on, try its four moves through package board,
// prune dead ends via package deadend, and enqueue surviving children
// through package frontier — until a solved state appears, the frontier
// drains, or the arena fills.
//
// Complexity:
//
//   - Time:  O(N log N) where N is the number of nodes ever enqueued —
//     each node is popped once (O(log N) heap pop) and pushes at most
//     four children (O(log N) heap push each).
//   - Space: O(N) for the arena plus O(N) for the frontier's handle slice,
//     both fixed up front by Options' node/byte budget.
package search

import (
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation is returned (via Search's err field) when an Option
// was given an invalid value — surfaced at run time rather than panicking
// at construction time, since an Options value may be built once and
// reused across many boards.
var ErrOptionViolation = errors.New("search: invalid option supplied")

// Options configures a single Search call.
//
//   - MaxNodes, if > 0, caps the arena at exactly this many node slots.
//   - MaxMB is used to derive the cap when MaxNodes == 0: floor(MaxMB *
//     1<<20 / sizeof(arena.Node)). Default 1024.
//   - OrderRandom shuffles the static color order instead of sorting it.
//   - OrderMostConstrained enables the dynamic most-constrained selector;
//     default true.
//   - CheckDeadends enables the two-step dead-end pruning pass; default
//     false.
//   - RandSeed seeds OrderRandom's shuffle. The seed is threaded in
//     explicitly rather than drawn from wall-clock so Search stays a pure
//     function of its inputs; see DESIGN.md.
//   - Ctx bounds wall-clock search time: checked once per frontier pop. A
//     cancelled context surfaces as Full, since it represents the search
//     being cut off before exhausting the frontier, the same class of
//     outcome as running out of arena space.
type Options struct {
	MaxNodes             int
	MaxMB                float64
	OrderRandom          bool
	OrderMostConstrained bool
	CheckDeadends        bool
	RandSeed             int64
	Ctx                  context.Context

	err error
}

// Option configures Options via the functional-options pattern.
type Option func(*Options)

// DefaultOptions returns the defaults: MaxMB 1024, MaxNodes 0 (derive
// from MaxMB), OrderMostConstrained true, CheckDeadends false,
// OrderRandom false, RandSeed 0, Ctx context.Background().
func DefaultOptions() Options {
	return Options{
		MaxNodes:             0,
		MaxMB:                1024,
		OrderRandom:          false,
		OrderMostConstrained: true,
		CheckDeadends:        false,
		RandSeed:             0,
		Ctx:                  context.Background(),
	}
}

// WithMaxNodes caps the arena at exactly n node slots. n must be positive;
// a non-positive value records ErrOptionViolation.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxNodes must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxNodes = n
	}
}

// WithMaxMB sets the byte budget used to derive the arena's capacity when
// MaxNodes is left at 0. mb must be positive; a non-positive value records
// ErrOptionViolation.
func WithMaxMB(mb float64) Option {
	return func(o *Options) {
		if mb <= 0 {
			o.err = fmt.Errorf("%w: MaxMB must be positive (%g)", ErrOptionViolation, mb)

			return
		}
		o.MaxMB = mb
	}
}

// WithOrderRandom toggles color-order randomization.
func WithOrderRandom(randomize bool) Option {
	return func(o *Options) { o.OrderRandom = randomize }
}

// WithOrderMostConstrained toggles the most-constrained dynamic selector.
func WithOrderMostConstrained(enabled bool) Option {
	return func(o *Options) { o.OrderMostConstrained = enabled }
}

// WithCheckDeadends toggles the two-step dead-end pruning pass.
func WithCheckDeadends(enabled bool) Option {
	return func(o *Options) { o.CheckDeadends = enabled }
}

// WithRandSeed sets the seed consumed when OrderRandom is enabled.
func WithRandSeed(seed int64) Option {
	return func(o *Options) { o.RandSeed = seed }
}

// WithContext sets the context used to bound wall-clock search time. A nil
// ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// capacity derives the arena/frontier capacity from Options.
func (o Options) capacity(nodeSize int) int {
	if o.MaxNodes > 0 {
		return o.MaxNodes
	}

	return int(o.MaxMB * (1 << 20) / float64(nodeSize))
}

// Result is the driver's terminal outcome: whenever Search returns a nil
// err, its Result is exactly one of Success, Unreachable, or Full.
type Result int

const (
	// Success: a terminal solved state was found.
	Success Result = iota
	// Unreachable: the frontier drained with no solved state found — the
	// puzzle has no solution.
	Unreachable
	// Full: the arena's fixed capacity was exhausted before a solution
	// was found or the frontier drained.
	Full
	// inProgress marks a not-yet-terminal expansion inside the driver. It
	// is never returned as a search outcome; Search returns it only
	// together with a non-nil err, as a value distinct from any real
	// terminal result.
	inProgress
)

// String renders r as its report name.
func (r Result) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case Unreachable:
		return "UNSOLVABLE"
	case Full:
		return "FULL"
	default:
		return "IN_PROGRESS"
	}
}
