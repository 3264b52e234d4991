// Package deadend implements the post-move pruning filter: a predicate
// over the free-cell graph that rejects a candidate child state if
// advancing a color's head has stranded some FREE cell with no way to be
// both entered and exited by the paths still being built.
//
// A FREE cell is a dead end when fewer than two of its in-bounds neighbors
// are "effectively free" — FREE themselves, or the active head or
// unreached goal of some not-yet-completed color. Pruning walks a two-step
// radius around the just-advanced head: the head's FREE neighbors, and
// those neighbors' FREE neighbors in turn, since advancing a head can
// strand a dead end that is not itself adjacent to the head.
package deadend
