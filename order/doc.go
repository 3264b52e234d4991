// Package order decides which color the search driver branches on next.
//
// Two layers:
//
//   - StaticOrder computes a fixed branching order at load time: a stable
//     sort on four keys (user pin, wall distance of the init endpoint, wall
//     distance of the goal endpoint, endpoint Manhattan distance), or, in
//     randomize mode, a Fisher-Yates shuffle seeded explicitly rather than
//     from wall-clock, so StaticOrder stays a pure function of its inputs —
//     see DESIGN.md's "order-random seeding" decision.
//
//   - NextColor makes the dynamic per-node choice: keep extending the color
//     that moved last (the "last color bias"), unless it has just
//     completed; otherwise fall back to the static order, optionally
//     narrowed to the color whose head currently has the fewest free
//     neighbors (the "most-constrained" heuristic).
package order
