// Package puzzle is the root of a small, deterministic sliding-tile
// (N-puzzle) solver built around best-first graph search.
//
// What's inside:
//
//   - board/     — immutable N×N configurations: validated construction,
//     legal-move enumeration, successor creation, canonical keys,
//     a parity-based solvability test, and a deterministic scrambler.
//   - heuristic/ — the three admissible estimators (Zero, MisplacedTiles,
//     ManhattanDistance) as a closed enum bound to a fixed goal, with the
//     goal-position table precomputed once per search.
//   - solve/     — the engine: a lazy-deletion min-heap frontier ordered by
//     (f, g), an explored set keyed by configuration contents, a fixed
//     Up/Down/Left/Right expansion order, expansion/frontier counters, an
//     expansion trace hook, and parent-link path reconstruction.
//
// Why choose this layout?
//
//   - Deterministic – fixed tie-breaks and expansion order make every run
//     (counters, traces, solutions) reproducible bit for bit.
//   - Optimal – all three heuristics are admissible and consistent, so a
//     solved result always carries the true shortest solution depth.
//   - Re-entrant – each Solve call owns all of its state; nothing global,
//     nothing shared, safe to run concurrently.
//   - Pure Go – no cgo; testify is the only direct dependency (tests only).
//
// Quick example:
//
//	initial, _ := board.New([][]int{{1, 2, 3}, {4, 0, 5}, {7, 8, 6}})
//	goal, _ := board.Goal(3)
//	res, err := solve.Solve(initial, goal, heuristic.ManhattanDistance)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	moves, _ := res.Moves() // [Right Down]
//
// See examples/ for a runnable end-to-end comparison of the heuristics.
package puzzle
