// Package heuristic provides the three admissible cost estimators used by
// the best-first search engine in package solve.
//
// Overview:
//
//   - Kind is a closed enum of exactly three variants; there is no plugin
//     interface because no open-ended extensibility is required:
//     • Zero              – h(n) = 0; search degenerates to uniform-cost
//       (Dijkstra-style) exploration.
//     • MisplacedTiles    – number of non-blank tiles not on their goal cell.
//     • ManhattanDistance – sum over non-blank tiles of |Δrow| + |Δcol|
//       between current and goal positions.
//   - Evaluator binds a Kind to one fixed goal Board. Construction
//     precomputes the tile→goal-position table exactly once, so a search
//     run never rebuilds it per node; the table is per-Evaluator state,
//     keeping repeated and concurrent runs independent.
//
// All three variants are admissible (never overestimate the true remaining
// cost) and consistent (satisfy the triangle inequality across single
// moves), so an A* search using any of them returns optimal-depth solutions.
//
// Errors (sentinel):
//
//   - ErrUnknownKind if the Kind is not one of the three variants; reported
//     at construction, before any search work starts.
//
// Complexity: New is O(N²); Estimate is O(N²) per call for every Kind.
package heuristic
