// Package solve implements best-first graph search (uniform-cost and A*)
// over sliding-tile puzzle configurations.
//
// Overview:
//
//   - Solve drives a frontier/explored-set loop: pop the lowest-priority
//     node, goal-check it, expand it through board.Moves/board.Apply, score
//     successors with a heuristic.Evaluator, and push them back.
//   - The frontier is a min-heap ordered by f = g + h ascending, ties broken
//     by g ascending — the exact ordering of the reference implementation,
//     which keeps expansion order (and therefore trace output and counters)
//     fully deterministic for identical inputs.
//   - Stale heap entries are handled by lazy deletion: a popped node whose
//     configuration is already explored is discarded, since the explored
//     copy was necessarily popped at equal or lower cost. Successors already
//     explored are additionally filtered at push time; the double check is
//     redundant but kept for parity with the reference behavior.
//
// Results:
//
//   - A solved search reports Depth (the goal node's g, equal to the true
//     shortest-path distance for any admissible heuristic), the number of
//     expansions, and the maximum frontier size observed (sampled once per
//     iteration, before the pop).
//   - An exhausted frontier is a defined outcome, not an error: Solve
//     returns Solved == false with nil error. Only malformed inputs,
//     misconfiguration, cancellation, and the expansion cap return errors.
//   - Path and Moves reconstruct the root-to-goal sequence by walking
//     parent links from the goal node; O(solution depth).
//
// Hooks:
//
//   - WithOnExpand observes every node at the moment it is expanded,
//     exposing its configuration and g/h. Purely diagnostic; disabling it
//     never changes the search outcome.
//
// Concurrency:
//
//   - A single Solve call is strictly sequential and owns all of its state;
//     nodes are immutable once created. Distinct Solve calls share nothing
//     and may run concurrently.
//
// Complexity: with b = branching factor (≤ 4) and d = solution depth,
// time is O(b^d log(b^d)) worst case and space O(b^d); the Manhattan
// evaluator typically expands orders of magnitude fewer nodes than
// uniform-cost on the same instance.
package solve
