package solve

import (
	"container/heap"
	"fmt"

	"github.com/NuoXu-2001/CS205-Project1/board"
	"github.com/NuoXu-2001/CS205-Project1/heuristic"
)

// Solve runs best-first search from initial to goal using the selected
// heuristic kind, applying any number of functional Options.
//
// With heuristic.Zero the search behaves as uniform-cost search; with
// heuristic.MisplacedTiles or heuristic.ManhattanDistance it is A*. All
// three are admissible, so a solved Result always carries the true
// shortest-path depth.
//
// Returns:
//
//   - (*Result, nil) on a completed search, whether or not a solution was
//     found: an exhausted frontier yields Solved == false with nil error.
//   - ErrOptionViolation for invalid options; board validation errors or
//     ErrDimensionMismatch for malformed inputs; heuristic.ErrUnknownKind
//     for an unrecognized kind — all before the loop starts.
//   - ErrExpansionLimit or the context's error when an external cutoff
//     fires mid-search; the partial Result carries the counters observed
//     so far.
//
// Preconditions and validation (in order):
//  1. Options must be well-formed (ErrOptionViolation).
//  2. initial and goal must satisfy the permutation invariant (fail fast;
//     the loop itself assumes valid boards).
//  3. initial and goal must share one side (ErrDimensionMismatch).
//  4. kind must be one of the three variants (heuristic.ErrUnknownKind).
//
// Complexity: O(M log M) time and O(M) space, M = nodes generated.
func Solve(initial, goal board.Board, kind heuristic.Kind, opts ...Option) (*Result, error) {
	// 1) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Fail fast on malformed boards; every downstream invariant
	//    (goal-position lookup, explored-set keys) depends on them.
	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("solve: invalid initial board: %w", err)
	}
	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("solve: invalid goal board: %w", err)
	}

	// 3) Both boards must describe the same grid size.
	if initial.Side() != goal.Side() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, initial.Side(), goal.Side())
	}

	// 4) Build the evaluator. This precomputes the goal-position table once
	//    for the whole run and rejects an unknown kind up front.
	eval, err := heuristic.New(goal, kind)
	if err != nil {
		return nil, err
	}

	// 5) Prepare per-run state. Everything lives on the runner, so repeated
	//    or concurrent Solve calls share nothing.
	r := &runner{
		goal:     goal,
		eval:     eval,
		opts:     o,
		explored: make(map[string]bool),
		res:      &Result{},
	}

	// 6) Seed the frontier with the root node (g=0, h=evaluator(initial)).
	heap.Init(&r.frontier)
	heap.Push(&r.frontier, newNode(initial, nil, 0, 0, eval.Estimate(initial)))
	r.res.MaxFrontier = 1

	// 7) Run the select → goal-check → expand loop.
	if err = r.loop(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	goal     board.Board          // fixed target configuration
	eval     *heuristic.Evaluator // scores successors; owns the goal-position table
	opts     Options              // per-run configuration and hooks
	frontier nodePQ               // min-heap of generated-but-unexpanded nodes
	explored map[string]bool      // canonical keys of expanded configurations
	res      *Result              // counters and, on success, the goal node
}

// loop processes the frontier until the goal is popped, the frontier is
// exhausted, or an external cutoff (context, expansion cap) fires.
//
// An empty frontier is the defined "no solution" outcome: loop returns nil
// and leaves res.Solved false.
func (r *runner) loop() error {
	for r.frontier.Len() > 0 {
		// Cancellation check, once per iteration.
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		// 1) Sample the running frontier maximum before the pop.
		if n := r.frontier.Len(); n > r.res.MaxFrontier {
			r.res.MaxFrontier = n
		}

		// 2) Select the minimum-(f, g) node.
		cur := heap.Pop(&r.frontier).(*node)

		// 3) Goal check precedes the explored check and expansion, so a
		//    solved root reports zero expansions.
		if cur.b.Equal(r.goal) {
			r.res.Solved = true
			r.res.Depth = cur.g
			r.res.goal = cur
			return nil
		}

		// 4) Lazy deletion: a stale duplicate of an explored configuration
		//    was necessarily preceded by a pop at equal or lower cost.
		key := cur.b.Key()
		if r.explored[key] {
			continue
		}

		// 5) External expansion cap, checked before committing to expand.
		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			return fmt.Errorf("%w: %d", ErrExpansionLimit, r.opts.MaxExpansions)
		}

		// 6) Finalize: record as explored, count the expansion, and fire
		//    the trace hook with the node's g/h at this moment.
		r.explored[key] = true
		r.res.Expanded++
		r.opts.OnExpand(cur.b, cur.g, cur.h)

		// 7) Generate successors and push the unexplored ones.
		r.expand(cur)
	}

	return nil
}

// expand produces cur's successors in the fixed Up, Down, Left, Right order
// and pushes each one whose configuration is not already explored. The
// push-time filter duplicates the pop-time check; it only reduces frontier
// volume and never changes outcomes.
func (r *runner) expand(cur *node) {
	var (
		next board.Board
		err  error
	)
	for _, m := range cur.b.Moves() {
		// Apply allocates a fresh grid; cur.b is never touched.
		next, err = cur.b.Apply(m)
		if err != nil {
			// Moves() only yields in-bounds moves; this cannot trigger.
			continue
		}
		if r.explored[next.Key()] {
			continue
		}
		heap.Push(&r.frontier, newNode(next, cur, m, cur.g+1, r.eval.Estimate(next)))
	}
}
