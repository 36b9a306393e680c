// Package solve defines tunable options, sentinel errors, and the Result
// type for the best-first search engine.
package solve

import (
	"context"
	"errors"
	"fmt"

	"github.com/NuoXu-2001/CS205-Project1/board"
)

// Sentinel errors for search execution.
var (
	// ErrDimensionMismatch is returned when the initial and goal boards
	// have different sides.
	ErrDimensionMismatch = errors.New("solve: initial and goal boards must have the same side")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrExpansionLimit is returned when the search hits the configured
	// expansion cap before reaching the goal.
	ErrExpansionLimit = errors.New("solve: expansion limit reached")

	// ErrNoSolution is returned by Path and Moves when the search ended
	// without reaching the goal.
	ErrNoSolution = errors.New("solve: no solution to reconstruct")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. a negative expansion cap), the violation is
// recorded internally and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per iteration.
	Ctx context.Context

	// OnExpand is called each time a node transitions from selection into
	// expansion, with the expanded configuration and its g/h at that moment.
	// Diagnostic only: the hook cannot influence the search.
	OnExpand func(b board.Board, g, h int)

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many nodes have been expanded. 0 disables the cap.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion cap (MaxExpansions == 0)
//   - no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnExpand:      func(board.Board, int, int) {},
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers the expansion trace hook.
func WithOnExpand(fn func(b board.Board, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of node expansions.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxExpansions = n
		}
	}
}

// Result holds the outcome of one search run:
//   - Solved:      whether the goal configuration was reached.
//   - Depth:       the goal node's g-cost (solution length in moves); 0 when unsolved.
//   - Expanded:    total nodes expanded (a goal popped before expansion does
//     not count, so a solved root reports Expanded == 0).
//   - MaxFrontier: maximum frontier size observed, sampled once per
//     iteration before the pop.
type Result struct {
	Solved      bool
	Depth       int
	Expanded    int
	MaxFrontier int

	// goal anchors the parent chain for Path/Moves; nil when unsolved.
	goal *node
}
