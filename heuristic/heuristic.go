package heuristic

import (
	"errors"
	"fmt"

	"github.com/NuoXu-2001/CS205-Project1/board"
)

// ErrUnknownKind indicates a Kind outside the three defined variants.
// It is a caller/configuration error, surfaced at Evaluator construction
// and therefore always distinguishable from search-time outcomes.
var ErrUnknownKind = errors.New("heuristic: unknown heuristic kind")

// Kind selects one of the three estimator variants.
type Kind int

const (
	// Zero always estimates 0, reducing A* to uniform-cost search.
	Zero Kind = iota
	// MisplacedTiles counts non-blank tiles that are not on their goal cell.
	MisplacedTiles
	// ManhattanDistance sums |Δrow|+|Δcol| to the goal cell over non-blank tiles.
	ManhattanDistance

	numKinds
)

// kindNames maps each Kind to its display label.
var kindNames = [numKinds]string{"Zero", "MisplacedTiles", "ManhattanDistance"}

// String returns the estimator's display label, or "Unknown" for an
// out-of-range Kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the three defined variants.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// position is a (row, col) pair in the goal grid.
type position struct {
	row, col int
}

// Evaluator estimates remaining cost to one fixed goal Board.
//
// The goal-position table is computed once in New and reused by every
// Estimate call; recomputing it per node would not change results but is a
// severe performance regression for ManhattanDistance. The table is owned
// by the Evaluator, so distinct searches never share mutable state.
type Evaluator struct {
	kind    Kind
	goal    board.Board
	goalPos []position // indexed by tile value
}

// New builds an Evaluator for the given goal Board and Kind.
//
// Returns ErrUnknownKind for an unrecognized Kind and propagates the goal
// Board's validation error, both before any search work begins.
//
// Complexity: O(N²).
func New(goal board.Board, kind Kind) (*Evaluator, error) {
	// 1) Reject unknown kinds first: a misconfigured selector must surface
	//    immediately and distinctly from search-time failures.
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	// 2) Fail fast on a malformed goal; Estimate indexes goalPos by value
	//    and relies on the permutation invariant.
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	// 3) Precompute value → goal (row, col) once per Evaluator.
	side := goal.Side()
	goalPos := make([]position, side*side)
	var r, c int
	for r = 0; r < side; r++ {
		for c = 0; c < side; c++ {
			goalPos[goal.At(r, c)] = position{row: r, col: c}
		}
	}

	return &Evaluator{kind: kind, goal: goal, goalPos: goalPos}, nil
}

// Kind returns the variant this Evaluator computes.
func (e *Evaluator) Kind() Kind { return e.kind }

// Goal returns the goal Board this Evaluator was bound to.
func (e *Evaluator) Goal() board.Board { return e.goal }

// Estimate returns the non-negative estimated cost from b to the goal.
// b must have the same side as the goal; the solve engine guarantees this
// before its loop starts.
//
// Complexity: O(N²) for every Kind (Zero still returns immediately).
func (e *Evaluator) Estimate(b board.Board) int {
	switch e.kind {
	case Zero:
		return 0
	case MisplacedTiles:
		return e.misplaced(b)
	case ManhattanDistance:
		return e.manhattan(b)
	default:
		// Unreachable: New rejects unknown kinds.
		return 0
	}
}

// misplaced counts non-blank cells whose value differs from the goal's
// value at the same position.
func (e *Evaluator) misplaced(b board.Board) int {
	side := b.Side()
	count := 0
	var r, c, v int
	for r = 0; r < side; r++ {
		for c = 0; c < side; c++ {
			v = b.At(r, c)
			if v != board.BlankTile && v != e.goal.At(r, c) {
				count++
			}
		}
	}

	return count
}

// manhattan sums, over all non-blank tiles, the absolute row and column
// distance between the tile's current cell and its precomputed goal cell.
func (e *Evaluator) manhattan(b board.Board) int {
	side := b.Side()
	sum := 0
	var r, c, v int
	for r = 0; r < side; r++ {
		for c = 0; c < side; c++ {
			v = b.At(r, c)
			if v == board.BlankTile {
				continue
			}
			p := e.goalPos[v]
			sum += abs(r-p.row) + abs(c-p.col)
		}
	}

	return sum
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
