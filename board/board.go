package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is one arrangement of N² tiles (including the blank) on an N×N grid.
// Cells are stored row-major. A Board is immutable once constructed: Apply
// always allocates a fresh grid, so a Board shared between search nodes can
// never change underneath them. The zero value is invalid; construct via
// New, Goal, Scramble, or Apply.
type Board struct {
	side  int
	cells []int
}

// New builds a Board from a row-major grid of values and validates the
// permutation invariant: the grid must be square, non-empty, and contain
// each value in 0..N²−1 exactly once (0 is the blank).
//
// Returns ErrEmptyBoard, ErrNotSquare, or ErrBadPermutation on invalid input.
//
// Complexity: O(N²) time and space.
func New(rows [][]int) (Board, error) {
	// 1) Reject empty input outright.
	side := len(rows)
	if side == 0 {
		return Board{}, ErrEmptyBoard
	}

	// 2) Every row must have exactly `side` cells (square grid).
	var r []int
	for _, r = range rows {
		if len(r) == 0 {
			return Board{}, ErrEmptyBoard
		}
		if len(r) != side {
			return Board{}, fmt.Errorf("%w: got a row of length %d in a %d-row grid", ErrNotSquare, len(r), side)
		}
	}

	// 3) Flatten into a fresh row-major cell slice; never alias caller memory.
	cells := make([]int, 0, side*side)
	for _, r = range rows {
		cells = append(cells, r...)
	}

	b := Board{side: side, cells: cells}

	// 4) Enforce the permutation invariant before the Board escapes.
	if err := b.Validate(); err != nil {
		return Board{}, err
	}

	return b, nil
}

// Goal returns the standard goal configuration for the given side:
// tiles 1..N²−1 in row-major order followed by the blank in the last cell.
//
// Returns ErrEmptyBoard if side < 1.
func Goal(side int) (Board, error) {
	if side < 1 {
		return Board{}, ErrEmptyBoard
	}
	n := side * side
	cells := make([]int, n)
	for i := 0; i < n-1; i++ {
		cells[i] = i + 1
	}
	cells[n-1] = BlankTile

	return Board{side: side, cells: cells}, nil
}

// Validate re-checks the permutation invariant. All constructors and Apply
// preserve the invariant, so this exists for fail-fast rejection of
// zero-value or otherwise malformed Boards handed to the search engine.
//
// Complexity: O(N²).
func (b Board) Validate() error {
	if b.side < 1 || len(b.cells) != b.side*b.side {
		return ErrEmptyBoard
	}
	seen := make([]bool, len(b.cells))
	var v int
	for _, v = range b.cells {
		if v < 0 || v >= len(b.cells) || seen[v] {
			return fmt.Errorf("%w: value %d duplicated or out of range", ErrBadPermutation, v)
		}
		seen[v] = true
	}

	return nil
}

// Side returns the grid dimension N.
func (b Board) Side() int { return b.side }

// At returns the value stored at row r, column c.
// Callers must keep r and c within 0..Side()−1.
func (b Board) At(r, c int) int { return b.cells[r*b.side+c] }

// Rows returns the grid as a fresh row-major [][]int copy, suitable for
// display or re-construction. Mutating the result does not affect b.
func (b Board) Rows() [][]int {
	rows := make([][]int, b.side)
	for r := 0; r < b.side; r++ {
		rows[r] = make([]int, b.side)
		copy(rows[r], b.cells[r*b.side:(r+1)*b.side])
	}

	return rows
}

// Blank locates the blank tile and returns its (row, col).
// Assumes the permutation invariant holds; a zero-value Board yields (-1, -1).
func (b Board) Blank() (int, int) {
	for i, v := range b.cells {
		if v == BlankTile {
			return i / b.side, i % b.side
		}
	}

	return -1, -1
}

// Equal reports whether two Boards hold identical grids.
func (b Board) Equal(other Board) bool {
	if b.side != other.side {
		return false
	}
	for i, v := range b.cells {
		if v != other.cells[i] {
			return false
		}
	}

	return true
}

// Key returns a canonical string encoding of the grid contents, suitable as
// an explored-set member. Two Boards have equal Keys iff Equal reports true,
// regardless of how each was reached.
func (b Board) Key() string {
	var sb strings.Builder
	// Worst case each cell needs 3 digits plus a separator.
	sb.Grow(len(b.cells) * 4)
	for i, v := range b.cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// Moves returns the legal moves at the current blank position, in the fixed
// Up, Down, Left, Right order. Corner cells yield two moves, edges three,
// interior cells four.
func (b Board) Moves() []Move {
	br, bc := b.Blank()
	out := make([]Move, 0, numMoves)
	var m Move
	for m = 0; m < numMoves; m++ {
		nr, nc := br+moveOffsets[m][0], bc+moveOffsets[m][1]
		if nr >= 0 && nr < b.side && nc >= 0 && nc < b.side {
			out = append(out, m)
		}
	}

	return out
}

// Apply returns a fresh Board with the blank swapped one cell in direction m.
// The receiver is never mutated. Returns ErrUnknownMove for an undefined
// Move and ErrIllegalMove when the destination lies outside the grid.
//
// Apply preserves the permutation invariant by construction: it only swaps
// the blank with an adjacent tile.
//
// Complexity: O(N²) for the grid copy.
func (b Board) Apply(m Move) (Board, error) {
	if !m.valid() {
		return Board{}, ErrUnknownMove
	}

	br, bc := b.Blank()
	nr, nc := br+moveOffsets[m][0], bc+moveOffsets[m][1]
	if nr < 0 || nr >= b.side || nc < 0 || nc >= b.side {
		return Board{}, fmt.Errorf("%w: %s from (%d,%d)", ErrIllegalMove, m, br, bc)
	}

	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	bi, ni := br*b.side+bc, nr*b.side+nc
	cells[bi], cells[ni] = cells[ni], cells[bi]

	return Board{side: b.side, cells: cells}, nil
}

// String renders the grid one row per line, cells separated by spaces.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.side; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.side; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(b.At(r, c)))
		}
	}

	return sb.String()
}
