// Package board defines core types, sentinel errors, and move primitives
// for sliding-tile puzzle configurations.
package board

import (
	"errors"
)

// Sentinel errors for board construction and manipulation.
var (
	// ErrEmptyBoard indicates the input grid has no rows or no columns.
	ErrEmptyBoard = errors.New("board: input grid must have at least one row and one column")

	// ErrNotSquare indicates the input grid is not N×N.
	ErrNotSquare = errors.New("board: input grid must be square")

	// ErrBadPermutation indicates the grid does not contain each value
	// in 0..N²−1 exactly once.
	ErrBadPermutation = errors.New("board: grid must contain each value 0..N²−1 exactly once")

	// ErrIllegalMove indicates the blank destination lies outside the grid.
	ErrIllegalMove = errors.New("board: move would push the blank off the grid")

	// ErrUnknownMove indicates a Move value outside Up..Right.
	ErrUnknownMove = errors.New("board: unknown move")

	// ErrNegativeSteps indicates a negative scramble length.
	ErrNegativeSteps = errors.New("board: scramble steps must be non-negative")
)

// BlankTile is the value that represents the movable empty cell.
const BlankTile = 0

// Move identifies one of the four cardinal blank moves.
// The declaration order (Up, Down, Left, Right) is the fixed expansion
// order of the search engine; changing it changes trace output.
type Move int

const (
	// Up moves the blank one row up.
	Up Move = iota
	// Down moves the blank one row down.
	Down
	// Left moves the blank one column left.
	Left
	// Right moves the blank one column right.
	Right

	numMoves
)

// moveNames maps each Move to its display label.
var moveNames = [numMoves]string{"Up", "Down", "Left", "Right"}

// moveOffsets maps each Move to its (row, col) delta for the blank.
var moveOffsets = [numMoves][2]int{
	{-1, 0}, // Up
	{1, 0},  // Down
	{0, -1}, // Left
	{0, 1},  // Right
}

// String returns the human-readable move label ("Up", "Down", "Left", "Right").
func (m Move) String() string {
	if m < 0 || m >= numMoves {
		return "Unknown"
	}
	return moveNames[m]
}

// valid reports whether m is one of the four defined moves.
func (m Move) valid() bool { return m >= 0 && m < numMoves }

// AllMoves returns the four cardinal moves in expansion order.
// The returned slice is a fresh copy; callers may reorder it freely.
func AllMoves() []Move {
	return []Move{Up, Down, Left, Right}
}
