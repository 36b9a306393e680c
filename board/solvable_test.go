package board_test

import (
	"testing"

	"github.com/NuoXu-2001/CS205-Project1/board"
)

// TestSolvable_GoalFromGoal: a board is trivially reachable from itself.
func TestSolvable_GoalFromGoal(t *testing.T) {
	goal, _ := board.Goal(3)
	if !board.Solvable(goal, goal) {
		t.Error("goal must be solvable from itself")
	}
}

// TestSolvable_SingleSwapUnreachable: transposing two non-blank tiles flips
// permutation parity without moving the blank, which no legal walk can do.
func TestSolvable_SingleSwapUnreachable(t *testing.T) {
	goal, _ := board.Goal(3)
	swapped, err := board.New([][]int{{2, 1, 3}, {4, 5, 6}, {7, 8, 0}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if board.Solvable(swapped, goal) {
		t.Error("single tile transposition must be unreachable")
	}
	// And symmetrically.
	if board.Solvable(goal, swapped) {
		t.Error("reachability is symmetric; reversed direction must also fail")
	}
}

// TestSolvable_ScrambledReachable: every legal random walk stays reachable.
func TestSolvable_ScrambledReachable(t *testing.T) {
	goal, _ := board.Goal(3)
	for seed := int64(1); seed <= 8; seed++ {
		b, err := board.Scramble(goal, 30, seed)
		if err != nil {
			t.Fatalf("Scramble error: %v", err)
		}
		if !board.Solvable(b, goal) {
			t.Errorf("seed %d: scrambled board reported unsolvable:\n%s", seed, b)
		}
	}
}

// TestSolvable_EvenSide exercises the parity rule on an even-side grid,
// where the blank-displacement term actually matters.
func TestSolvable_EvenSide(t *testing.T) {
	goal, _ := board.Goal(2)

	// One legal move away: reachable.
	near, err := goal.Apply(board.Up)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if !board.Solvable(near, goal) {
		t.Error("one-move board must be solvable")
	}

	// Swap the two non-blank tiles adjacent in the top row: unreachable.
	swapped, err := board.New([][]int{{2, 1}, {3, 0}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if board.Solvable(swapped, goal) {
		t.Error("transposed 2×2 board must be unsolvable")
	}
}

// TestSolvable_Mismatch rejects differing sides and malformed boards.
func TestSolvable_Mismatch(t *testing.T) {
	g3, _ := board.Goal(3)
	g2, _ := board.Goal(2)
	if board.Solvable(g3, g2) {
		t.Error("boards of different sides are never mutually reachable")
	}
	var zero board.Board
	if board.Solvable(zero, g3) {
		t.Error("a malformed board is never solvable")
	}
}
