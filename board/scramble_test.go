package board_test

import (
	"errors"
	"testing"

	"github.com/NuoXu-2001/CS205-Project1/board"
)

// TestScramble_Deterministic verifies the same seed reproduces the same walk.
func TestScramble_Deterministic(t *testing.T) {
	goal, _ := board.Goal(3)

	a, err := board.Scramble(goal, 40, 7)
	if err != nil {
		t.Fatalf("Scramble error: %v", err)
	}
	b, err := board.Scramble(goal, 40, 7)
	if err != nil {
		t.Fatalf("Scramble error: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("same seed produced different boards:\n%s\nvs\n%s", a, b)
	}
}

// TestScramble_ZeroSeedPolicy checks seed==0 falls back to the fixed default.
func TestScramble_ZeroSeedPolicy(t *testing.T) {
	goal, _ := board.Goal(3)

	zero, _ := board.Scramble(goal, 25, 0)
	def, _ := board.Scramble(goal, 25, 1)
	if !zero.Equal(def) {
		t.Error("seed 0 must behave exactly like the default seed")
	}
}

// TestScramble_PreservesInvariantAndSolvability confirms every walk result
// is a valid permutation still reachable from its start.
func TestScramble_PreservesInvariantAndSolvability(t *testing.T) {
	goal, _ := board.Goal(3)
	for _, steps := range []int{0, 1, 5, 50} {
		b, err := board.Scramble(goal, steps, int64(steps)+13)
		if err != nil {
			t.Fatalf("Scramble(steps=%d) error: %v", steps, err)
		}
		if err = b.Validate(); err != nil {
			t.Errorf("Scramble(steps=%d) broke the permutation invariant: %v", steps, err)
		}
		if !board.Solvable(b, goal) {
			t.Errorf("Scramble(steps=%d) produced an unreachable board:\n%s", steps, b)
		}
	}
}

func TestScramble_Errors(t *testing.T) {
	goal, _ := board.Goal(3)
	if _, err := board.Scramble(goal, -1, 1); !errors.Is(err, board.ErrNegativeSteps) {
		t.Errorf("Scramble(-1) error = %v; want ErrNegativeSteps", err)
	}
	var zero board.Board
	if _, err := board.Scramble(zero, 3, 1); !errors.Is(err, board.ErrEmptyBoard) {
		t.Errorf("Scramble(zero board) error = %v; want ErrEmptyBoard", err)
	}
}

// TestScramble_ZeroSteps returns the start unchanged.
func TestScramble_ZeroSteps(t *testing.T) {
	start, _ := board.New([][]int{{1, 6, 7}, {5, 0, 3}, {4, 8, 2}})
	got, err := board.Scramble(start, 0, 99)
	if err != nil {
		t.Fatalf("Scramble error: %v", err)
	}
	if !got.Equal(start) {
		t.Errorf("Scramble(0 steps) = \n%s; want start unchanged", got)
	}
}
