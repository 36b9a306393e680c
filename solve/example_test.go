// Package solve_test provides runnable examples for the search engine.
// Each example is runnable via "go test -run Example", showing both code
// and expected output.
package solve_test

import (
	"fmt"

	"github.com/NuoXu-2001/CS205-Project1/board"
	"github.com/NuoXu-2001/CS205-Project1/heuristic"
	"github.com/NuoXu-2001/CS205-Project1/solve"
)

// ExampleSolve demonstrates an A* run with the Manhattan heuristic on a
// two-move instance and reads the solution off the Result.
func ExampleSolve() {
	// 1) Build the initial configuration; New validates the permutation.
	initial, err := board.New([][]int{
		{1, 2, 3},
		{4, 0, 5},
		{7, 8, 6},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) The standard 8-puzzle goal: 1..8 row-major, blank last.
	goal, _ := board.Goal(3)

	// 3) Run the search. Manhattan distance is the strongest of the three
	//    admissible heuristics, so it expands the fewest nodes.
	res, err := solve.Solve(initial, goal, heuristic.ManhattanDistance)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Depth equals the true shortest solution length; the counters are
	//    deterministic because the tie-break and expansion order are fixed.
	fmt.Printf("solved=%v depth=%d expanded=%d maxFrontier=%d\n",
		res.Solved, res.Depth, res.Expanded, res.MaxFrontier)

	// 5) Recover the move sequence and replay-ready path.
	moves, _ := res.Moves()
	fmt.Println("moves:", moves)
	// Output:
	// solved=true depth=2 expanded=2 maxFrontier=5
	// moves: [Right Down]
}

// ExampleSolve_uniformCost shows the Zero heuristic degrading A* to
// uniform-cost search: same optimal depth, more work.
func ExampleSolve_uniformCost() {
	initial, _ := board.New([][]int{
		{1, 2, 3},
		{4, 5, 0},
		{7, 8, 6},
	})
	goal, _ := board.Goal(3)

	res, err := solve.Solve(initial, goal, heuristic.Zero)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("solved=%v depth=%d\n", res.Solved, res.Depth)
	// Output: solved=true depth=1
}

// ExampleSolve_trace attaches the expansion hook to observe the search
// frontier from the outside, without influencing it.
func ExampleSolve_trace() {
	initial, _ := board.New([][]int{
		{1, 2, 3},
		{4, 0, 5},
		{7, 8, 6},
	})
	goal, _ := board.Goal(3)

	_, err := solve.Solve(initial, goal, heuristic.ManhattanDistance,
		solve.WithOnExpand(func(b board.Board, g, h int) {
			fmt.Printf("expanding g=%d h=%d\n%s\n", g, h, b)
		}))
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// expanding g=0 h=2
	// 1 2 3
	// 4 0 5
	// 7 8 6
	// expanding g=1 h=1
	// 1 2 3
	// 4 5 0
	// 7 8 6
}
