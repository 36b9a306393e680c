package solve

import "github.com/NuoXu-2001/CS205-Project1/board"

// Path reconstructs the solution as the sequence of configurations from the
// initial board to the goal board, inclusive. Each consecutive pair differs
// by exactly one adjacent blank swap.
//
// Returns ErrNoSolution if the search ended without reaching the goal.
//
// Complexity: O(d) time and space, d = solution depth.
func (r *Result) Path() ([]board.Board, error) {
	if !r.Solved || r.goal == nil {
		return nil, ErrNoSolution
	}

	// Walk the parent chain goal → root, then reverse in place.
	path := make([]board.Board, 0, r.Depth+1)
	for cur := r.goal; cur != nil; cur = cur.parent {
		path = append(path, cur.b)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Moves reconstructs the solution as the sequence of blank moves applied to
// the initial board, in order. len(Moves) equals Depth.
//
// Returns ErrNoSolution if the search ended without reaching the goal.
//
// Complexity: O(d) time and space, d = solution depth.
func (r *Result) Moves() ([]board.Move, error) {
	if !r.Solved || r.goal == nil {
		return nil, ErrNoSolution
	}

	moves := make([]board.Move, 0, r.Depth)
	// The root carries no producing move; stop one short of it.
	for cur := r.goal; cur.parent != nil; cur = cur.parent {
		moves = append(moves, cur.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves, nil
}
