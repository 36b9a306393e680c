package board

// Solvable reports whether goal is reachable from b by legal blank moves.
//
// Every move transposes the blank with one adjacent tile, so it flips the
// permutation parity between the two grids and simultaneously flips the
// parity of the blank's taxicab distance between them. A goal is therefore
// reachable iff those two parities agree. This holds for any side and any
// goal grid, not just the standard one.
//
// Boards of differing side are trivially unreachable. Malformed Boards
// (zero values) report false.
//
// Complexity: O(N²) time, O(N²) space.
func Solvable(b, goal Board) bool {
	// 1) Dimension and validity gate.
	if b.side != goal.side || b.Validate() != nil || goal.Validate() != nil {
		return false
	}

	// 2) Index each value's position in the goal grid.
	n := len(goal.cells)
	goalIndex := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		goalIndex[goal.cells[i]] = i
	}

	// 3) Build the permutation taking b's cell order to goal's cell order
	//    and count its cycles. Parity = (n − cycles) mod 2.
	perm := make([]int, n)
	for i = 0; i < n; i++ {
		perm[i] = goalIndex[b.cells[i]]
	}
	visited := make([]bool, n)
	cycles := 0
	var j int
	for i = 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycles++
		for j = i; !visited[j]; j = perm[j] {
			visited[j] = true
		}
	}
	permParity := (n - cycles) % 2

	// 4) Parity of the blank's taxicab displacement between the two grids.
	br, bc := b.Blank()
	gr, gc := goal.Blank()
	blankParity := (abs(br-gr) + abs(bc-gc)) % 2

	return permParity == blankParity
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
