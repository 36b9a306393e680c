// Package board provides the immutable sliding-tile puzzle configuration
// shared by every other package in this module.
//
// Overview:
//
//   - Board is an N×N grid holding each value in 0..N²−1 exactly once,
//     with 0 (BlankTile) marking the movable empty cell.
//   - A Board never mutates: Apply returns a fresh grid, so configurations
//     referenced by many search nodes stay stable for the whole search.
//   - Move is a closed enum of the four blank moves; its declaration order
//     (Up, Down, Left, Right) is the engine's fixed expansion order.
//
// Key operations:
//
//   - New([][]int):      validating constructor (square + permutation check).
//   - Goal(side):        the standard goal 1..N²−1 then the blank.
//   - Moves() / Apply(): legal-move enumeration and successor creation.
//   - Key() / Equal():   canonical hashing and content equality for
//     explored-set membership (membership is by grid contents, never by
//     node identity).
//   - Solvable(b, goal): permutation-parity reachability test, letting
//     callers reject hopeless inputs before running a full search.
//   - Scramble:          deterministic random walk for demos and tests.
//
// Errors (sentinel):
//
//   - ErrEmptyBoard      if the grid has no rows or columns.
//   - ErrNotSquare       if the grid is not N×N.
//   - ErrBadPermutation  if any value in 0..N²−1 is missing or duplicated.
//   - ErrIllegalMove     if a move would push the blank off the grid.
//   - ErrUnknownMove     if a Move value is outside Up..Right.
//   - ErrNegativeSteps   if Scramble is asked for a negative walk length.
//
// Complexity: all single-board operations are O(N²) or better; for the
// 8-puzzle (N=3) every operation is effectively constant.
package board
