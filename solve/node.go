package solve

import "github.com/NuoXu-2001/CS205-Project1/board"

// node associates a configuration with its path-cost bookkeeping.
// A node is created once per expansion step and never mutated afterwards:
// g, h, and f are fixed at construction, and parent links only ever point
// backwards, so any number of live descendants may share an ancestor chain.
type node struct {
	b      board.Board
	parent *node      // nil for the root
	move   board.Move // move that produced b from parent; meaningless at the root
	g      int        // accumulated path cost from the initial configuration
	h      int        // heuristic estimate of remaining cost
	f      int        // g + h, the frontier priority
}

// newNode builds an immutable search node; f is derived here, once.
func newNode(b board.Board, parent *node, move board.Move, g, h int) *node {
	return &node{b: b, parent: parent, move: move, g: g, h: h, f: g + h}
}

// nodePQ is a min-heap of *node ordered by f ascending, ties broken by
// g ascending. Stale entries are handled lazily: duplicates of an already
// explored configuration are discarded when popped, never removed in place.
type nodePQ []*node

// Len returns the number of nodes in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by total priority f, then by accumulated cost g.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f == pq[j].f {
		return pq[i].g < pq[j].g
	}
	return pq[i].f < pq[j].f
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push; x must be *node.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the reference so the GC can reclaim dropped chains
	*pq = old[:n-1]

	return item
}
