package rstrategy

import (
	"container/heap"

	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

// scoredItem pairs a node with the score it was pushed into the
// priority queue under.
type scoredItem struct {
	node  rnode.Node
	score float64
}

// scoreHeap is a binary max-heap over scoredItem.score. A binary heap
// suffices here (spec §9 design notes: "no need for a Fibonacci heap") —
// every push/pop is O(log n). Nodes not popped in one round stay queued
// for later rounds.
type scoreHeap []scoredItem

func (h scoreHeap) Len() int            { return len(h) }
func (h scoreHeap) Less(i, j int) bool  { return h[i].score > h[j].score } // max-heap
func (h scoreHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoreHeap) Push(x any)         { *h = append(*h, x.(scoredItem)) }
func (h *scoreHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*scoreHeap)(nil)
