package rstrategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

func TestScoredPopsHighestFirst(t *testing.T) {
	state := rnode.NewState()
	tracker := NewNodeTracker(state, 2, nil)

	scorer := func(n rnode.Node) float64 { return -float64(n.Depth) }
	scored := NewScored(2, scorer, nil)

	scored.Iteration([]rnode.Node{makeNode("seed", 0, 1)}, tracker, nil)
	scored.Iteration([]rnode.Node{makeNode("child1", 1, 1), makeNode("child2", 1, 1)}, tracker, nil)

	selected := tracker.Selected()
	assert.Len(t, selected, 2)
	assert.Equal(t, "seed", selected[0].ID, "depth 0 scores highest with scorer -depth")

	for _, n := range selected {
		_, ok := n.Annotations[rnode.AnnotationScore]
		assert.True(t, ok)
	}
}

func TestScoredRespectsPerIterationLimit(t *testing.T) {
	state := rnode.NewState()
	tracker := NewNodeTracker(state, 10, nil)
	limit := 1
	scored := NewScored(10, func(n rnode.Node) float64 { return 0 }, &limit)

	scored.Iteration([]rnode.Node{makeNode("a", 0, 0), makeNode("b", 0, 0)}, tracker, nil)
	assert.Len(t, tracker.Selected(), 1, "perIterationLimit caps pops even with selection headroom")
}

func TestScoredFinalizeSortsByScoreDescending(t *testing.T) {
	scored := NewScored(2, func(n rnode.Node) float64 { return 0 }, nil)

	low := makeNode("low", 0, 0)
	low.StampScore(0.1)
	high := makeNode("high", 0, 0)
	high.StampScore(0.9)

	out := scored.FinalizeNodes([]rnode.Node{low, high})
	assert.Equal(t, "high", out[0].ID)
	assert.Equal(t, "low", out[1].ID)
}
