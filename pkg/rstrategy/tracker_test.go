package rstrategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sicarius97/graph-rag-go/pkg/redge"
	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

func makeNode(id string, depth int, score float64) rnode.Node {
	c := rnode.NewContent(id, id, []float32{1}, map[string]any{}, "")
	return rnode.NewNode(c, depth, score, redge.Set{}, redge.Set{})
}

func TestTrackerSelectStampsAnnotations(t *testing.T) {
	state := rnode.NewState()
	tracker := NewNodeTracker(state, 5, nil)

	tracker.Select([]rnode.Node{makeNode("d1", 0, 0.9)})
	selected := tracker.Selected()
	assert.Len(t, selected, 1)
	assert.Equal(t, 0, selected[0].Annotations[rnode.AnnotationDepth])
	assert.Equal(t, 0.9, selected[0].Annotations[rnode.AnnotationSimilarityScore])
}

func TestTrackerTraverseRespectsMaxDepth(t *testing.T) {
	state := rnode.NewState()
	maxDepth := 1
	tracker := NewNodeTracker(state, 5, &maxDepth)

	queued := tracker.Traverse([]rnode.Node{makeNode("d1", 0, 0), makeNode("d2", 1, 0)})
	assert.Equal(t, 1, queued)
	assert.Contains(t, state.ToTraverse, "d1")
	assert.NotContains(t, state.ToTraverse, "d2")
}

func TestTrackerTraverseDedupesWithinCall(t *testing.T) {
	state := rnode.NewState()
	tracker := NewNodeTracker(state, 5, nil)

	n := makeNode("d1", 0, 0)
	first := tracker.Traverse([]rnode.Node{n})
	second := tracker.Traverse([]rnode.Node{n})
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
}

func TestTrackerNumRemainingAndShouldStop(t *testing.T) {
	state := rnode.NewState()
	tracker := NewNodeTracker(state, 2, nil)
	assert.Equal(t, 2, tracker.NumRemaining())
	assert.True(t, tracker.ShouldStop(), "no work queued yet")

	tracker.Select([]rnode.Node{makeNode("d1", 0, 0)})
	assert.Equal(t, 1, tracker.NumRemaining())

	tracker.Select([]rnode.Node{makeNode("d2", 0, 0)})
	assert.Equal(t, 0, tracker.NumRemaining())
	assert.True(t, tracker.ShouldStop())
}

func TestTrackerSelectKZeroMeansNoOutput(t *testing.T) {
	state := rnode.NewState()
	tracker := NewNodeTracker(state, 0, nil)
	assert.True(t, tracker.ShouldStop())
	assert.Equal(t, 0, tracker.NumRemaining())
}
