package rstrategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

func TestEagerSelectsAndTraversesEveryNode(t *testing.T) {
	state := rnode.NewState()
	tracker := NewNodeTracker(state, 10, nil)
	eager := NewEager(10)

	eager.Iteration([]rnode.Node{makeNode("d1", 0, 1), makeNode("d2", 0, 0.5)}, tracker, nil)

	assert.Len(t, tracker.Selected(), 2)
	assert.Len(t, state.ToTraverse, 2)
}

func TestEagerFinalizeTruncatesToSelectK(t *testing.T) {
	eager := NewEager(1)
	out := eager.FinalizeNodes([]rnode.Node{makeNode("d1", 0, 0), makeNode("d2", 0, 0)})
	assert.Len(t, out, 1)
	assert.Equal(t, "d1", out[0].ID)
}
