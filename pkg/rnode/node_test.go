package rnode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sicarius97/graph-rag-go/pkg/redge"
)

func TestContentValidate(t *testing.T) {
	c := NewContent("", "text", nil, nil, "")
	assert.ErrorIs(t, c.Validate(), ErrMissingID)

	c = NewContent("id1", "text", nil, nil, "")
	assert.ErrorIs(t, c.Validate(), ErrMissingEmbedding)

	c = NewContent("id1", "text", []float32{1}, nil, "")
	assert.NoError(t, c.Validate())
	assert.Equal(t, DefaultMimeType, c.MimeType)
}

func TestNodeOutputMetadataAnnotationsWin(t *testing.T) {
	c := NewContent("d1", "Paris", []float32{1}, map[string]any{"category": "geo", "_depth": "stale"}, "")
	n := NewNode(c, 0, 1.0, redge.Set{}, redge.Set{})
	n.StampDepthAndScore()

	out := n.OutputMetadata()
	assert.Equal(t, "geo", out["category"])
	assert.Equal(t, 0, out[AnnotationDepth], "annotation must win over original metadata")
	assert.Equal(t, 1.0, out[AnnotationSimilarityScore])
}

func TestStateDepthForFallsBackToZero(t *testing.T) {
	s := NewState()
	assert.Equal(t, 0, s.DepthFor(redge.Set{}))
}

func TestStateDepthForMinimumAcrossEdges(t *testing.T) {
	s := NewState()
	e1 := redge.MetadataEdge("country", "FR")
	e2 := redge.MetadataEdge("category", "geo")
	s.MarkEdgeVisited(e1, 2)
	s.MarkEdgeVisited(e2, 1)

	incoming := redge.NewSet(e1, e2)
	assert.Equal(t, 1, s.DepthFor(incoming))
}

func TestStateDiscoveredOnlyOnce(t *testing.T) {
	s := NewState()
	assert.False(t, s.Discovered("d1"))
	s.MarkDiscovered("d1")
	assert.True(t, s.Discovered("d1"))
}
