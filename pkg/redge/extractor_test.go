package redge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdgeSpecRejectsEmpty(t *testing.T) {
	_, err := NewEdgeSpec("", "category")
	assert.ErrorIs(t, err, ErrInvalidEdgeSpec)
}

func TestExtractCountryEdges(t *testing.T) {
	spec, err := NewEdgeSpec("country", "country")
	require.NoError(t, err)

	ex := NewExtractor([]EdgeSpec{spec}, nil)
	incoming, outgoing := ex.Extract("d1", map[string]any{"category": "geo", "country": "FR"})

	assert.True(t, outgoing.Has(MetadataEdge("country", "FR")))
	assert.True(t, incoming.Has(MetadataEdge("country", "FR")))
}

func TestExtractIDSentinelEdge(t *testing.T) {
	spec, err := NewEdgeSpec(IDSelector, "mentions")
	require.NoError(t, err)

	ex := NewExtractor([]EdgeSpec{spec}, nil)
	// d2 mentions d1: d2's outgoing edge matches documents whose
	// "mentions" equals d2's id; its incoming edge is the Id edge for d1.
	incoming, outgoing := ex.Extract("d2", map[string]any{"mentions": "d1"})

	assert.True(t, outgoing.Has(MetadataEdge("mentions", "d2")))
	assert.True(t, incoming.Has(IDEdge("d1")))
}

func TestExtractArrayMetadataProducesOneEdgePerElement(t *testing.T) {
	spec, err := NewEdgeSpec("tags", "tags")
	require.NoError(t, err)

	ex := NewExtractor([]EdgeSpec{spec}, nil)
	_, outgoing := ex.Extract("d1", map[string]any{"tags": []any{"a", "b"}})

	assert.True(t, outgoing.Has(MetadataEdge("tags", "a")))
	assert.True(t, outgoing.Has(MetadataEdge("tags", "b")))
	assert.Len(t, outgoing, 2)
}

func TestExtractSkipsNonScalarArrayElementsWithDiagnostic(t *testing.T) {
	spec, err := NewEdgeSpec("related", "related")
	require.NoError(t, err)

	var warnings []string
	ex := NewExtractor([]EdgeSpec{spec}, func(msg string) { warnings = append(warnings, msg) })
	_, outgoing := ex.Extract("d1", map[string]any{
		"related": []any{"ok", map[string]any{"nested": true}},
	})

	assert.True(t, outgoing.Has(MetadataEdge("related", "ok")))
	assert.Len(t, outgoing, 1)
	// The array is resolved once for outgoing and once for incoming
	// edges, and the skipped element is reported each time.
	assert.Len(t, warnings, 2)
}

func TestExtractMissingFieldProducesNoEdge(t *testing.T) {
	spec, err := NewEdgeSpec("country", "country")
	require.NoError(t, err)

	ex := NewExtractor([]EdgeSpec{spec}, nil)
	incoming, outgoing := ex.Extract("d1", map[string]any{})

	assert.Empty(t, incoming)
	assert.Empty(t, outgoing)
}

func TestExtractDottedPath(t *testing.T) {
	spec, err := NewEdgeSpec("a.b", "a.b")
	require.NoError(t, err)

	ex := NewExtractor([]EdgeSpec{spec}, nil)
	_, outgoing := ex.Extract("d1", map[string]any{"a": map[string]any{"b": "v"}})

	assert.True(t, outgoing.Has(MetadataEdge("a.b", "v")))
}

func TestExtractIsIdempotent(t *testing.T) {
	spec, err := NewEdgeSpec("country", "country")
	require.NoError(t, err)

	ex := NewExtractor([]EdgeSpec{spec}, nil)
	meta := map[string]any{"country": "FR"}

	in1, out1 := ex.Extract("d1", meta)
	in2, out2 := ex.Extract("d1", meta)

	assert.Equal(t, in1, in2)
	assert.Equal(t, out1, out2)
}

func TestEdgeKeyStructuralEquality(t *testing.T) {
	a := MetadataEdge("country", "FR")
	b := MetadataEdge("country", "FR")
	assert.Equal(t, a.Key(), b.Key())

	c := MetadataEdge("country", "UK")
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestEdgeKeyNestedMapKeyOrderDoesNotMatter(t *testing.T) {
	a := MetadataEdge("f", map[string]any{"x": 1, "y": 2})
	b := MetadataEdge("f", map[string]any{"y": 2, "x": 1})
	assert.Equal(t, a.Key(), b.Key(), "canonical encoding must sort map keys")
}
