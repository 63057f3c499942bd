package rvector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
		epsilon  float64
	}{
		{"identical vectors", []float32{1, 0, 0}, []float32{1, 0, 0}, 1.0, 0.001},
		{"orthogonal vectors", []float32{1, 0, 0}, []float32{0, 1, 0}, 0.0, 0.001},
		{"opposite vectors", []float32{1, 0, 0}, []float32{-1, 0, 0}, -1.0, 0.001},
		{"mismatched dimensions", []float32{1, 2}, []float32{1, 2, 3}, 0, 0.001},
		{"zero vector", []float32{0, 0, 0}, []float32{1, 2, 3}, 0, 0.001},
		{"empty vectors", []float32{}, []float32{}, 0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, tt.epsilon)
		})
	}
}

func TestCosineSimilarityMatrixDimensionMismatch(t *testing.T) {
	_, err := CosineSimilarityMatrix([][]float32{{1, 2}}, [][]float32{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCosineSimilarityMatrix(t *testing.T) {
	x := [][]float32{{1, 0}, {0, 1}}
	y := [][]float32{{1, 0}, {0, 1}}
	m, err := CosineSimilarityMatrix(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, m[0][0], 0.001)
	assert.InDelta(t, 0.0, m[0][1], 0.001)
	assert.InDelta(t, 0.0, m[1][0], 0.001)
	assert.InDelta(t, 1.0, m[1][1], 0.001)
}

func TestCosineSimilarityMatrixEmpty(t *testing.T) {
	m, err := CosineSimilarityMatrix(nil, [][]float32{{1}})
	assert.NoError(t, err)
	assert.Empty(t, m)
}

func TestTopKDeduplicatesLastWriteWins(t *testing.T) {
	items := []Scored{
		{ID: "a", Score: 0.1},
		{ID: "b", Score: 0.9},
		{ID: "a", Score: 0.5},
	}
	got := TopK(items, 10)
	assert.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.InDelta(t, 0.5, got[1].Score, 0.0001)
}

func TestTopKStableOnTies(t *testing.T) {
	items := []Scored{
		{ID: "first", Score: 1.0},
		{ID: "second", Score: 1.0},
		{ID: "third", Score: 1.0},
	}
	got := TopK(items, 3)
	assert.Equal(t, []string{"first", "second", "third"}, idsOf(got))
}

func TestTopKZero(t *testing.T) {
	assert.Empty(t, TopK([]Scored{{ID: "a", Score: 1}}, 0))
}

func TestTopKIsIdempotent(t *testing.T) {
	items := []Scored{
		{ID: "a", Score: 0.3},
		{ID: "b", Score: 0.9},
		{ID: "c", Score: 0.1},
	}
	once := TopK(items, 2)
	twice := TopK(once, 2)
	assert.Equal(t, once, twice)
}

type stubContent struct {
	id  string
	emb []float32
}

func TestTopKByEmbedding(t *testing.T) {
	items := []stubContent{
		{"paris", []float32{1, 0}},
		{"eiffel", []float32{0.9, 0.1}},
		{"cuisine", []float32{0, 1}},
	}
	query := []float32{1, 0}
	got := TopKByEmbedding(items, func(c stubContent) string { return c.id },
		func(c stubContent) []float32 { return c.emb }, query, 2)

	assert.Len(t, got, 2)
	assert.Equal(t, "paris", got[0].id)
	assert.Equal(t, "eiffel", got[1].id)
}

func idsOf(items []Scored) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
