// Package rvector provides the vector math primitives the traversal engine
// builds on: cosine similarity, batched similarity matrices, and top-k
// selection with de-duplication.
//
// This package consolidates every similarity calculation used by the
// adapter and engine packages so the zero-vector and NaN rules stay
// consistent everywhere a score is computed.
package rvector

import (
	"errors"
	"math"
)

// ErrDimensionMismatch is returned by CosineSimilarityMatrix when the
// width of every row of X does not match the width of Y.
var ErrDimensionMismatch = errors.New("rvector: dimension mismatch")

// CosineSimilarity returns the cosine of the angle between u and v.
//
// A zero-magnitude vector (either operand) yields 0, and any NaN/Inf that
// would otherwise fall out of the division is coerced to 0 as well —
// callers never have to guard against a poisoned score downstream.
func CosineSimilarity(u, v []float32) float64 {
	if len(u) != len(v) || len(u) == 0 {
		return 0
	}

	var dot, normU, normV float64
	for i := range u {
		dot += float64(u[i]) * float64(v[i])
		normU += float64(u[i]) * float64(u[i])
		normV += float64(v[i]) * float64(v[i])
	}

	if normU == 0 || normV == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normU) * math.Sqrt(normV))
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		return 0
	}
	return sim
}

// CosineSimilarityMatrix computes the row-wise cosine similarity between
// every row of x and every row of y, returning a len(x) x len(y) matrix.
//
// All rows of x and all rows of y must share one dimension; ErrDimensionMismatch
// is returned otherwise. An empty x or y yields an empty (non-nil) matrix.
func CosineSimilarityMatrix(x, y [][]float32) ([][]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return [][]float64{}, nil
	}

	dim := len(x[0])
	for _, row := range x {
		if len(row) != dim {
			return nil, ErrDimensionMismatch
		}
	}
	for _, row := range y {
		if len(row) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	out := make([][]float64, len(x))
	for i, xi := range x {
		out[i] = make([]float64, len(y))
		for j, yj := range y {
			out[i][j] = CosineSimilarity(xi, yj)
		}
	}
	return out, nil
}

// Scored pairs an identifier with a similarity score, in insertion order
// relative to its source collection.
type Scored struct {
	ID    string
	Score float64
}

// TopK ranks items by descending score and returns at most k of them.
//
// Items is expected to already be (id, score) pairs in original insertion
// order; TopK deduplicates by ID — last write wins — then performs a
// stable sort so ties preserve the order items first appeared in.
func TopK(items []Scored, k int) []Scored {
	if k <= 0 {
		return []Scored{}
	}

	order := make([]string, 0, len(items))
	byID := make(map[string]Scored, len(items))
	for _, it := range items {
		if _, seen := byID[it.ID]; !seen {
			order = append(order, it.ID)
		}
		byID[it.ID] = it
	}

	deduped := make([]Scored, len(order))
	for i, id := range order {
		deduped[i] = byID[id]
	}

	stableSortByScoreDesc(deduped)

	if k > len(deduped) {
		k = len(deduped)
	}
	return deduped[:k]
}

// TopKByEmbedding ranks an arbitrary slice of items by cosine similarity to
// query, deduplicating by the id extractor (last write wins) and returning
// at most k items — the (contents, embedding, k) -> contents signature
// spec'd for adapters, generalized over whatever content type the caller
// uses.
//
// TopKByEmbedding is idempotent: feeding its own output back in with the
// same query and k returns the identical slice, since scores don't change
// and nothing new is there to deduplicate away.
func TopKByEmbedding[T any](items []T, id func(T) string, embedding func(T) []float32, query []float32, k int) []T {
	if k <= 0 {
		return []T{}
	}

	order := make([]string, 0, len(items))
	byID := make(map[string]T, len(items))
	for _, it := range items {
		itemID := id(it)
		if _, seen := byID[itemID]; !seen {
			order = append(order, itemID)
		}
		byID[itemID] = it
	}

	scored := make([]Scored, len(order))
	for i, itemID := range order {
		scored[i] = Scored{ID: itemID, Score: CosineSimilarity(embedding(byID[itemID]), query)}
	}
	stableSortByScoreDesc(scored)

	if k > len(scored) {
		k = len(scored)
	}
	out := make([]T, k)
	for i := 0; i < k; i++ {
		out[i] = byID[scored[i].ID]
	}
	return out
}

// stableSortByScoreDesc performs an insertion sort, which is naturally
// stable. It is quadratic in the number of items; MemoryAdapter.Search
// passes it every content that matches the filter, not just k of them.
func stableSortByScoreDesc(items []Scored) {
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && items[j-1].Score < items[j].Score {
			items[j-1], items[j] = items[j], items[j-1]
			j--
		}
	}
}
