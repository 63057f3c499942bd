package rstrategy

import "github.com/sicarius97/graph-rag-go/pkg/rnode"

// Config bundles the scalar knobs spec §4.3/§6 put on a strategy:
// selectK (output cap), startK (seeds fetched by similarity), adjacentK
// (max contents fetched per expansion round), and the optional
// maxDepth/maxTraverse bounds.
//
// Per the re-architecture guidance in spec §9, the query embedding is
// NOT a field here — a strategy's Config is its static configuration,
// fixed at construction. The engine passes the query embedding into
// Iteration explicitly instead of writing it onto a shared mutable
// field, so Config carries no per-call state. Scored does keep its
// priority queue between Iteration calls, and that queue is not reset
// between traversals.
type Config struct {
	SelectK     int
	StartK      int
	AdjacentK   int
	MaxDepth    *int
	MaxTraverse *int
}

// Strategy decides, each round, which newly materialized nodes are
// selected for output and which are queued for further expansion, and
// produces the final ordered output once the traversal completes.
type Strategy interface {
	Config() Config

	// Iteration is invoked once per round with the nodes materialized
	// that round (depth 0 for the very first, seed round) and the
	// query's embedding. It must drive tracker.Select/Traverse/
	// SelectAndTraverse to make progress.
	Iteration(nodes []rnode.Node, tracker *NodeTracker, queryEmbedding []float32)

	// FinalizeNodes is called once, at the end, with every node the
	// strategy selected over the whole call.
	FinalizeNodes(selected []rnode.Node) []rnode.Node
}

// Reconfigurable is implemented by strategies that support the build(strategy,
// options) factory of spec §6: WithConfig returns a copy (or the same
// value, mutated) with cfg layered on.
type Reconfigurable interface {
	Strategy
	WithConfig(Config) Strategy
}

// DefaultFinalize returns the first selectK items of selected, preserving
// insertion order — the finalization every strategy falls back to unless
// it needs a different ordering (Scored re-sorts first).
func DefaultFinalize(selected []rnode.Node, selectK int) []rnode.Node {
	if selectK < len(selected) {
		return append([]rnode.Node{}, selected[:selectK]...)
	}
	return append([]rnode.Node{}, selected...)
}
