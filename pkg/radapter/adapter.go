// Package radapter defines the uniform query surface (spec §4.5) the
// traversal engine uses to pull seed and edge-adjacent content from a
// vector store, and provides the in-memory reference implementation
// whose filter and similarity semantics every other adapter must match.
package radapter

import (
	"context"
	"errors"

	"github.com/sicarius97/graph-rag-go/pkg/redge"
	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

// ErrUnsupportedEdge is returned by Adjacent when it receives an Edge
// variant it doesn't know how to resolve.
var ErrUnsupportedEdge = errors.New("radapter: unsupported edge variant")

// ErrAdapterFailure wraps any backend-specific failure an adapter
// surfaces; the engine never retries, so this always propagates.
var ErrAdapterFailure = errors.New("radapter: adapter failure")

// DefaultK is the k applied when an Options value leaves K unset (zero).
const DefaultK = 4

// Filter is a mapping understood by the adapter it's passed to; the
// engine never interprets it itself, only forwards it and merges edge
// field/value pairs into it for Adjacent's per-edge searches (spec §6).
type Filter map[string]any

// Options bundles the optional parameters every adapter operation
// accepts: a result cap (K, defaulting to DefaultK when zero), a filter
// to apply, and an open bag of backend-specific keyword arguments
// (spec §9's AdapterOptions bag) forwarded verbatim.
type Options struct {
	K      int
	Filter Filter
	Kwargs map[string]any
}

// WithDefaults returns a copy of o with K defaulted when unset.
func (o Options) WithDefaults() Options {
	if o.K <= 0 {
		o.K = DefaultK
	}
	return o
}

// Adapter is the facade over a vector store every backend (in-memory,
// or a real Chroma/OpenSearch/Astra/Cassandra client) must implement.
type Adapter interface {
	// SearchWithEmbedding embeds query, returns the embedding it used
	// alongside the top-k contents honoring opts.Filter. The engine
	// relies on getting the embedding back to score subsequently
	// discovered nodes in the same space.
	SearchWithEmbedding(ctx context.Context, query string, opts Options) ([]float32, []rnode.Content, error)

	// Search is SearchWithEmbedding with the embedding already known.
	Search(ctx context.Context, embedding []float32, opts Options) ([]rnode.Content, error)

	// Get returns at most one content per id, in input order; missing
	// ids and ids that fail opts.Filter are silently omitted.
	Get(ctx context.Context, ids []string, opts Options) ([]rnode.Content, error)

	// Adjacent resolves the contents reachable across edges: Metadata
	// edges become a Search with the field/value conjoined into
	// opts.Filter; Id edges are accumulated into one Get; the union is
	// ranked by cosine similarity to queryEmbedding and truncated to
	// opts.K. ErrUnsupportedEdge is returned for any other Edge.Kind.
	Adjacent(ctx context.Context, edges []redge.Edge, queryEmbedding []float32, opts Options) ([]rnode.Content, error)
}
