package rtraverse

import (
	"fmt"

	"github.com/sicarius97/graph-rag-go/pkg/redge"
	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

// EdgeFunc computes a content's incoming and outgoing edge sets. It is the
// function form of the "edges" option (spec §6): either a declarative
// EdgeSpec list or a caller-supplied function satisfies this shape.
type EdgeFunc func(c rnode.Content) (incoming, outgoing redge.Set)

// EdgesFromSpecs adapts a declarative EdgeSpec list into an EdgeFunc via
// the same extractor the redge package exposes directly. warn is
// forwarded to the extractor for skipped non-scalar array elements.
func EdgesFromSpecs(specs []redge.EdgeSpec, warn func(string)) EdgeFunc {
	ex := redge.NewExtractor(specs, warn)
	return func(c rnode.Content) (redge.Set, redge.Set) {
		return ex.Extract(c.ID, c.Metadata)
	}
}

// resolveEdges normalizes the Options.Edges field, which accepts either an
// EdgeFunc directly or a []redge.EdgeSpec, into a single EdgeFunc. Any other
// type is a caller programming error surfaced as ErrMissingEdges, since the
// option is effectively absent.
func resolveEdges(v any, warn func(string)) (EdgeFunc, error) {
	switch e := v.(type) {
	case nil:
		return nil, ErrMissingEdges
	case EdgeFunc:
		return e, nil
	case []redge.EdgeSpec:
		return EdgesFromSpecs(e, warn), nil
	default:
		return nil, fmt.Errorf("%w: unsupported edges value of type %T", ErrMissingEdges, v)
	}
}
