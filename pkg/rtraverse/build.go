package rtraverse

import (
	"context"

	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

// Traverse is the library's retrieval entry point: traverse(query,
// options) → sequence<Node> (spec §6). It is equivalent to New followed
// by Run, for callers who don't need to hold the Traversal value.
func Traverse(ctx context.Context, query string, opts Options) ([]rnode.Node, error) {
	t, err := New(query, opts)
	if err != nil {
		return nil, err
	}
	return t.Run(ctx)
}
