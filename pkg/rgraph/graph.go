// Package rgraph builds an offline adjacency view over a document
// collection for analysis (spec §4.6): a directed graph whose arcs mirror
// structural edge equality between outgoing and incoming sets, plus a
// community partition over its undirected projection.
//
// The utility is declarative: it takes a slice of contents and an edge
// function, and has no adapter dependency of its own — it is meant for
// offline reporting, not for driving a traversal.
package rgraph

import (
	"github.com/sicarius97/graph-rag-go/pkg/redge"
	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

// EdgeFunc computes a content's incoming and outgoing edge sets, the same
// shape rtraverse.EdgeFunc uses. Kept as its own type here rather than
// imported so this package stays free of any engine dependency.
type EdgeFunc func(c rnode.Content) (incoming, outgoing redge.Set)

// Graph is a directed adjacency map: Graph[u][v] exists when some
// outgoing edge of u structurally equals some incoming edge of v.
// BuildGraph gives every document a key, with an empty set when it has
// no outgoing arcs, so isolated documents are still vertices.
// Self-loops are never recorded.
type Graph map[string]map[string]struct{}

// AddArc records a directed u -> v arc, allocating the inner set if this
// is u's first recorded arc. A self-loop (u == v) is silently dropped.
func (g Graph) AddArc(u, v string) {
	if u == v {
		return
	}
	if g[u] == nil {
		g[u] = map[string]struct{}{}
	}
	g[u][v] = struct{}{}
}

// Vertices returns every document id that appears in the graph, either as
// a source or a target.
func (g Graph) Vertices() []string {
	seen := map[string]struct{}{}
	for u, targets := range g {
		seen[u] = struct{}{}
		for v := range targets {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}

// BuildGraph constructs the directed arc set over contents: for every
// pair (u, v) with u != v, an arc u -> v is added whenever any of u's
// outgoing edges structurally equals (by Edge.Key) any of v's incoming
// edges. O(n^2) in the number of documents, which is acceptable for the
// offline, one-shot use this utility is meant for.
func BuildGraph(contents []rnode.Content, edges EdgeFunc) Graph {
	type resolved struct {
		id       string
		incoming redge.Set
		outgoing redge.Set
	}

	resolvedDocs := make([]resolved, 0, len(contents))
	for _, c := range contents {
		incoming, outgoing := edges(c)
		resolvedDocs = append(resolvedDocs, resolved{id: c.ID, incoming: incoming, outgoing: outgoing})
	}

	incomingKeys := make([]map[string]struct{}, len(resolvedDocs))
	for i, d := range resolvedDocs {
		keys := make(map[string]struct{}, len(d.incoming))
		for _, e := range d.incoming.Slice() {
			keys[e.Key()] = struct{}{}
		}
		incomingKeys[i] = keys
	}

	g := Graph{}
	for i, u := range resolvedDocs {
		if g[u.id] == nil {
			g[u.id] = map[string]struct{}{}
		}
		for _, e := range u.outgoing.Slice() {
			key := e.Key()
			for j, v := range resolvedDocs {
				if i == j {
					continue
				}
				if _, ok := incomingKeys[j][key]; ok {
					g.AddArc(u.id, v.id)
				}
			}
		}
	}
	return g
}
