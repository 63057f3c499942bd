package rnode

import "github.com/sicarius97/graph-rag-go/pkg/redge"

// State is the per-call traversal state described in spec §3: which
// node ids have been materialized, which edges have already been
// expanded, the depth newly-discovered nodes inherit from each edge,
// the ordered list of selected nodes, and the frontier of nodes queued
// for the next expansion round.
//
// A State belongs to exactly one traversal; it is never shared across
// calls and carries no synchronization of its own — the engine that owns
// it runs single-threaded between await points (spec §5).
type State struct {
	DiscoveredNodeIDs map[string]struct{}
	VisitedEdges      map[string]struct{}
	EdgeDepths        map[string]int
	Selected          []Node
	ToTraverse        map[string]Node
}

// NewState returns an empty traversal state ready for a fresh call.
func NewState() *State {
	return &State{
		DiscoveredNodeIDs: map[string]struct{}{},
		VisitedEdges:      map[string]struct{}{},
		EdgeDepths:        map[string]int{},
		Selected:          nil,
		ToTraverse:        map[string]Node{},
	}
}

// Discovered reports whether id has already been materialized into a
// node this call.
func (s *State) Discovered(id string) bool {
	_, ok := s.DiscoveredNodeIDs[id]
	return ok
}

// MarkDiscovered records id as materialized.
func (s *State) MarkDiscovered(id string) {
	s.DiscoveredNodeIDs[id] = struct{}{}
}

// EdgeVisited reports whether e has already been expanded this call.
func (s *State) EdgeVisited(e redge.Edge) bool {
	_, ok := s.VisitedEdges[e.Key()]
	return ok
}

// MarkEdgeVisited records e as expanded and remembers the depth nodes
// first reached via e should inherit.
func (s *State) MarkEdgeVisited(e redge.Edge, depth int) {
	s.VisitedEdges[e.Key()] = struct{}{}
	s.EdgeDepths[e.Key()] = depth
}

// DepthFor computes the depth a newly discovered node should take given
// its incoming edges: the minimum recorded depth among edges that are
// both in node's incoming set and in EdgeDepths, or 0 if none match —
// spec §4.4 step 3e's min({}, 0) fallback, pinned per SPEC_FULL.md's
// Open Question decision to leave this as-is rather than fall back to
// parent.depth+1.
func (s *State) DepthFor(incoming redge.Set) int {
	best := -1
	for _, e := range incoming {
		d, ok := s.EdgeDepths[e.Key()]
		if !ok {
			continue
		}
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0
	}
	return best
}
