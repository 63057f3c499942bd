// Package rstrategy implements the frontier policy layer of spec §4.3:
// the NodeTracker that enforces selection caps, depth bounds, and
// traversal de-duplication, and the Strategy contract plus its two
// built-in implementations (Eager, Scored).
package rstrategy

import "github.com/sicarius97/graph-rag-go/pkg/rnode"

// NodeTracker enforces selectK, maxDepth, uniqueness, and termination
// for one traversal call. A strategy's Iteration method drives it by
// calling Select/Traverse/SelectAndTraverse.
type NodeTracker struct {
	state    *rnode.State
	selectK  int
	maxDepth *int // nil means unbounded

	queued map[string]struct{}
}

// NewNodeTracker builds a tracker bound to state, capping selection at
// selectK and, when maxDepth is non-nil, refusing to queue any node at
// or past that depth for further expansion.
func NewNodeTracker(state *rnode.State, selectK int, maxDepth *int) *NodeTracker {
	return &NodeTracker{
		state:    state,
		selectK:  selectK,
		maxDepth: maxDepth,
		queued:   map[string]struct{}{},
	}
}

// Select appends nodes to the selected output, stamping _depth and
// _similarity_score on each.
func (t *NodeTracker) Select(nodes []rnode.Node) {
	for i := range nodes {
		n := nodes[i]
		n.StampDepthAndScore()
		t.state.Selected = append(t.state.Selected, n)
	}
}

// Traverse queues each node for the next expansion round, skipping any
// node already queued this call and any node whose depth is not
// strictly less than maxDepth when maxDepth is set. It returns the
// number of nodes actually queued.
func (t *NodeTracker) Traverse(nodes []rnode.Node) int {
	queuedCount := 0
	for _, n := range nodes {
		if _, seen := t.queued[n.ID]; seen {
			continue
		}
		if t.maxDepth != nil && n.Depth >= *t.maxDepth {
			continue
		}
		t.queued[n.ID] = struct{}{}
		t.state.ToTraverse[n.ID] = n
		queuedCount++
	}
	return queuedCount
}

// SelectAndTraverse selects then traverses the same nodes, returning the
// traverse count.
func (t *NodeTracker) SelectAndTraverse(nodes []rnode.Node) int {
	t.Select(nodes)
	return t.Traverse(nodes)
}

// NumRemaining returns max(selectK - len(selected), 0).
func (t *NodeTracker) NumRemaining() int {
	remaining := t.selectK - len(t.state.Selected)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ShouldStop reports whether the traversal loop should terminate: the
// selection cap is met, or nothing remains queued for expansion.
func (t *NodeTracker) ShouldStop() bool {
	return t.NumRemaining() == 0 || len(t.state.ToTraverse) == 0
}

// Selected returns the nodes selected so far, in selection order.
func (t *NodeTracker) Selected() []rnode.Node {
	return t.state.Selected
}
