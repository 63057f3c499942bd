package rstrategy

import "github.com/sicarius97/graph-rag-go/pkg/rnode"

// Eager is the breadth-first built-in strategy (spec §4.3): every node
// handed to Iteration is both selected for output and queued for
// expansion, in the order the adapter returned them.
type Eager struct {
	config Config
}

// NewEager builds an Eager strategy with selectK as its only required
// knob; startK and adjacentK default to 4, maxDepth/maxTraverse to
// unbounded, and all of them can be replaced via WithConfig or the build
// factory.
func NewEager(selectK int) *Eager {
	return &Eager{config: Config{SelectK: selectK, StartK: 4, AdjacentK: 4}}
}

// WithConfig returns e with its Config replaced by cfg (used by the
// build factory to layer option overrides on).
func (e *Eager) WithConfig(cfg Config) Strategy {
	e.config = cfg
	return e
}

func (e *Eager) Config() Config { return e.config }

func (e *Eager) Iteration(nodes []rnode.Node, tracker *NodeTracker, _ []float32) {
	tracker.SelectAndTraverse(nodes)
}

func (e *Eager) FinalizeNodes(selected []rnode.Node) []rnode.Node {
	return DefaultFinalize(selected, e.config.SelectK)
}
