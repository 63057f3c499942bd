package rstrategy

import (
	"container/heap"
	"sort"

	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

// Scorer assigns a ranking value to a node; higher scores are preferred.
type Scorer func(n rnode.Node) float64

// Scored is the priority-driven built-in strategy (spec §4.3): every
// node handed to Iteration is pushed into a max-heap keyed by Scorer,
// then up to PerIterationLimit (or everything still needed, whichever
// is smaller) of the highest-scoring nodes are popped, stamped with
// _score, and both selected and queued for expansion.
type Scored struct {
	config            Config
	scorer            Scorer
	perIterationLimit *int
	pq                scoreHeap
}

// NewScored builds a Scored strategy. perIterationLimit, when non-nil,
// caps how many nodes are popped from the queue per round regardless of
// how much selection headroom remains.
func NewScored(selectK int, scorer Scorer, perIterationLimit *int) *Scored {
	return &Scored{
		config:            Config{SelectK: selectK, StartK: 4, AdjacentK: 4},
		scorer:            scorer,
		perIterationLimit: perIterationLimit,
		pq:                scoreHeap{},
	}
}

// WithConfig returns s with its Config replaced by cfg.
func (s *Scored) WithConfig(cfg Config) Strategy {
	s.config = cfg
	return s
}

func (s *Scored) Config() Config { return s.config }

func (s *Scored) Iteration(nodes []rnode.Node, tracker *NodeTracker, _ []float32) {
	for _, n := range nodes {
		heap.Push(&s.pq, scoredItem{node: n, score: s.scorer(n)})
	}

	limit := tracker.NumRemaining()
	if s.perIterationLimit != nil && *s.perIterationLimit < limit {
		limit = *s.perIterationLimit
	}

	popped := make([]rnode.Node, 0, limit)
	for i := 0; i < limit && s.pq.Len() > 0; i++ {
		item := heap.Pop(&s.pq).(scoredItem)
		n := item.node
		n.StampScore(item.score)
		popped = append(popped, n)
	}

	tracker.SelectAndTraverse(popped)
}

// FinalizeNodes re-sorts selected by _score descending (stability is not
// required by spec §4.3) and returns the first selectK.
func (s *Scored) FinalizeNodes(selected []rnode.Node) []rnode.Node {
	sorted := append([]rnode.Node{}, selected...)
	sort.Slice(sorted, func(i, j int) bool {
		return scoreOf(sorted[i]) > scoreOf(sorted[j])
	})
	return DefaultFinalize(sorted, s.config.SelectK)
}

func scoreOf(n rnode.Node) float64 {
	v, ok := n.Annotations[rnode.AnnotationScore]
	if !ok {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return f
}
