// Package rtraverse implements the orchestration loop of spec §4.4: the
// single-shot traversal engine that fetches seeds, materializes nodes,
// drives a Strategy/NodeTracker pair round by round over an Adapter, and
// returns the finalized, ordered node sequence.
package rtraverse

import (
	"context"
	"sync"

	"github.com/sicarius97/graph-rag-go/pkg/radapter"
	"github.com/sicarius97/graph-rag-go/pkg/redge"
	"github.com/sicarius97/graph-rag-go/pkg/rnode"
	"github.com/sicarius97/graph-rag-go/pkg/rstrategy"
	"github.com/sicarius97/graph-rag-go/pkg/rvector"
)

// Traversal is a single-shot call to traverse(query, options). Run may be
// invoked exactly once; a second call fails with ErrAlreadyUsed.
type Traversal struct {
	query          string
	edges          EdgeFunc
	strategy       rstrategy.Strategy
	store          radapter.Adapter
	filter         radapter.Filter
	initialRootIDs []string
	storeKwargs    map[string]any

	mu   sync.Mutex
	used bool
}

// New validates opts and returns a fresh Traversal for query. Edges and
// Store are required; Strategy defaults to rstrategy.NewEager(5).
func New(query string, opts Options) (*Traversal, error) {
	edgeFunc, err := resolveEdges(opts.Edges, opts.Warn)
	if err != nil {
		return nil, err
	}
	if opts.Store == nil {
		return nil, ErrMissingStore
	}

	strategy := opts.Strategy
	if strategy == nil {
		strategy = rstrategy.NewEager(5)
	}

	return &Traversal{
		query:          query,
		edges:          edgeFunc,
		strategy:       strategy,
		store:          opts.Store,
		filter:         opts.MetadataFilter,
		initialRootIDs: opts.InitialRootIDs,
		storeKwargs:    opts.StoreKwargs,
	}, nil
}

// Run executes the traversal: seed fetch, then round-by-round expansion
// until the strategy's tracker says stop, then finalization. Cancelling
// ctx abandons the in-flight adapter call and returns ctx.Err() with no
// partial result.
func (t *Traversal) Run(ctx context.Context) ([]rnode.Node, error) {
	t.mu.Lock()
	if t.used {
		t.mu.Unlock()
		return nil, ErrAlreadyUsed
	}
	t.used = true
	t.mu.Unlock()

	cfg := t.strategy.Config()
	state := rnode.NewState()
	tracker := rstrategy.NewNodeTracker(state, cfg.SelectK, cfg.MaxDepth)

	seeds, queryEmbedding, err := t.fetchSeeds(ctx, cfg)
	if err != nil {
		return nil, err
	}

	seedDepth := func(redge.Set) int { return 0 }
	seedNodes := t.materializeBatch(seeds, state, queryEmbedding, seedDepth)
	t.strategy.Iteration(seedNodes, tracker, queryEmbedding)

	edgesVisited := 0
	for !tracker.ShouldStop() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frontier := make([]rnode.Node, 0, len(state.ToTraverse))
		for _, n := range state.ToTraverse {
			frontier = append(frontier, n)
		}
		state.ToTraverse = map[string]rnode.Node{}

		var roundEdges []redge.Edge
		for _, n := range frontier {
			for _, e := range n.OutgoingEdges.Slice() {
				if state.EdgeVisited(e) {
					continue
				}
				if cfg.MaxTraverse != nil && edgesVisited >= *cfg.MaxTraverse {
					continue
				}
				state.MarkEdgeVisited(e, n.Depth+1)
				edgesVisited++
				roundEdges = append(roundEdges, e)
			}
		}
		if len(roundEdges) == 0 {
			break
		}

		adjacentOpts := radapter.Options{K: cfg.AdjacentK, Filter: t.filter, Kwargs: t.storeKwargs}.WithDefaults()
		contents, err := t.store.Adjacent(ctx, roundEdges, queryEmbedding, adjacentOpts)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		newNodes := t.materializeBatch(contents, state, queryEmbedding, state.DepthFor)
		t.strategy.Iteration(newNodes, tracker, queryEmbedding)
	}

	return t.strategy.FinalizeNodes(tracker.Selected()), nil
}

// fetchSeeds performs the parallel fan-out of spec §4.4 step 1 / §5: an
// id-get for InitialRootIDs and a similarity search are dispatched
// together (when each applies) and awaited jointly. Results are merged
// deterministically, ids first then similarity hits.
func (t *Traversal) fetchSeeds(ctx context.Context, cfg rstrategy.Config) ([]rnode.Content, []float32, error) {
	var (
		rootContents []rnode.Content
		rootErr      error
		simContents  []rnode.Content
		queryEmbed   []float32
		simErr       error
	)

	var wg sync.WaitGroup
	if len(t.initialRootIDs) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			opts := radapter.Options{Filter: t.filter, Kwargs: t.storeKwargs}.WithDefaults()
			rootContents, rootErr = t.store.Get(ctx, t.initialRootIDs, opts)
		}()
	}
	if cfg.StartK > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			opts := radapter.Options{K: cfg.StartK, Filter: t.filter, Kwargs: t.storeKwargs}.WithDefaults()
			queryEmbed, simContents, simErr = t.store.SearchWithEmbedding(ctx, t.query, opts)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if rootErr != nil {
		return nil, nil, rootErr
	}
	if simErr != nil {
		return nil, nil, simErr
	}

	seeds := make([]rnode.Content, 0, len(rootContents)+len(simContents))
	seeds = append(seeds, rootContents...)
	seeds = append(seeds, simContents...)
	return seeds, queryEmbed, nil
}

// materialize converts a single content into a node, skipping ids already
// discovered this call. depthFn computes the node's depth from its
// resolved incoming edge set (seeds pass a function that always returns
// 0; expansion rounds pass state.DepthFor).
func (t *Traversal) materialize(c rnode.Content, state *rnode.State, queryEmbedding []float32, depthFn func(redge.Set) int) (rnode.Node, bool) {
	if state.Discovered(c.ID) {
		return rnode.Node{}, false
	}
	incoming, outgoing := t.edges(c)
	depth := depthFn(incoming)
	score := rvector.CosineSimilarity(c.Embedding, queryEmbedding)
	state.MarkDiscovered(c.ID)
	return rnode.NewNode(c, depth, score, incoming, outgoing), true
}

func (t *Traversal) materializeBatch(contents []rnode.Content, state *rnode.State, queryEmbedding []float32, depthFn func(redge.Set) int) []rnode.Node {
	out := make([]rnode.Node, 0, len(contents))
	for _, c := range contents {
		if n, ok := t.materialize(c, state, queryEmbedding, depthFn); ok {
			out = append(out, n)
		}
	}
	return out
}
