package radapter

import (
	"context"
	"fmt"

	"github.com/sicarius97/graph-rag-go/pkg/redge"
	"github.com/sicarius97/graph-rag-go/pkg/rembed"
	"github.com/sicarius97/graph-rag-go/pkg/rnode"
	"github.com/sicarius97/graph-rag-go/pkg/rvector"
)

// ContentStore is the backing id -> Content mapping a MemoryAdapter
// reads from and writes to. MapContentStore is the default, pure-Go
// implementation; BadgerContentStore (badger.go) is a disk-backed
// alternative for corpora that should survive process restarts.
type ContentStore interface {
	Put(ctx context.Context, c rnode.Content) error
	Get(ctx context.Context, id string) (rnode.Content, bool, error)
	All(ctx context.Context) ([]rnode.Content, error)
	Close() error
}

// MapContentStore is a map[string]Content, the reference backing store
// spec §4.5 describes. All returns contents in first-insertion order, so
// equally-scored results keep that order after ranking.
type MapContentStore struct {
	byID  map[string]rnode.Content
	order []string
}

// NewMapContentStore returns an empty MapContentStore.
func NewMapContentStore() *MapContentStore {
	return &MapContentStore{byID: map[string]rnode.Content{}}
}

func (m *MapContentStore) Put(_ context.Context, c rnode.Content) error {
	if _, ok := m.byID[c.ID]; !ok {
		m.order = append(m.order, c.ID)
	}
	m.byID[c.ID] = c
	return nil
}

func (m *MapContentStore) Get(_ context.Context, id string) (rnode.Content, bool, error) {
	c, ok := m.byID[id]
	return c, ok, nil
}

func (m *MapContentStore) All(_ context.Context) ([]rnode.Content, error) {
	out := make([]rnode.Content, 0, len(m.byID))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

func (m *MapContentStore) Close() error { return nil }

// MemoryAdapter is the in-memory reference Adapter implementation: the
// behavioral contract every other adapter backend must match (spec
// §4.5). It pairs a ContentStore with an Embedder so it can serve
// SearchWithEmbedding without a caller-supplied query vector.
type MemoryAdapter struct {
	store    ContentStore
	embedder rembed.Embedder
}

// NewMemoryAdapter builds a MemoryAdapter over store using embedder to
// turn query text into vectors.
func NewMemoryAdapter(store ContentStore, embedder rembed.Embedder) *MemoryAdapter {
	return &MemoryAdapter{store: store, embedder: embedder}
}

// Add inserts or replaces a content in the backing store — a
// convenience for building a corpus in tests and the demo CLI.
func (a *MemoryAdapter) Add(ctx context.Context, c rnode.Content) error {
	return a.store.Put(ctx, c)
}

func (a *MemoryAdapter) SearchWithEmbedding(ctx context.Context, query string, opts Options) ([]float32, []rnode.Content, error) {
	embedding, err := a.embedder.Embed(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: embed query: %v", ErrAdapterFailure, err)
	}
	contents, err := a.Search(ctx, embedding, opts)
	if err != nil {
		return nil, nil, err
	}
	return embedding, contents, nil
}

func (a *MemoryAdapter) Search(ctx context.Context, embedding []float32, opts Options) ([]rnode.Content, error) {
	opts = opts.WithDefaults()

	all, err := a.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list contents: %v", ErrAdapterFailure, err)
	}

	matching := make([]rnode.Content, 0, len(all))
	for _, c := range all {
		if Matches(c, opts.Filter) {
			matching = append(matching, c)
		}
	}

	return rvector.TopKByEmbedding(matching,
		func(c rnode.Content) string { return c.ID },
		func(c rnode.Content) []float32 { return c.Embedding },
		embedding, opts.K), nil
}

func (a *MemoryAdapter) Get(ctx context.Context, ids []string, opts Options) ([]rnode.Content, error) {
	out := make([]rnode.Content, 0, len(ids))
	for _, id := range ids {
		c, ok, err := a.store.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: get %q: %v", ErrAdapterFailure, id, err)
		}
		if !ok {
			continue
		}
		if !Matches(c, opts.Filter) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (a *MemoryAdapter) Adjacent(ctx context.Context, edges []redge.Edge, queryEmbedding []float32, opts Options) ([]rnode.Content, error) {
	opts = opts.WithDefaults()

	var ids []string
	var gathered []rnode.Content

	for _, e := range edges {
		switch e.Kind {
		case redge.KindMetadata:
			merged := opts
			merged.Filter = MergeFilter(opts.Filter, Filter{e.Field: e.Value})
			results, err := a.Search(ctx, queryEmbedding, merged)
			if err != nil {
				return nil, err
			}
			gathered = append(gathered, results...)
		case redge.KindID:
			ids = append(ids, e.ID)
		default:
			return nil, ErrUnsupportedEdge
		}
	}

	if len(ids) > 0 {
		results, err := a.Get(ctx, ids, Options{Filter: opts.Filter})
		if err != nil {
			return nil, err
		}
		gathered = append(gathered, results...)
	}

	return rvector.TopKByEmbedding(gathered,
		func(c rnode.Content) string { return c.ID },
		func(c rnode.Content) []float32 { return c.Embedding },
		queryEmbedding, opts.K), nil
}
