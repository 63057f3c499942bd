package radapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

func TestBadgerContentStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewInMemoryBadgerContentStore()
	require.NoError(t, err)
	defer store.Close()

	c := rnode.NewContent("d1", "Paris", []float32{1, 2, 3}, map[string]any{"country": "FR"}, "")
	require.NoError(t, store.Put(ctx, c))

	got, ok, err := store.Get(ctx, "d1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, c.Text, got.Text)
	assert.Equal(t, c.Embedding, got.Embedding)
	assert.Equal(t, "FR", got.Metadata["country"])

	_, ok, err = store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBadgerContentStoreSatisfiesContentStoreInterface(t *testing.T) {
	var _ ContentStore = (*BadgerContentStore)(nil)
}
