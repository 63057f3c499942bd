package rconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEdgeSchema(t *testing.T) {
	path := writeTemp(t, "edges.yaml", `
edges:
  - source: country
    target: country
  - source: "$id"
    target: mentions
`)
	specs, err := LoadEdgeSchema(path)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "country", specs[0].Source)
	assert.Equal(t, "$id", specs[1].Source)
	assert.Equal(t, "mentions", specs[1].Target)
}

func TestLoadEdgeSchemaRejectsEmptySelector(t *testing.T) {
	path := writeTemp(t, "edges.yaml", `
edges:
  - source: ""
    target: country
`)
	_, err := LoadEdgeSchema(path)
	assert.Error(t, err)
}

func TestLoadStrategyFileDefaultsToEager(t *testing.T) {
	path := writeTemp(t, "strategy.yaml", `
selectK: 5
startK: 2
adjacentK: 4
`)
	sf, err := LoadStrategyFile(path)
	require.NoError(t, err)
	assert.Equal(t, "eager", sf.Kind)
	assert.Equal(t, 5, sf.Config.SelectK)
}

func TestLoadStrategyFileScoredKind(t *testing.T) {
	path := writeTemp(t, "strategy.yaml", `
kind: scored
selectK: 2
`)
	sf, err := LoadStrategyFile(path)
	require.NoError(t, err)
	assert.Equal(t, "scored", sf.Kind)
}
