package rconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sicarius97/graph-rag-go/pkg/redge"
	"github.com/sicarius97/graph-rag-go/pkg/rstrategy"
)

// edgeSpecYAML mirrors redge.EdgeSpec for declarative schema files: a set
// of (source, target) selector pairs defining a traversal's graph schema.
type edgeSpecYAML struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// edgeSchemaYAML is the document shape of an edge schema file:
//
//	edges:
//	  - source: country
//	    target: country
//	  - source: "$id"
//	    target: mentions
type edgeSchemaYAML struct {
	Edges []edgeSpecYAML `yaml:"edges"`
}

// LoadEdgeSchema reads a YAML edge-schema file and returns the validated
// redge.EdgeSpec list it declares.
func LoadEdgeSchema(path string) ([]redge.EdgeSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rconfig: read edge schema %s: %w", path, err)
	}

	var doc edgeSchemaYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("rconfig: parse edge schema %s: %w", path, err)
	}

	specs := make([]redge.EdgeSpec, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		spec, err := redge.NewEdgeSpec(e.Source, e.Target)
		if err != nil {
			return nil, fmt.Errorf("rconfig: edge schema %s: %w", path, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// strategyYAML is the document shape of a strategy file:
//
//	kind: eager   # or "scored"
//	selectK: 5
//	startK: 4
//	adjacentK: 4
//	maxDepth: 2
//	maxTraverse: 50
type strategyYAML struct {
	Kind        string `yaml:"kind"`
	SelectK     int    `yaml:"selectK"`
	StartK      int    `yaml:"startK"`
	AdjacentK   int    `yaml:"adjacentK"`
	MaxDepth    *int   `yaml:"maxDepth"`
	MaxTraverse *int   `yaml:"maxTraverse"`
}

// StrategyFile is the parsed form of a strategy YAML file: which built-in
// strategy to construct and the Config to give it.
type StrategyFile struct {
	Kind   string
	Config rstrategy.Config
}

// LoadStrategyFile reads a YAML strategy file.
func LoadStrategyFile(path string) (*StrategyFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rconfig: read strategy file %s: %w", path, err)
	}

	var doc strategyYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("rconfig: parse strategy file %s: %w", path, err)
	}

	kind := doc.Kind
	if kind == "" {
		kind = "eager"
	}

	return &StrategyFile{
		Kind: kind,
		Config: rstrategy.Config{
			SelectK:     doc.SelectK,
			StartK:      doc.StartK,
			AdjacentK:   doc.AdjacentK,
			MaxDepth:    doc.MaxDepth,
			MaxTraverse: doc.MaxTraverse,
		},
	}, nil
}
