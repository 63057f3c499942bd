package rtraverse

import (
	"github.com/sicarius97/graph-rag-go/pkg/radapter"
	"github.com/sicarius97/graph-rag-go/pkg/rstrategy"
)

// Options bundles the traverse(query, options) parameters of spec §6.
// Edges, Store are required; everything else falls back to the defaults
// the table there documents.
type Options struct {
	// Edges is a []redge.EdgeSpec or an EdgeFunc. Required.
	Edges any

	// Strategy defaults to rstrategy.NewEager(5) when nil.
	Strategy rstrategy.Strategy

	// Store is the adapter the engine queries for seeds and adjacency.
	// Required.
	Store radapter.Adapter

	// MetadataFilter is forwarded to every adapter call and merged into
	// per-edge filters during expansion.
	MetadataFilter radapter.Filter

	// InitialRootIDs are guaranteed seeds fetched via Store.Get.
	InitialRootIDs []string

	// StoreKwargs is forwarded verbatim to the adapter.
	StoreKwargs map[string]any

	// Warn receives edge-extraction diagnostics (skipped non-scalar
	// array elements). Nil discards them.
	Warn func(msg string)
}

// BuildOptions overrides the scalar knobs that spec §6 says live on the
// strategy but are equivalently settable through the build(strategy,
// options) factory: selectK, startK, adjacentK, maxDepth, maxTraverse,
// plus the legacy K alias for SelectK.
type BuildOptions struct {
	K           *int
	SelectK     *int
	StartK      *int
	AdjacentK   *int
	MaxDepth    *int
	MaxTraverse *int
}

// Build returns strategy (or, when it implements rstrategy.Reconfigurable,
// the result of its WithConfig, which for Eager and Scored is the same
// value reconfigured in place) with BuildOptions' non-nil overrides layered
// onto its Config, K treated as an alias for SelectK when SelectK itself
// is absent (legacy compatibility, spec §6). A strategy that does not
// implement Reconfigurable is returned unchanged — there is no generic
// way to rebuild an arbitrary caller-supplied Strategy.
func Build(strategy rstrategy.Strategy, opts BuildOptions) rstrategy.Strategy {
	cfg := strategy.Config()

	if opts.SelectK != nil {
		cfg.SelectK = *opts.SelectK
	} else if opts.K != nil {
		cfg.SelectK = *opts.K
	}
	if opts.StartK != nil {
		cfg.StartK = *opts.StartK
	}
	if opts.AdjacentK != nil {
		cfg.AdjacentK = *opts.AdjacentK
	}
	if opts.MaxDepth != nil {
		cfg.MaxDepth = opts.MaxDepth
	}
	if opts.MaxTraverse != nil {
		cfg.MaxTraverse = opts.MaxTraverse
	}

	if r, ok := strategy.(rstrategy.Reconfigurable); ok {
		return r.WithConfig(cfg)
	}
	return strategy
}
