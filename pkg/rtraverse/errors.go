package rtraverse

import (
	"errors"

	"github.com/sicarius97/graph-rag-go/pkg/radapter"
	"github.com/sicarius97/graph-rag-go/pkg/redge"
	"github.com/sicarius97/graph-rag-go/pkg/rnode"
	"github.com/sicarius97/graph-rag-go/pkg/rvector"
)

// Error kinds, gathered here as exported sentinels per SPEC_FULL.md's
// ambient-stack error handling section — each one named in spec §7.
// The ones already owned by a lower-level package (edge spec validation,
// content invariants, vector dimensions, adapter semantics) are aliased
// rather than redeclared, so errors.Is works regardless of which layer
// a caller catches the failure at.
var (
	ErrInvalidEdgeSpec   = redge.ErrInvalidEdgeSpec
	ErrDimensionMismatch = rvector.ErrDimensionMismatch
	ErrUnsupportedEdge   = radapter.ErrUnsupportedEdge
	ErrMissingEmbedding  = rnode.ErrMissingEmbedding
	ErrMissingID         = rnode.ErrMissingID
	ErrAdapterFailure    = radapter.ErrAdapterFailure

	// ErrMissingEdges is raised when neither the constructor nor the
	// call supplied an edge schema/function.
	ErrMissingEdges = errors.New("rtraverse: edges must be supplied")

	// ErrAlreadyUsed is raised when a Traversal's Run is invoked more
	// than once; a Traversal is single-shot.
	ErrAlreadyUsed = errors.New("rtraverse: traversal already used")

	// ErrMissingStore is raised when Options.Store is nil; not one of
	// spec §7's named kinds, but required for the engine to do anything.
	ErrMissingStore = errors.New("rtraverse: store must be supplied")
)
