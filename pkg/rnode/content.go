// Package rnode defines the immutable value types an adapter returns
// (Content) and the traversal-time view built on top of them (Node),
// along with the per-call traversal state the engine and strategy share.
//
// Content and Node are the leaves of the whole module: every other
// package — the edge extractor, the adapter contract, the strategy, the
// engine — operates on these two types.
package rnode

import "errors"

// ErrMissingID is returned when a Content (or a document being converted
// to one) has no id set.
var ErrMissingID = errors.New("rnode: content has no id")

// ErrMissingEmbedding is returned when a conversion requires an embedding
// that was never supplied.
var ErrMissingEmbedding = errors.New("rnode: content has no embedding")

// Content is the immutable record an adapter returns for a single
// document. Id uniquely identifies the document within the store that
// produced it; embeddings from the same store always share a dimension.
type Content struct {
	ID       string
	Text     string
	Embedding []float32
	Metadata  map[string]any
	MimeType  string
}

// DefaultMimeType is emitted by adapters that don't know better, per the
// contract: unknown mime types are treated opaquely downstream.
const DefaultMimeType = "text/plain"

// NewContent builds a Content, defaulting MimeType to DefaultMimeType
// when the caller leaves it blank. It does not validate ID or Embedding;
// use Validate for that at conversion boundaries.
func NewContent(id, text string, embedding []float32, metadata map[string]any, mimeType string) Content {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	return Content{
		ID:        id,
		Text:      text,
		Embedding: embedding,
		Metadata:  metadata,
		MimeType:  mimeType,
	}
}

// Validate checks the invariants a Content must hold before it can be
// materialized into a Node: a non-empty id and a non-empty embedding.
func (c Content) Validate() error {
	if c.ID == "" {
		return ErrMissingID
	}
	if len(c.Embedding) == 0 {
		return ErrMissingEmbedding
	}
	return nil
}
