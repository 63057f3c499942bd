package rnode

import "github.com/sicarius97/graph-rag-go/pkg/redge"

// Annotation keys the strategy and tracker stamp into a Node's
// Annotations map. These are the only ambient, open-ended fields the
// traversal-time view carries; everything else on Node is fixed.
const (
	AnnotationDepth           = "_depth"
	AnnotationSimilarityScore = "_similarity_score"
	AnnotationScore           = "_score"
)

// Node is the traversal-time view of a Content: the content itself plus
// the bookkeeping the engine and strategy need — depth, similarity to
// the query, the edges reachable to/from it, and a free-form Annotations
// map a strategy writes into (mirroring the source's "extraMetadata").
//
// A Node is created once, the moment its id is first discovered, and is
// never mutated afterward except through Annotations.
type Node struct {
	ID              string
	Content         string
	Embedding       []float32
	Metadata        map[string]any
	Depth           int
	SimilarityScore float64
	IncomingEdges   redge.Set
	OutgoingEdges   redge.Set
	Annotations     map[string]any
}

// NewNode materializes a Node from a Content at the given depth, scoring
// it against queryEmbedding with incoming/outgoing edges produced by the
// caller's extractor.
func NewNode(c Content, depth int, similarityScore float64, incoming, outgoing redge.Set) Node {
	return Node{
		ID:              c.ID,
		Content:         c.Text,
		Embedding:       c.Embedding,
		Metadata:        c.Metadata,
		Depth:           depth,
		SimilarityScore: similarityScore,
		IncomingEdges:   incoming,
		OutgoingEdges:   outgoing,
		Annotations:     map[string]any{},
	}
}

// StampDepthAndScore writes the _depth and _similarity_score annotations
// a selected node always carries.
func (n *Node) StampDepthAndScore() {
	if n.Annotations == nil {
		n.Annotations = map[string]any{}
	}
	n.Annotations[AnnotationDepth] = n.Depth
	n.Annotations[AnnotationSimilarityScore] = n.SimilarityScore
}

// StampScore writes the _score annotation a Scored-strategy selection
// carries in addition to depth/similarity.
func (n *Node) StampScore(score float64) {
	if n.Annotations == nil {
		n.Annotations = map[string]any{}
	}
	n.Annotations[AnnotationScore] = score
}

// OutputMetadata returns the document's original metadata merged with
// Annotations, with Annotations winning on key conflicts — the shape
// spec §6 promises consumers of the node stream.
func (n Node) OutputMetadata() map[string]any {
	out := make(map[string]any, len(n.Metadata)+len(n.Annotations))
	for k, v := range n.Metadata {
		out[k] = v
	}
	for k, v := range n.Annotations {
		out[k] = v
	}
	return out
}
