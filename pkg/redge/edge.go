// Package redge implements the edge model described in spec §3/§4.2: a
// tagged Metadata-or-Id edge value, the declarative EdgeSpec schema that
// generates both directions of that relation, and the extractor that
// turns a document's metadata into the edge sets the traversal engine
// walks.
package redge

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// ErrInvalidEdgeSpec is returned when an EdgeSpec selector is neither a
// string field name nor the IDSelector sentinel.
var ErrInvalidEdgeSpec = errors.New("redge: edge spec selector must be a string or the $id sentinel")

// IDSelector is the selector sentinel denoting "the document id" rather
// than a metadata field name.
const IDSelector = "$id"

// Kind distinguishes the two Edge variants.
type Kind int

const (
	// KindMetadata matches any content whose metadata[Field] equals
	// Value, or contains Value when that metadata entry is an array.
	KindMetadata Kind = iota
	// KindID matches the single content whose id equals ID.
	KindID
)

// Edge is a tagged value: exactly one of KindMetadata (Field/Value) or
// KindID (ID) is populated, selected by Kind.
//
// Equality and hashing are structural over the variant payload — two
// Edges built from the same field/value (or the same id) compare equal
// regardless of how they were constructed. Nested container values (a
// Value that is itself a map or slice) are never mutated after an Edge
// is built.
type Edge struct {
	Kind  Kind
	Field string
	Value any
	ID    string
}

// MetadataEdge builds a KindMetadata edge.
func MetadataEdge(field string, value any) Edge {
	return Edge{Kind: KindMetadata, Field: field, Value: value}
}

// IDEdge builds a KindID edge.
func IDEdge(id string) Edge {
	return Edge{Kind: KindID, ID: id}
}

// Key returns a canonical, collision-resistant string key for the edge,
// suitable for use as a map key when de-duplicating or tracking visited
// edges.
//
// Per the re-architecture guidance in spec §9, the key is NOT a naive
// JSON stringification of Value (which would collide across differing
// key orders in a nested map/array). Instead it walks Value into a
// canonical byte form — sorted map keys, ordered slice elements, typed
// scalar tags — and hashes that with blake2b. Two structurally equal
// edges always hash identically; two structurally different edges are
// hash-collision-resistant.
func (e Edge) Key() string {
	switch e.Kind {
	case KindID:
		return "id:" + e.ID
	default:
		h := blake2b.Sum256(canonicalBytes(e.Field, e.Value))
		return fmt.Sprintf("meta:%x", h)
	}
}

// Set is a de-duplicated collection of edges, keyed by Edge.Key().
type Set map[string]Edge

// NewSet builds a Set from a slice of edges, collapsing duplicates by
// structural equality.
func NewSet(edges ...Edge) Set {
	s := make(Set, len(edges))
	for _, e := range edges {
		s[e.Key()] = e
	}
	return s
}

// Add inserts e into the set, collapsing it into any structurally equal
// edge already present.
func (s Set) Add(e Edge) {
	s[e.Key()] = e
}

// Has reports whether e (or its structural equal) is in the set.
func (s Set) Has(e Edge) bool {
	_, ok := s[e.Key()]
	return ok
}

// Slice returns the set's edges in map iteration order. Callers that
// need a stable order should sort the result by Key.
func (s Set) Slice() []Edge {
	out := make([]Edge, 0, len(s))
	for _, e := range s {
		out = append(out, e)
	}
	return out
}

// canonicalBytes encodes field+value into a deterministic byte sequence:
// scalars are tagged and appended directly, maps have their keys sorted
// first, and slices are walked in order (order is semantically
// meaningful for an array metadata value, so it is preserved rather than
// sorted).
func canonicalBytes(field string, value any) []byte {
	var buf []byte
	buf = append(buf, []byte(field)...)
	buf = append(buf, 0)
	buf = appendCanonical(buf, value)
	return buf
}

func appendCanonical(buf []byte, v any) []byte {
	switch val := v.(type) {
	case nil:
		return append(buf, 'n')
	case string:
		buf = append(buf, 's')
		return append(buf, []byte(val)...)
	case bool:
		buf = append(buf, 'b')
		if val {
			return append(buf, 1)
		}
		return append(buf, 0)
	case map[string]any:
		buf = append(buf, 'm')
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			buf = append(buf, []byte(k)...)
			buf = append(buf, 0)
			buf = appendCanonical(buf, val[k])
		}
		return buf
	case []any:
		buf = append(buf, 'a')
		for _, elem := range val {
			buf = appendCanonical(buf, elem)
		}
		return buf
	default:
		buf = append(buf, 'x')
		return append(buf, []byte(fmt.Sprintf("%v:%T", val, val))...)
	}
}
