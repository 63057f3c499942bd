package redge

import (
	"fmt"
	"strings"
)

// EdgeSpec is a declarative pair naming the source and target selectors
// of a bi-directional edge schema. Each selector is either a metadata
// field name (dotted for nested lookup, e.g. "a.b") or IDSelector.
type EdgeSpec struct {
	Source string
	Target string
}

// NewEdgeSpec validates both selectors are non-empty strings before
// returning the spec; selectors are always strings in Go (unlike the
// dynamically-typed source this schema was distilled from), so the only
// failure mode is an empty selector.
func NewEdgeSpec(source, target string) (EdgeSpec, error) {
	if source == "" || target == "" {
		return EdgeSpec{}, ErrInvalidEdgeSpec
	}
	return EdgeSpec{Source: source, Target: target}, nil
}

// Extractor turns a document's (id, metadata) pair into its incoming and
// outgoing edge sets per a fixed list of EdgeSpecs, implementing the
// MetadataEdgeFunction of spec §4.2.
type Extractor struct {
	specs []EdgeSpec
	warn  func(msg string)
}

// NewExtractor builds an Extractor from a list of EdgeSpecs. warn, if
// non-nil, receives a diagnostic message whenever a non-scalar array
// element is skipped during extraction; pass nil to discard diagnostics.
func NewExtractor(specs []EdgeSpec, warn func(msg string)) *Extractor {
	return &Extractor{specs: specs, warn: warn}
}

// Extract computes (incoming, outgoing) edge sets for a document
// identified by id with the given metadata.
func (ex *Extractor) Extract(id string, metadata map[string]any) (incoming, outgoing Set) {
	incoming = Set{}
	outgoing = Set{}

	for _, spec := range ex.specs {
		ex.emit(outgoing, spec.Source, spec.Target, id, metadata)
		ex.emit(incoming, spec.Target, spec.Source, id, metadata)
	}
	return incoming, outgoing
}

// emit resolves valueSelector against the document and, for each scalar
// value produced, adds an edge to dst keyed by fieldSelector (an Id edge
// when fieldSelector is the $id sentinel, a Metadata edge otherwise).
// A missing/unresolved field is silently skipped — not an error.
func (ex *Extractor) emit(dst Set, valueSelector, fieldSelector, id string, metadata map[string]any) {
	value, ok := resolve(valueSelector, id, metadata)
	if !ok {
		return
	}

	switch v := value.(type) {
	case []any:
		for _, elem := range v {
			if !isScalar(elem) {
				ex.warnf("redge: skipping non-scalar array element for field %q", valueSelector)
				continue
			}
			ex.add(dst, fieldSelector, elem)
		}
	default:
		if !isScalar(v) {
			return
		}
		ex.add(dst, fieldSelector, v)
	}
}

func (ex *Extractor) add(dst Set, fieldSelector string, value any) {
	if fieldSelector == IDSelector {
		s, ok := value.(string)
		if !ok {
			return
		}
		dst.Add(IDEdge(s))
		return
	}
	dst.Add(MetadataEdge(fieldSelector, value))
}

func (ex *Extractor) warnf(format string, args ...any) {
	if ex.warn == nil {
		return
	}
	ex.warn(fmt.Sprintf(format, args...))
}

// resolve looks up selector against the document: "$id" yields id itself,
// everything else is a dotted lookup into metadata.
func resolve(selector, id string, metadata map[string]any) (any, bool) {
	if selector == IDSelector {
		return id, true
	}
	return lookupDotted(metadata, selector)
}

// lookupDotted walks a dotted path ("a.b.c") through nested
// map[string]any values, returning (nil, false) as soon as any segment
// is missing or not itself a map.
func lookupDotted(m map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = m
	for _, part := range parts {
		asMap, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := asMap[part]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// isScalar reports whether v is a string, bool, or number — the only
// values edges may carry per spec §3.
func isScalar(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}
