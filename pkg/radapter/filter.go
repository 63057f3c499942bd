package radapter

import (
	"reflect"
	"strings"

	"github.com/sicarius97/graph-rag-go/pkg/rnode"
)

// Matches reports whether c's metadata satisfies filter, per the
// contract every adapter — not just the in-memory reference — must
// honor (spec §4.5): dotted keys perform nested lookup, the filter
// value must equal the content's value at that key or be an element of
// it when the content's value is an array, and a key absent from the
// content's metadata fails the match.
func Matches(c rnode.Content, filter Filter) bool {
	for key, want := range filter {
		got, ok := lookupDotted(c.Metadata, key)
		if !ok {
			return false
		}
		if !valueMatches(got, want) {
			return false
		}
	}
	return true
}

func valueMatches(got, want any) bool {
	if equalScalar(got, want) {
		return true
	}
	if arr, ok := asAnySlice(got); ok {
		for _, elem := range arr {
			if equalScalar(elem, want) {
				return true
			}
		}
	}
	return false
}

func equalScalar(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

func asAnySlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
}

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

// MergeFilter returns a new Filter with extra's keys layered over base
// (extra wins on conflict), used when Adjacent conjoins a Metadata
// edge's field/value pair into the caller's base filter.
func MergeFilter(base Filter, extra Filter) Filter {
	out := make(Filter, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
