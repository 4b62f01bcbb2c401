// Package wire absorbs the irregularity of the Yahoo Fantasy Sports JSON
// format. The API has no single consistent schema: lists show up as real
// arrays, as single objects, or as objects keyed by numeric strings with a
// sibling "count" entry; entity properties arrive as arrays of single-key
// objects; absent values are sometimes the boolean false instead of null.
// Everything in this package is a total function over a decoded JSON tree
// (the any/map[string]any/[]any shapes produced by encoding/json) so that
// the model parsers never have to type-assert raw payloads themselves.
package wire

import (
	"sort"
	"strconv"
	"strings"
)

// Get walks data by sequential keys and returns the value at the end of the
// path, or nil if any intermediate node is absent or not an object. Callers
// must treat nil as "field unavailable", not as an error.
func Get(data any, keys ...string) any {
	current := data
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
		if current == nil {
			return nil
		}
	}
	return current
}

// Items normalizes the three container shapes Yahoo uses for "zero or one or
// many" into an ordered slice of inner payloads:
//
//   - a single object, possibly wrapping the item under itemKey
//   - an array of objects, each possibly wrapping the item under itemKey
//   - an object keyed by numeric strings ("0", "1", ...) with a "count"
//     sibling to skip, each entry possibly wrapping the item under itemKey
//
// Numeric-keyed objects are ordered by the integer value of the key, since
// map iteration order is unspecified. The result is never nil.
func Items(data any, itemKey string) []any {
	if data == nil {
		return []any{}
	}

	switch v := data.(type) {
	case map[string]any:
		if isIndexedMap(v) {
			return indexedItems(v, itemKey)
		}
		if inner, ok := v[itemKey]; ok {
			return []any{inner}
		}
		return []any{v}

	case []any:
		items := make([]any, 0, len(v))
		for _, entry := range v {
			if m, ok := entry.(map[string]any); ok {
				if inner, ok := m[itemKey]; ok {
					items = append(items, inner)
					continue
				}
			}
			items = append(items, entry)
		}
		return items
	}

	return []any{}
}

// isIndexedMap reports whether m is the numeric-string-keyed list encoding.
// A map qualifies when it has nothing besides digit keys and the "count"
// sentinel, and at least one of the two; a bare {"count": 0} is the empty
// list.
func isIndexedMap(m map[string]any) bool {
	digits := 0
	count := false
	for k := range m {
		if k == "count" {
			count = true
			continue
		}
		if _, err := strconv.Atoi(k); err != nil {
			return false
		}
		digits++
	}
	return digits > 0 || count
}

func indexedItems(m map[string]any, itemKey string) []any {
	idx := make([]int, 0, len(m))
	for k := range m {
		if k == "count" {
			continue
		}
		i, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		idx = append(idx, i)
	}
	sort.Ints(idx)

	items := make([]any, 0, len(idx))
	for _, i := range idx {
		entry := m[strconv.Itoa(i)]
		if em, ok := entry.(map[string]any); ok {
			if inner, ok := em[itemKey]; ok {
				items = append(items, inner)
				continue
			}
		}
		items = append(items, entry)
	}
	return items
}

// List normalizes the singleton-vs-list wrapping: a real array passes
// through, nil becomes an empty slice, and anything else is wrapped as a
// one-element slice. Yahoo freely serializes one-element collections as the
// bare element.
func List(v any) []any {
	switch l := v.(type) {
	case nil:
		return []any{}
	case []any:
		return l
	}
	return []any{v}
}

// Flatten collapses Yahoo's property-list shape, an array of single-key
// objects like [{"team_key": ...}, {"name": ...}], into one map. Later
// entries win on duplicate keys, matching the observed API behavior. Non-map
// entries are skipped. A plain object passes through as a shallow copy.
func Flatten(data any) map[string]any {
	out := make(map[string]any)

	switch v := data.(type) {
	case []any:
		for _, entry := range v {
			if m, ok := entry.(map[string]any); ok {
				for k, val := range m {
					out[k] = val
				}
			}
		}
	case map[string]any:
		for k, val := range v {
			out[k] = val
		}
	}

	return out
}

// Int coerces v to an int, returning def for nil, the false sentinel,
// empty/whitespace strings, and anything unparseable.
func Int(v any, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return def
		}
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		// Yahoo sends some integral fields as "1.0".
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return def
	case bool:
		return def
	}
	return def
}

// Float coerces v to a float64 with the same sentinel handling as Int.
func Float(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return def
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return def
	case bool:
		return def
	}
	return def
}

// Str coerces v to a string. Boolean false is the API's "absent" sentinel
// and coerces to def; true has no meaningful string form and does too.
func Str(v any, def string) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return def
	}
	return def
}

// Bool interprets Yahoo's flag encodings: real booleans, 0/1 numbers, and
// "0"/"1" strings.
func Bool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b == "1" || strings.EqualFold(b, "true")
	}
	return false
}
