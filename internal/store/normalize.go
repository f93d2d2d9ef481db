package store

import "encoding/json"

// Normalize rebuilds a store value converting every json.Number wrapper
// into a native numeric type: whole numbers become int64, fractional
// numbers become float64.  Lists and maps are reconstructed recursively
// with order and keys preserved; every other scalar passes through
// unchanged.  Applying Normalize to an already-normalized value returns
// an equal value, and the walk terminates on any acyclic input.
func Normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		// Out-of-range numeric literal; keep the textual form.
		return t.String()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Normalize(e)
		}
		return out
	default:
		return v
	}
}

// NormalizeItems applies Normalize to each item of a query result.
func NormalizeItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = Normalize(it).(map[string]any)
	}
	return out
}
