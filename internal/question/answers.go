package question

import (
	"fmt"
	"sort"
	"strconv"
)

// Stored answers come back from the transport as decoded JSON (maps,
// slices, strings). These helpers coerce the loosely typed shapes the
// review path has to tolerate.

// asString renders a submitted scalar for display. Item objects collapse
// to their text field.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		if text, ok := t["text"].(string); ok {
			return text
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// asOrderedStrings flattens an answer into an ordered string list.
// Sequences keep their order; index-keyed maps (a legacy submission shape)
// are ordered by numeric key.
func asOrderedStrings(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, len(t))
		for i, e := range t {
			out[i] = asString(e)
		}
		return out, true
	case map[string]any:
		keys := sortedIndexKeys(t)
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			out = append(out, asString(t[k]))
		}
		return out, true
	case map[string]string:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sortIndexKeys(keys)
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			out = append(out, t[k])
		}
		return out, true
	}
	return nil, false
}

// asItemTexts extracts the item texts from one category's value in a
// categorize answer.
func asItemTexts(v any) ([]string, bool) {
	seq, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, len(seq))
	for i, e := range seq {
		out[i] = asString(e)
	}
	return out, true
}

func sortedIndexKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortIndexKeys(keys)
	return keys
}

// sortIndexKeys orders keys numerically where possible, so "10" sorts
// after "9".
func sortIndexKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr == nil {
			return true
		}
		if berr == nil {
			return false
		}
		return keys[i] < keys[j]
	})
}
