package store

import (
	"fmt"

	"github.com/modu-ai/ngfs/internal/flags"
)

// FiltersKey is the document key holding the persisted flag map.
const FiltersKey = "filters"

// Filters reads the persisted flag map. The second result is false when no
// non-empty map is stored. Non-boolean entries are ignored.
func Filters(r Reader) (flags.Filters, bool) {
	raw, ok := r.Get(FiltersKey)
	if !ok || raw == nil {
		return nil, false
	}

	out := flags.Filters{}
	switch m := raw.(type) {
	case flags.Filters:
		for k, v := range m {
			out[k] = v
		}
	case map[string]bool:
		for k, v := range m {
			out[k] = v
		}
	case map[string]any:
		for k, v := range m {
			if b, ok := v.(bool); ok {
				out[k] = b
			}
		}
	default:
		return nil, false
	}

	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// String reads a string value, returning def when absent or not a string.
func String(r Reader, key, def string) string {
	v, ok := r.Get(key)
	if !ok {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// Bool reads a boolean value, returning def when absent or not a boolean.
func Bool(r Reader, key string, def bool) bool {
	v, ok := r.Get(key)
	if !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// Format renders a stored value for display.
func Format(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		return fmt.Sprintf("%d entries", len(t))
	case flags.Filters:
		return fmt.Sprintf("%d entries", len(t))
	default:
		return fmt.Sprintf("%v", t)
	}
}
