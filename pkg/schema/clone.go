package schema

import "maps"

// CloneValue deep copies JSON-like values (maps, slices and scalars). Unknown
// reference types are returned as-is.
func CloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = CloneValue(v)
		}
		return clone
	case UI:
		return typed.Clone()
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = CloneValue(v)
		}
		return clone
	case []string:
		return append([]string(nil), typed...)
	case map[string]string:
		return maps.Clone(typed)
	default:
		return typed
	}
}

func cloneSlice(values []any) []any {
	if values == nil {
		return nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = CloneValue(v)
	}
	return out
}
