package normalize

// listKeys are probed in order when a list response arrives wrapped in an
// object. "result" is a last resort after the others because some endpoints
// use it for non-list payloads.
var listKeys = []string{"converts", "data", "results", "items"}

// ExtractList returns the array carried by a list response. A payload that
// is already an array is returned as-is. When nothing recognizable is
// found the result is an empty slice: a malformed list response degrades
// to "no items" rather than an error surfaced to the user.
func ExtractList(payload any) []any {
	if arr, ok := payload.([]any); ok {
		return arr
	}

	root, ok := payload.(map[string]any)
	if !ok {
		return []any{}
	}

	for _, key := range listKeys {
		if arr, ok := root[key].([]any); ok {
			return arr
		}
	}
	if arr, ok := root["result"].([]any); ok {
		return arr
	}
	return []any{}
}

// ExtractListAs extracts the list and rebinds each element into T,
// skipping elements that do not decode.
func ExtractListAs[T any](payload any) []T {
	raw := ExtractList(payload)
	out := make([]T, 0, len(raw))
	for _, item := range raw {
		var v T
		if err := Rebind(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
