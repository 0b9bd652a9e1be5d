package vrs

import (
	"encoding/json"

	"ga4gh/pkg/validation"
)

// Canonical serializes a validated value into the deterministic byte
// sequence consumed by external digest computation. The value is reified
// through its wire form, caller-assigned "_id" metadata is stripped at
// every nesting level, and object keys are emitted in lexicographic order
// (the ordering encoding/json guarantees for maps). Two structurally equal
// values always canonicalize to identical bytes.
func Canonical(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, validation.Formatf("", nil, "canonicalize: %v", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, validation.Formatf("", nil, "canonicalize: %v", err)
	}
	out, err := json.Marshal(stripVolatile(doc))
	if err != nil {
		return nil, validation.Formatf("", nil, "canonicalize: %v", err)
	}
	return out, nil
}

// stripVolatile removes caller-supplied identifier metadata recursively.
// Identifiers are derived from content, so including them would make the
// digest depend on itself.
func stripVolatile(doc any) any {
	switch typed := doc.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			if key == "_id" {
				continue
			}
			out[key] = stripVolatile(value)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, value := range typed {
			out[i] = stripVolatile(value)
		}
		return out
	default:
		return doc
	}
}
