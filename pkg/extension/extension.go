// Package extension provides the open-ended typed value slot used by value
// object descriptors. Content providers attach attributes that are not
// natively understood by the core model; this package codifies the allowed
// value shapes and supplies helpers to validate, clone, and marshal payloads
// without leaking shared state between callers.
package extension

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"ga4gh/pkg/validation"
)

// TypeExtension is the fixed discriminator value carried by Extension.
const TypeExtension = "Extension"

// ErrUnsupportedValue indicates a payload used a shape outside the closed
// value union (string, number, boolean, list, object).
var ErrUnsupportedValue = errors.New("extension: unsupported value shape")

// Value is the closed recursive union of JSON-compatible payload shapes.
// It is structurally separate from the domain entities so new shapes never
// touch domain validation.
type Value interface {
	isValue()
}

// String is a textual payload value.
type String string

// Number is a numeric payload value. JSON does not distinguish integral
// from fractional numbers, so neither does the union.
type Number float64

// Bool is a boolean payload value.
type Bool bool

// List is an ordered sequence of payload values.
type List []Value

// Object is a mapping of names to payload values.
type Object map[string]Value

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (List) isValue()   {}
func (Object) isValue() {}

// FromRaw converts a decoded JSON value into a typed Value, deep-copying
// container shapes so the result never aliases caller state. Shapes outside
// the union are rejected with ErrUnsupportedValue.
func FromRaw(raw any) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return String(typed), nil
	case bool:
		return Bool(typed), nil
	case float64:
		return Number(typed), nil
	case int:
		return Number(typed), nil
	case int64:
		return Number(typed), nil
	case json.Number:
		f, err := typed.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, typed)
		}
		return Number(f), nil
	case []any:
		list := make(List, len(typed))
		for i, item := range typed {
			value, err := FromRaw(item)
			if err != nil {
				return nil, err
			}
			list[i] = value
		}
		return list, nil
	case map[string]any:
		object := make(Object, len(typed))
		for key, item := range typed {
			value, err := FromRaw(item)
			if err != nil {
				return nil, err
			}
			object[key] = value
		}
		return object, nil
	case Value:
		return Clone(typed), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

// Raw returns the JSON-compatible representation of a value as a deep copy.
func Raw(v Value) any {
	switch typed := v.(type) {
	case nil:
		return nil
	case String:
		return string(typed)
	case Number:
		return float64(typed)
	case Bool:
		return bool(typed)
	case List:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = Raw(item)
		}
		return out
	case Object:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = Raw(item)
		}
		return out
	default:
		return nil
	}
}

// Clone deep-copies a value, shielding containers from external mutation.
func Clone(v Value) Value {
	switch typed := v.(type) {
	case List:
		out := make(List, len(typed))
		for i, item := range typed {
			out[i] = Clone(item)
		}
		return out
	case Object:
		out := make(Object, len(typed))
		for key, item := range typed {
			out[key] = Clone(item)
		}
		return out
	default:
		return v
	}
}

// Keys returns the sorted key set of an object value.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Extension pairs a provider-chosen name with a typed value. Extensions are
// not natively understood by the core model but travel with descriptors for
// pre-negotiated exchange of attributes.
type Extension struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value Value  `json:"value,omitempty"`
}

// New validates and builds an Extension. The name must be non-empty; raw
// accepts any JSON-compatible shape and is converted through FromRaw.
func New(name string, raw any) (*Extension, error) {
	if name == "" {
		return nil, validation.Formatf("name", name, "extension name must not be empty")
	}
	value, err := FromRaw(raw)
	if err != nil {
		return nil, validation.Formatf("value", raw, "%v", err)
	}
	return &Extension{Type: TypeExtension, Name: name, Value: value}, nil
}

// Validate checks the discriminator, name, and value shape.
func (e *Extension) Validate() error {
	if e.Type != TypeExtension {
		return validation.Discriminatorf("type", e.Type, "expected %q", TypeExtension)
	}
	if e.Name == "" {
		return validation.Formatf("name", e.Name, "extension name must not be empty")
	}
	return nil
}

type extensionWire struct {
	Type  string          `json:"type"`
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON emits the fixed wire shape with the raw payload form.
func (e Extension) MarshalJSON() ([]byte, error) {
	type payload struct {
		Type  string `json:"type"`
		Name  string `json:"name"`
		Value any    `json:"value,omitempty"`
	}
	return json.Marshal(payload{Type: e.Type, Name: e.Name, Value: Raw(e.Value)})
}

// UnmarshalJSON validates the discriminator and converts the payload into
// the typed value union.
func (e *Extension) UnmarshalJSON(data []byte) error {
	var wire extensionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Type != "" && wire.Type != TypeExtension {
		return validation.Discriminatorf("type", wire.Type, "expected %q", TypeExtension)
	}
	var raw any
	if len(wire.Value) > 0 {
		if err := json.Unmarshal(wire.Value, &raw); err != nil {
			return err
		}
	}
	value, err := FromRaw(raw)
	if err != nil {
		return validation.Formatf("value", raw, "%v", err)
	}
	*e = Extension{Type: TypeExtension, Name: wire.Name, Value: value}
	return nil
}
