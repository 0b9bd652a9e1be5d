package vrs

import "ga4gh/pkg/validation"

// Count is the closed union of count shapes used for copy numbers and
// repeat counts: an exact Number or a Range.
type Count interface {
	isCount()
	// Validate checks the count's own invariants.
	Validate(opts Options) error
}

// Number is an exact non-negative count.
type Number struct {
	Type  ObjectType `json:"type"`
	Value int64      `json:"value"`
}

// NewNumber validates and builds an exact count.
func NewNumber(value int64) (*Number, error) {
	n := &Number{Type: TypeNumber, Value: value}
	if err := n.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return n, nil
}

func (*Number) isCount() {}

// Validate enforces non-negativity.
func (n *Number) Validate(_ Options) error {
	if n.Type != TypeNumber {
		return validation.Discriminatorf("type", n.Type, "expected %q", TypeNumber)
	}
	if n.Value < 0 {
		return validation.Formatf("value", n.Value, "count must be non-negative")
	}
	return nil
}

// Range is a count bracket. Either bound may be nil, leaving that side
// unbounded; when both are concrete, Low <= High.
type Range struct {
	Type ObjectType `json:"type"`
	Low  *int64     `json:"low,omitempty"`
	High *int64     `json:"high,omitempty"`
}

// NewRange validates and builds a count range. Pass nil to leave a side
// unbounded.
func NewRange(low, high *int64) (*Range, error) {
	r := &Range{Type: TypeRange, Low: low, High: high}
	if err := r.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return r, nil
}

func (*Range) isCount() {}

// Validate enforces non-negative, ordered bounds.
func (r *Range) Validate(_ Options) error {
	if r.Type != TypeRange {
		return validation.Discriminatorf("type", r.Type, "expected %q", TypeRange)
	}
	if r.Low != nil && *r.Low < 0 {
		return validation.Formatf("low", *r.Low, "count bound must be non-negative")
	}
	if r.High != nil && *r.High < 0 {
		return validation.Formatf("high", *r.High, "count bound must be non-negative")
	}
	if r.Low != nil && r.High != nil && *r.Low > *r.High {
		return validation.Formatf("low", *r.Low, "range low %d must not exceed high %d", *r.Low, *r.High)
	}
	return nil
}
