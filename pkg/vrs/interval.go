package vrs

import (
	"regexp"

	"ga4gh/pkg/validation"
)

// Interval is the closed union of sequence interval shapes. Bounds count
// residues using interbase coordinates, so start == end denotes a
// zero-length insertion point.
type Interval interface {
	isInterval()
	// Validate checks the interval's own invariants.
	Validate(opts Options) error
}

// SequenceInterval is the current interval shape. A nil bound is open: the
// position is unknown or unbounded on that side. When both bounds are
// concrete, Start <= End.
type SequenceInterval struct {
	Type  ObjectType `json:"type"`
	Start *int64     `json:"start,omitempty"`
	End   *int64     `json:"end,omitempty"`
}

// NewSequenceInterval validates and builds a SequenceInterval. Pass nil for
// an open bound.
func NewSequenceInterval(start, end *int64) (*SequenceInterval, error) {
	iv := &SequenceInterval{Type: TypeSequenceInterval, Start: start, End: end}
	if err := iv.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return iv, nil
}

// Bound is a convenience for taking the address of a concrete bound value.
func Bound(v int64) *int64 {
	return &v
}

func (*SequenceInterval) isInterval() {}

// Validate enforces non-negative bounds and ordering.
func (iv *SequenceInterval) Validate(_ Options) error {
	if iv.Type != TypeSequenceInterval {
		return validation.Discriminatorf("type", iv.Type, "expected %q", TypeSequenceInterval)
	}
	if iv.Start != nil && *iv.Start < 0 {
		return validation.Formatf("start", *iv.Start, "interval bound must be non-negative")
	}
	if iv.End != nil && *iv.End < 0 {
		return validation.Formatf("end", *iv.End, "interval bound must be non-negative")
	}
	if iv.Start != nil && iv.End != nil && *iv.Start > *iv.End {
		return validation.Formatf("start", *iv.Start, "interval start %d must not exceed end %d", *iv.Start, *iv.End)
	}
	return nil
}

// SimpleInterval is the deprecated fixed-bound interval shape. Parsers
// accept it only under Options.AllowLegacy; constructing one directly is
// itself the opt-in.
type SimpleInterval struct {
	Type  ObjectType `json:"type"`
	Start int64      `json:"start"`
	End   int64      `json:"end"`
}

// NewSimpleInterval validates and builds the legacy fixed-bound interval.
func NewSimpleInterval(start, end int64) (*SimpleInterval, error) {
	iv := &SimpleInterval{Type: TypeSimpleInterval, Start: start, End: end}
	if err := iv.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return iv, nil
}

func (*SimpleInterval) isInterval() {}

// Validate enforces non-negative bounds and ordering.
func (iv *SimpleInterval) Validate(_ Options) error {
	if iv.Type != TypeSimpleInterval {
		return validation.Discriminatorf("type", iv.Type, "expected %q", TypeSimpleInterval)
	}
	if iv.Start < 0 {
		return validation.Formatf("start", iv.Start, "interval bound must be non-negative")
	}
	if iv.End < 0 {
		return validation.Formatf("end", iv.End, "interval bound must be non-negative")
	}
	if iv.Start > iv.End {
		return validation.Formatf("start", iv.Start, "interval start %d must not exceed end %d", iv.Start, iv.End)
	}
	return nil
}

// cytobandPattern matches chromosome band coordinates, e.g. "q13.32".
var cytobandPattern = regexp.MustCompile(`^cen|[pq](ter|([1-9][0-9]*(\.[1-9][0-9]*)?))$`)

// CytobandInterval addresses a chromosomal region by named bands. It is
// carried only by the legacy ChromosomeLocation.
type CytobandInterval struct {
	Type  ObjectType `json:"type"`
	Start string     `json:"start"`
	End   string     `json:"end"`
}

// NewCytobandInterval validates and builds a CytobandInterval.
func NewCytobandInterval(start, end string) (*CytobandInterval, error) {
	iv := &CytobandInterval{Type: TypeCytobandInterval, Start: start, End: end}
	if err := iv.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return iv, nil
}

func (*CytobandInterval) isInterval() {}

// Validate enforces the cytoband grammar on both bounds.
func (iv *CytobandInterval) Validate(_ Options) error {
	if iv.Type != TypeCytobandInterval {
		return validation.Discriminatorf("type", iv.Type, "expected %q", TypeCytobandInterval)
	}
	if !cytobandPattern.MatchString(iv.Start) {
		return validation.Formatf("start", iv.Start, "not a valid cytoband coordinate")
	}
	if !cytobandPattern.MatchString(iv.End) {
		return validation.Formatf("end", iv.End, "not a valid cytoband coordinate")
	}
	return nil
}
