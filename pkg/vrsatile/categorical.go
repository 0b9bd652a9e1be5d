package vrsatile

import (
	"encoding/json"

	"ga4gh/pkg/validation"
	"ga4gh/pkg/vrs"
)

// CategoricalType is the discriminator carried by categorical variation
// kinds.
type CategoricalType string

// Categorical variation discriminators.
const (
	TypeCanonicalVariation CategoricalType = "CanonicalVariation"
	TypeComplexVariation   CategoricalType = "ComplexVariation"
)

// Operator combines the operands of a complex variation.
type Operator string

// Recognized complex variation operators.
const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

// CategoricalVariation is the union of categorically-defined variation
// domains: a domain individual variation instances may be members of.
type CategoricalVariation interface {
	isCategoricalVariation()
	// Validate checks the categorical variation and its operands.
	Validate(opts vrs.Options) error
}

// CanonicalVariation is a categorical domain characterized by one
// representative variation to which members lift over, project, or align.
// Complement inverts the membership test.
type CanonicalVariation struct {
	ID         vrs.CURIE       `json:"_id,omitempty"`
	Type       CategoricalType `json:"type"`
	Complement bool            `json:"complement"`
	Variation  vrs.Variation   `json:"variation,omitempty"`
}

// NewCanonicalVariation validates and builds a CanonicalVariation.
// variation may be nil for a domain defined only by complementation.
func NewCanonicalVariation(variation vrs.Variation, complement bool) (*CanonicalVariation, error) {
	cv := &CanonicalVariation{Type: TypeCanonicalVariation, Complement: complement, Variation: variation}
	if err := cv.Validate(vrs.DefaultOptions); err != nil {
		return nil, err
	}
	return cv, nil
}

func (*CanonicalVariation) isCategoricalVariation() {}

// Validate checks the discriminator, identifier, and wrapped variation.
func (cv *CanonicalVariation) Validate(opts vrs.Options) error {
	if cv.Type != TypeCanonicalVariation {
		return validation.Discriminatorf("type", cv.Type, "expected %q", TypeCanonicalVariation)
	}
	if cv.ID != "" {
		if err := cv.ID.Validate(); err != nil {
			return validation.Wrap("_id", err)
		}
	}
	if cv.Variation != nil {
		if err := cv.Variation.Validate(opts); err != nil {
			return validation.Wrap("variation", err)
		}
	}
	return nil
}

// ComplexVariation is a categorical domain jointly characterized by two or
// more other categorical domains.
type ComplexVariation struct {
	ID         vrs.CURIE              `json:"_id,omitempty"`
	Type       CategoricalType        `json:"type"`
	Complement bool                   `json:"complement"`
	Operands   []CategoricalVariation `json:"operands"`
	Operator   Operator               `json:"operator"`
}

// NewComplexVariation validates and builds a ComplexVariation.
func NewComplexVariation(operands []CategoricalVariation, operator Operator) (*ComplexVariation, error) {
	cv := &ComplexVariation{Type: TypeComplexVariation, Operands: operands, Operator: operator}
	if err := cv.Validate(vrs.DefaultOptions); err != nil {
		return nil, err
	}
	return cv, nil
}

func (*ComplexVariation) isCategoricalVariation() {}

// Validate requires a recognized operator and at least two operands, each
// validated in order.
func (cv *ComplexVariation) Validate(opts vrs.Options) error {
	if cv.Type != TypeComplexVariation {
		return validation.Discriminatorf("type", cv.Type, "expected %q", TypeComplexVariation)
	}
	if cv.ID != "" {
		if err := cv.ID.Validate(); err != nil {
			return validation.Wrap("_id", err)
		}
	}
	if cv.Operator != OperatorAnd && cv.Operator != OperatorOr {
		return validation.Discriminatorf("operator", cv.Operator, "operator must be AND or OR")
	}
	if len(cv.Operands) < 2 {
		return validation.EmptyCollectionf("operands", "complex variation requires at least two operands")
	}
	for i, operand := range cv.Operands {
		if operand == nil {
			return validation.Formatf(validation.Index("operands", i), nil, "operand is required")
		}
		if err := operand.Validate(opts); err != nil {
			return validation.Wrap(validation.Index("operands", i), err)
		}
	}
	return nil
}

// ParseCategoricalVariation decodes one categorical variation of either
// kind, dispatching on the discriminator first.
func ParseCategoricalVariation(data []byte, opts vrs.Options) (CategoricalVariation, error) {
	var probe struct {
		Type CategoricalType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, validation.Formatf("", string(data), "%v", err)
	}
	switch probe.Type {
	case TypeCanonicalVariation:
		return parseCanonicalVariation(data, opts)
	case TypeComplexVariation:
		return parseComplexVariation(data, opts)
	default:
		return nil, validation.Discriminatorf("type", probe.Type, "unknown categorical variation type")
	}
}

func parseCanonicalVariation(data []byte, opts vrs.Options) (*CanonicalVariation, error) {
	var wire struct {
		ID         vrs.CURIE       `json:"_id"`
		Type       CategoricalType `json:"type"`
		Complement bool            `json:"complement"`
		Variation  json.RawMessage `json:"variation"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	cv := &CanonicalVariation{ID: wire.ID, Type: wire.Type, Complement: wire.Complement}
	if len(wire.Variation) > 0 {
		variation, err := vrs.ParseVariation(wire.Variation, opts)
		if err != nil {
			return nil, validation.Wrap("variation", err)
		}
		cv.Variation = variation
	}
	if err := cv.Validate(opts); err != nil {
		return nil, err
	}
	return cv, nil
}

func parseComplexVariation(data []byte, opts vrs.Options) (*ComplexVariation, error) {
	var wire struct {
		ID         vrs.CURIE         `json:"_id"`
		Type       CategoricalType   `json:"type"`
		Complement bool              `json:"complement"`
		Operands   []json.RawMessage `json:"operands"`
		Operator   Operator          `json:"operator"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	cv := &ComplexVariation{ID: wire.ID, Type: wire.Type, Complement: wire.Complement, Operator: wire.Operator}
	for i, raw := range wire.Operands {
		operand, err := ParseCategoricalVariation(raw, opts)
		if err != nil {
			return nil, validation.Wrap(validation.Index("operands", i), err)
		}
		cv.Operands = append(cv.Operands, operand)
	}
	if err := cv.Validate(opts); err != nil {
		return nil, err
	}
	return cv, nil
}

// UnmarshalJSON decodes a canonical variation under vrs.DefaultOptions.
func (cv *CanonicalVariation) UnmarshalJSON(data []byte) error {
	parsed, err := parseCanonicalVariation(data, vrs.DefaultOptions)
	if err != nil {
		return err
	}
	*cv = *parsed
	return nil
}

// UnmarshalJSON decodes a complex variation under vrs.DefaultOptions.
func (cv *ComplexVariation) UnmarshalJSON(data []byte) error {
	parsed, err := parseComplexVariation(data, vrs.DefaultOptions)
	if err != nil {
		return err
	}
	*cv = *parsed
	return nil
}
