package vrsatile

import "ga4gh/pkg/validation"

// TypeExpression is the fixed discriminator value carried by Expression.
const TypeExpression = "Expression"

// Syntax tags the nomenclature an Expression value is written in. The set
// is closed; producers using another dialect must fall back to extensions.
type Syntax string

// Recognized expression syntaxes.
const (
	SyntaxHGVSc  Syntax = "hgvs.c"
	SyntaxHGVSg  Syntax = "hgvs.g"
	SyntaxHGVSm  Syntax = "hgvs.m"
	SyntaxHGVSn  Syntax = "hgvs.n"
	SyntaxHGVSp  Syntax = "hgvs.p"
	SyntaxSPDI   Syntax = "spdi"
	SyntaxGnomad Syntax = "gnomad"
	SyntaxISCN   Syntax = "iscn"
)

var knownSyntaxes = map[Syntax]struct{}{
	SyntaxHGVSc:  {},
	SyntaxHGVSg:  {},
	SyntaxHGVSm:  {},
	SyntaxHGVSn:  {},
	SyntaxHGVSp:  {},
	SyntaxSPDI:   {},
	SyntaxGnomad: {},
	SyntaxISCN:   {},
}

// IsKnownSyntax reports whether the tag belongs to the closed syntax set.
func IsKnownSyntax(s Syntax) bool {
	_, ok := knownSyntaxes[s]
	return ok
}

// Expression is a textual representation of a variation in a declared
// nomenclature, e.g. an HGVS or SPDI string. Equivalent expressions travel
// alongside a variation descriptor; the model never parses the value.
type Expression struct {
	Type          string `json:"type"`
	Syntax        Syntax `json:"syntax"`
	Value         string `json:"value"`
	SyntaxVersion string `json:"syntax_version,omitempty"`
}

// NewExpression validates and builds an Expression. syntaxVersion may be
// empty; no format is enforced on it.
func NewExpression(syntax Syntax, value, syntaxVersion string) (*Expression, error) {
	e := &Expression{Type: TypeExpression, Syntax: syntax, Value: value, SyntaxVersion: syntaxVersion}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the discriminator, the closed syntax set, and the
// non-empty value.
func (e *Expression) Validate() error {
	if e.Type != TypeExpression {
		return validation.Discriminatorf("type", e.Type, "expected %q", TypeExpression)
	}
	if !IsKnownSyntax(e.Syntax) {
		return validation.Discriminatorf("syntax", e.Syntax, "unknown expression syntax")
	}
	if e.Value == "" {
		return validation.Formatf("value", "", "expression value must not be empty")
	}
	return nil
}
