package vrs

import "ga4gh/pkg/validation"

// SequenceExpression is the union of sequence change descriptions: a
// literal residue string, a sequence derived from another location, or a
// repeated subsequence.
type SequenceExpression interface {
	isSequenceExpression()
	// Validate checks the expression and its nested members.
	Validate(opts Options) error
}

// LiteralSequenceExpression holds an explicit residue sequence.
type LiteralSequenceExpression struct {
	Type     ObjectType `json:"type"`
	Sequence Sequence   `json:"sequence"`
}

// NewLiteralSequenceExpression validates and builds a literal expression.
func NewLiteralSequenceExpression(sequence Sequence) (*LiteralSequenceExpression, error) {
	e := &LiteralSequenceExpression{Type: TypeLiteralSequenceExpression, Sequence: sequence}
	if err := e.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return e, nil
}

func (*LiteralSequenceExpression) isSequenceExpression() {}

// Validate rejects empty sequences and, under strict mode, non-IUPAC
// characters.
func (e *LiteralSequenceExpression) Validate(opts Options) error {
	if e.Type != TypeLiteralSequenceExpression {
		return validation.Discriminatorf("type", e.Type, "expected %q", TypeLiteralSequenceExpression)
	}
	if e.Sequence == "" {
		return validation.Formatf("sequence", "", "literal sequence must not be empty")
	}
	if err := e.Sequence.Validate(opts); err != nil {
		return validation.Wrap("sequence", err)
	}
	return nil
}

// DerivedSequenceExpression references the sequence at another location,
// optionally reverse-complemented. It never carries a literal sequence.
type DerivedSequenceExpression struct {
	Type              ObjectType        `json:"type"`
	Location          *SequenceLocation `json:"location"`
	ReverseComplement bool              `json:"reverse_complement"`
}

// NewDerivedSequenceExpression validates and builds a derived expression.
func NewDerivedSequenceExpression(location *SequenceLocation, reverseComplement bool) (*DerivedSequenceExpression, error) {
	e := &DerivedSequenceExpression{
		Type:              TypeDerivedSequenceExpression,
		Location:          location,
		ReverseComplement: reverseComplement,
	}
	if err := e.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return e, nil
}

func (*DerivedSequenceExpression) isSequenceExpression() {}

// Validate requires a valid source location.
func (e *DerivedSequenceExpression) Validate(opts Options) error {
	if e.Type != TypeDerivedSequenceExpression {
		return validation.Discriminatorf("type", e.Type, "expected %q", TypeDerivedSequenceExpression)
	}
	if e.Location == nil {
		return validation.Formatf("location", nil, "source location is required")
	}
	if err := e.Location.Validate(opts); err != nil {
		return validation.Wrap("location", err)
	}
	return nil
}

// RepeatedSequenceExpression describes a subsequence repeated a counted
// number of times. Nesting one RepeatedSequenceExpression inside another is
// permitted by the grammar though discouraged.
type RepeatedSequenceExpression struct {
	Type    ObjectType         `json:"type"`
	SeqExpr SequenceExpression `json:"seq_expr"`
	Count   Count              `json:"count"`
}

// NewRepeatedSequenceExpression validates and builds a repeated expression.
func NewRepeatedSequenceExpression(seqExpr SequenceExpression, count Count) (*RepeatedSequenceExpression, error) {
	e := &RepeatedSequenceExpression{Type: TypeRepeatedSequenceExpression, SeqExpr: seqExpr, Count: count}
	if err := e.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return e, nil
}

func (*RepeatedSequenceExpression) isSequenceExpression() {}

// Validate requires a nested expression and a non-negative count.
func (e *RepeatedSequenceExpression) Validate(opts Options) error {
	if e.Type != TypeRepeatedSequenceExpression {
		return validation.Discriminatorf("type", e.Type, "expected %q", TypeRepeatedSequenceExpression)
	}
	if e.SeqExpr == nil {
		return validation.Formatf("seq_expr", nil, "nested sequence expression is required")
	}
	if err := e.SeqExpr.Validate(opts); err != nil {
		return validation.Wrap("seq_expr", err)
	}
	if e.Count == nil {
		return validation.Formatf("count", nil, "repeat count is required")
	}
	if err := e.Count.Validate(opts); err != nil {
		return validation.Wrap("count", err)
	}
	return nil
}

// SequenceState is the deprecated literal state shape used by older allele
// producers. Parsers accept it only under Options.AllowLegacy.
type SequenceState struct {
	Type     ObjectType `json:"type"`
	Sequence Sequence   `json:"sequence"`
}

// NewSequenceState validates and builds the legacy state shape.
func NewSequenceState(sequence Sequence) (*SequenceState, error) {
	s := &SequenceState{Type: TypeSequenceState, Sequence: sequence}
	if err := s.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return s, nil
}

func (*SequenceState) isSequenceExpression() {}

// Validate rejects empty sequences and, under strict mode, non-IUPAC
// characters.
func (s *SequenceState) Validate(opts Options) error {
	if s.Type != TypeSequenceState {
		return validation.Discriminatorf("type", s.Type, "expected %q", TypeSequenceState)
	}
	if s.Sequence == "" {
		return validation.Formatf("sequence", "", "state sequence must not be empty")
	}
	if err := s.Sequence.Validate(opts); err != nil {
		return validation.Wrap("sequence", err)
	}
	return nil
}
