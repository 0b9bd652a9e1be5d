package vrs

import "ga4gh/pkg/validation"

// Variation is the union of "what changed" shapes. It is recursive:
// containers hold further variations either inline or as CURIE references.
// Containment is acyclic by construction, so ordinary value composition
// suffices.
type Variation interface {
	isVariation()
	// VariationID returns the object-level identifier, when assigned.
	VariationID() CURIE
	// Validate checks the variation and recurses through its members.
	// Nested member failures short-circuit and surface one path-wrapped
	// error.
	Validate(opts Options) error
}

// Allele is a variation at one location described by one sequence change.
// The state length is deliberately not checked against the interval length;
// that coupling belongs to external semantic validators.
type Allele struct {
	ID       CURIE              `json:"_id,omitempty"`
	Type     ObjectType         `json:"type"`
	Location LocationMember     `json:"location"`
	State    SequenceExpression `json:"state"`
}

// NewAllele validates and builds an Allele.
func NewAllele(location LocationMember, state SequenceExpression) (*Allele, error) {
	a := &Allele{Type: TypeAllele, Location: location, State: state}
	if err := a.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return a, nil
}

func (*Allele) isVariation() {}

// VariationID returns the assigned object identifier.
func (a *Allele) VariationID() CURIE {
	return a.ID
}

// Validate checks the discriminator first, then the location member and the
// state expression independently.
func (a *Allele) Validate(opts Options) error {
	if a.Type != TypeAllele {
		return validation.Discriminatorf("type", a.Type, "expected %q", TypeAllele)
	}
	if a.ID != "" {
		if err := a.ID.Validate(); err != nil {
			return validation.Wrap("_id", err)
		}
	}
	if err := a.Location.Validate(opts); err != nil {
		return validation.Wrap("location", err)
	}
	if a.State == nil {
		return validation.Formatf("state", nil, "state is required")
	}
	if _, legacy := a.State.(*SequenceState); legacy && !opts.AllowLegacy {
		return validation.Discriminatorf("state.type", TypeSequenceState, "legacy state shape requires AllowLegacy")
	}
	if err := a.State.Validate(opts); err != nil {
		return validation.Wrap("state", err)
	}
	return nil
}

// AlleleMember is the two-armed inline-or-reference haplotype member:
// exactly one of Allele and Ref is set.
type AlleleMember struct {
	Allele *Allele
	Ref    CURIE
}

// InlineAllele wraps an allele for inline membership.
func InlineAllele(a *Allele) AlleleMember {
	return AlleleMember{Allele: a}
}

// RefAllele wraps an identifier for by-reference membership.
func RefAllele(ref CURIE) AlleleMember {
	return AlleleMember{Ref: ref}
}

// IsRef reports whether the member carries a reference.
func (m AlleleMember) IsRef() bool {
	return m.Ref != ""
}

// Validate enforces the exactly-one arm rule and validates whichever arm is
// present.
func (m AlleleMember) Validate(opts Options) error {
	switch {
	case m.Allele == nil && m.Ref == "":
		return validation.MutualExclusionf("", "either an inline allele or an allele reference is required")
	case m.Allele != nil && m.Ref != "":
		return validation.MutualExclusionf("", "inline allele and allele reference are mutually exclusive")
	case m.Ref != "":
		return m.Ref.Validate()
	default:
		return m.Allele.Validate(opts)
	}
}

// Haplotype is an ordered group of co-occurring alleles. Member order is
// caller-significant semantic content and is never canonicalized.
type Haplotype struct {
	ID      CURIE          `json:"_id,omitempty"`
	Type    ObjectType     `json:"type"`
	Members []AlleleMember `json:"members"`
}

// NewHaplotype validates and builds a Haplotype.
func NewHaplotype(members []AlleleMember) (*Haplotype, error) {
	h := &Haplotype{Type: TypeHaplotype, Members: members}
	if err := h.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return h, nil
}

func (*Haplotype) isVariation() {}

// VariationID returns the assigned object identifier.
func (h *Haplotype) VariationID() CURIE {
	return h.ID
}

// Validate rejects empty member lists and validates each member in order.
func (h *Haplotype) Validate(opts Options) error {
	if h.Type != TypeHaplotype {
		return validation.Discriminatorf("type", h.Type, "expected %q", TypeHaplotype)
	}
	if h.ID != "" {
		if err := h.ID.Validate(); err != nil {
			return validation.Wrap("_id", err)
		}
	}
	if len(h.Members) == 0 {
		return validation.EmptyCollectionf("members", "haplotype requires at least one member")
	}
	for i, member := range h.Members {
		if err := member.Validate(opts); err != nil {
			return validation.Wrap(validation.Index("members", i), err)
		}
	}
	return nil
}

// Subject is the three-armed copy number subject: an inline Location, an
// inline Variation, or a CURIE reference. Exactly one arm is set.
type Subject struct {
	Location  Location
	Variation Variation
	Ref       CURIE
}

// LocationSubject wraps a location as a copy number subject.
func LocationSubject(loc Location) Subject {
	return Subject{Location: loc}
}

// VariationSubject wraps a variation as a copy number subject.
func VariationSubject(v Variation) Subject {
	return Subject{Variation: v}
}

// RefSubject wraps an identifier as a copy number subject.
func RefSubject(ref CURIE) Subject {
	return Subject{Ref: ref}
}

// IsRef reports whether the subject is carried by reference.
func (s Subject) IsRef() bool {
	return s.Ref != ""
}

// Validate enforces the exactly-one arm rule and validates whichever arm is
// present.
func (s Subject) Validate(opts Options) error {
	arms := 0
	if s.Location != nil {
		arms++
	}
	if s.Variation != nil {
		arms++
	}
	if s.Ref != "" {
		arms++
	}
	switch arms {
	case 0:
		return validation.MutualExclusionf("", "a location, variation, or reference subject is required")
	case 1:
	default:
		return validation.MutualExclusionf("", "subject arms are mutually exclusive")
	}
	switch {
	case s.Ref != "":
		return s.Ref.Validate()
	case s.Location != nil:
		if _, legacy := s.Location.(*ChromosomeLocation); legacy && !opts.AllowLegacy {
			return validation.Discriminatorf("type", TypeChromosomeLocation, "legacy location shape requires AllowLegacy")
		}
		return s.Location.Validate(opts)
	default:
		return s.Variation.Validate(opts)
	}
}

// CopyNumber assesses the count of a subject within a genome.
type CopyNumber struct {
	ID      CURIE      `json:"_id,omitempty"`
	Type    ObjectType `json:"type"`
	Subject Subject    `json:"subject"`
	Copies  Count      `json:"copies"`
}

// NewCopyNumber validates and builds a CopyNumber.
func NewCopyNumber(subject Subject, copies Count) (*CopyNumber, error) {
	cn := &CopyNumber{Type: TypeCopyNumber, Subject: subject, Copies: copies}
	if err := cn.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return cn, nil
}

func (*CopyNumber) isVariation() {}

// VariationID returns the assigned object identifier.
func (cn *CopyNumber) VariationID() CURIE {
	return cn.ID
}

// Validate checks the subject and the copies count independently.
func (cn *CopyNumber) Validate(opts Options) error {
	if cn.Type != TypeCopyNumber {
		return validation.Discriminatorf("type", cn.Type, "expected %q", TypeCopyNumber)
	}
	if cn.ID != "" {
		if err := cn.ID.Validate(); err != nil {
			return validation.Wrap("_id", err)
		}
	}
	if err := cn.Subject.Validate(opts); err != nil {
		return validation.Wrap("subject", err)
	}
	if cn.Copies == nil {
		return validation.Formatf("copies", nil, "copies is required")
	}
	if err := cn.Copies.Validate(opts); err != nil {
		return validation.Wrap("copies", err)
	}
	return nil
}

// VariationMember is the two-armed inline-or-reference variation set
// member: exactly one of Variation and Ref is set.
type VariationMember struct {
	Variation Variation
	Ref       CURIE
}

// InlineVariation wraps a variation for inline membership.
func InlineVariation(v Variation) VariationMember {
	return VariationMember{Variation: v}
}

// RefVariation wraps an identifier for by-reference membership.
func RefVariation(ref CURIE) VariationMember {
	return VariationMember{Ref: ref}
}

// IsRef reports whether the member carries a reference.
func (m VariationMember) IsRef() bool {
	return m.Ref != ""
}

// Validate enforces the exactly-one arm rule and validates whichever arm is
// present.
func (m VariationMember) Validate(opts Options) error {
	switch {
	case m.Variation == nil && m.Ref == "":
		return validation.MutualExclusionf("", "either an inline variation or a variation reference is required")
	case m.Variation != nil && m.Ref != "":
		return validation.MutualExclusionf("", "inline variation and variation reference are mutually exclusive")
	case m.Ref != "":
		return m.Ref.Validate()
	default:
		return m.Variation.Validate(opts)
	}
}

// VariationSet groups variations without ordering or duplicate-identity
// guarantees: members are validated as a multiset even though the wire form
// preserves the given order.
type VariationSet struct {
	ID      CURIE             `json:"_id,omitempty"`
	Type    ObjectType        `json:"type"`
	Members []VariationMember `json:"members"`
}

// NewVariationSet validates and builds a VariationSet.
func NewVariationSet(members []VariationMember) (*VariationSet, error) {
	vs := &VariationSet{Type: TypeVariationSet, Members: members}
	if err := vs.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return vs, nil
}

func (*VariationSet) isVariation() {}

// VariationID returns the assigned object identifier.
func (vs *VariationSet) VariationID() CURIE {
	return vs.ID
}

// Validate validates each member independently. Duplicates are permitted;
// the set is a grouping construct, not a mathematical set.
func (vs *VariationSet) Validate(opts Options) error {
	if vs.Type != TypeVariationSet {
		return validation.Discriminatorf("type", vs.Type, "expected %q", TypeVariationSet)
	}
	if vs.ID != "" {
		if err := vs.ID.Validate(); err != nil {
			return validation.Wrap("_id", err)
		}
	}
	for i, member := range vs.Members {
		if err := member.Validate(opts); err != nil {
			return validation.Wrap(validation.Index("members", i), err)
		}
	}
	return nil
}

// Text is the free-form fallback variation, used when no structured
// representation is available. It carries no constraints beyond a non-empty
// definition.
type Text struct {
	ID         CURIE      `json:"_id,omitempty"`
	Type       ObjectType `json:"type"`
	Definition string     `json:"definition"`
}

// NewText validates and builds a Text variation.
func NewText(definition string) (*Text, error) {
	t := &Text{Type: TypeText, Definition: definition}
	if err := t.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return t, nil
}

func (*Text) isVariation() {}

// VariationID returns the assigned object identifier.
func (t *Text) VariationID() CURIE {
	return t.ID
}

// Validate rejects empty definitions.
func (t *Text) Validate(_ Options) error {
	if t.Type != TypeText {
		return validation.Discriminatorf("type", t.Type, "expected %q", TypeText)
	}
	if t.ID != "" {
		if err := t.ID.Validate(); err != nil {
			return validation.Wrap("_id", err)
		}
	}
	if t.Definition == "" {
		return validation.Formatf("definition", "", "text definition must not be empty")
	}
	return nil
}
