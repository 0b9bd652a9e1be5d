package vrsatile

import (
	"encoding/json"

	"ga4gh/pkg/validation"
	"ga4gh/pkg/vrs"
)

// MoleculeContext tags the molecular frame a described variation applies
// to.
type MoleculeContext string

// Recognized molecule contexts.
const (
	MoleculeContextGenomic    MoleculeContext = "genomic"
	MoleculeContextTranscript MoleculeContext = "transcript"
	MoleculeContextProtein    MoleculeContext = "protein"
)

// IsKnownMoleculeContext reports whether the tag belongs to the closed
// molecule context set.
func IsKnownMoleculeContext(mc MoleculeContext) bool {
	switch mc {
	case MoleculeContextGenomic, MoleculeContextTranscript, MoleculeContextProtein:
		return true
	}
	return false
}

// GeneContext is the two-armed inline-or-reference gene context of a
// variation descriptor: exactly one of Descriptor and Ref is set.
type GeneContext struct {
	Descriptor *GeneDescriptor
	Ref        vrs.CURIE
}

// InlineGeneContext wraps a gene descriptor for inline use.
func InlineGeneContext(d *GeneDescriptor) GeneContext {
	return GeneContext{Descriptor: d}
}

// RefGeneContext wraps an identifier for by-reference use.
func RefGeneContext(ref vrs.CURIE) GeneContext {
	return GeneContext{Ref: ref}
}

// IsRef reports whether the context is carried by reference.
func (g GeneContext) IsRef() bool {
	return g.Ref != ""
}

// Validate enforces the exactly-one arm rule and validates whichever arm
// is present.
func (g GeneContext) Validate(opts vrs.Options) error {
	switch {
	case g.Descriptor == nil && g.Ref == "":
		return validation.MutualExclusionf("", "either an inline gene descriptor or a gene reference is required")
	case g.Descriptor != nil && g.Ref != "":
		return validation.MutualExclusionf("", "inline gene descriptor and gene reference are mutually exclusive")
	case g.Ref != "":
		return g.Ref.Validate()
	default:
		return g.Descriptor.Validate(opts)
	}
}

// MarshalJSON emits the reference CURIE as a bare string, or the inline
// gene descriptor object.
func (g GeneContext) MarshalJSON() ([]byte, error) {
	if g.Ref != "" {
		return json.Marshal(g.Ref)
	}
	return json.Marshal(g.Descriptor)
}

// UnmarshalJSON decodes either arm under vrs.DefaultOptions.
func (g *GeneContext) UnmarshalJSON(data []byte) error {
	parsed, err := parseGeneContext(data, vrs.DefaultOptions)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func parseGeneContext(data []byte, opts vrs.Options) (GeneContext, error) {
	if isJSONString(data) {
		var ref vrs.CURIE
		if err := json.Unmarshal(data, &ref); err != nil {
			return GeneContext{}, validation.Formatf("", string(data), "%v", err)
		}
		gc := GeneContext{Ref: ref}
		return gc, gc.Validate(opts)
	}
	gd, err := ParseGeneDescriptor(data, opts)
	if err != nil {
		return GeneContext{}, err
	}
	return GeneContext{Descriptor: gd}, nil
}

// VariationDescriptor wraps a VRS variation with contextual metadata:
// equivalent textual expressions, molecule context, structural type, an
// optional VCF anchor, and an optional gene context.
type VariationDescriptor struct {
	ValueObjectDescriptor
	VariationID     vrs.CURIE       `json:"variation_id,omitempty"`
	Variation       vrs.Variation   `json:"variation,omitempty"`
	MoleculeContext MoleculeContext `json:"molecule_context,omitempty"`
	StructuralType  vrs.CURIE       `json:"structural_type,omitempty"`
	Expressions     []Expression    `json:"expressions,omitempty"`
	VCFRecord       *VCFRecord      `json:"vcf_record,omitempty"`
	GeneContext     *GeneContext    `json:"gene_context,omitempty"`
	VRSRefAlleleSeq vrs.Sequence    `json:"vrs_ref_allele_seq,omitempty"`
	AllelicState    vrs.CURIE       `json:"allelic_state,omitempty"`
}

// NewVariationDescriptor validates and builds a VariationDescriptor
// wrapping an inline variation. Optional metadata is assigned on the
// returned value and re-checked with Validate.
func NewVariationDescriptor(id vrs.CURIE, variation vrs.Variation) (*VariationDescriptor, error) {
	d := &VariationDescriptor{
		ValueObjectDescriptor: ValueObjectDescriptor{ID: id, Type: TypeVariationDescriptor},
		Variation:             variation,
	}
	if err := d.Validate(vrs.DefaultOptions); err != nil {
		return nil, err
	}
	return d, nil
}

// NewVariationDescriptorRef validates and builds a VariationDescriptor
// referencing a variation by identifier.
func NewVariationDescriptorRef(id, variationID vrs.CURIE) (*VariationDescriptor, error) {
	d := &VariationDescriptor{
		ValueObjectDescriptor: ValueObjectDescriptor{ID: id, Type: TypeVariationDescriptor},
		VariationID:           variationID,
	}
	if err := d.Validate(vrs.DefaultOptions); err != nil {
		return nil, err
	}
	return d, nil
}

func (*VariationDescriptor) isDescriptor() {}

// DescriptorID returns the descriptor's identifier.
func (d *VariationDescriptor) DescriptorID() vrs.CURIE {
	return d.ID
}

// Validate aggregates every violation in the descriptor's flat field group.
// The nested variation, when inline, contributes its own first failure.
func (d *VariationDescriptor) Validate(opts vrs.Options) error {
	var errs validation.Errors
	d.validateCommon(TypeVariationDescriptor, &errs)
	switch {
	case d.Variation == nil && d.VariationID == "":
		errs.Append(validation.MutualExclusionf("variation", "exactly one of variation or variation_id is required"))
	case d.Variation != nil && d.VariationID != "":
		errs.Append(validation.MutualExclusionf("variation", "variation and variation_id are mutually exclusive"))
	case d.VariationID != "":
		if err := d.VariationID.Validate(); err != nil {
			errs.Append(validation.Wrap("variation_id", err))
		}
	default:
		if err := d.Variation.Validate(opts); err != nil {
			errs.Append(validation.Wrap("variation", err))
		}
	}
	if d.MoleculeContext != "" && !IsKnownMoleculeContext(d.MoleculeContext) {
		errs.Append(validation.Discriminatorf("molecule_context", d.MoleculeContext, "unknown molecule context"))
	}
	if d.StructuralType != "" {
		if err := d.StructuralType.Validate(); err != nil {
			errs.Append(validation.Wrap("structural_type", err))
		}
	}
	for i := range d.Expressions {
		if err := d.Expressions[i].Validate(); err != nil {
			errs.Append(validation.Wrap(validation.Index("expressions", i), err))
		}
	}
	if d.VCFRecord != nil {
		if err := d.VCFRecord.Validate(); err != nil {
			errs.Append(validation.Wrap("vcf_record", err))
		}
	}
	if d.GeneContext != nil {
		if err := d.GeneContext.Validate(opts); err != nil {
			errs.Append(validation.Wrap("gene_context", err))
		}
	}
	if err := d.VRSRefAlleleSeq.Validate(opts); err != nil {
		errs.Append(validation.Wrap("vrs_ref_allele_seq", err))
	}
	if d.AllelicState != "" {
		if err := d.AllelicState.Validate(); err != nil {
			errs.Append(validation.Wrap("allelic_state", err))
		}
	}
	return errs.Err()
}

// ParseVariationDescriptor decodes and validates one variation descriptor.
func ParseVariationDescriptor(data []byte, opts vrs.Options) (*VariationDescriptor, error) {
	var wire struct {
		ValueObjectDescriptor
		VariationID     vrs.CURIE       `json:"variation_id"`
		Variation       json.RawMessage `json:"variation"`
		MoleculeContext MoleculeContext `json:"molecule_context"`
		StructuralType  vrs.CURIE       `json:"structural_type"`
		Expressions     []Expression    `json:"expressions"`
		VCFRecord       *VCFRecord      `json:"vcf_record"`
		GeneContext     json.RawMessage `json:"gene_context"`
		VRSRefAlleleSeq vrs.Sequence    `json:"vrs_ref_allele_seq"`
		AllelicState    vrs.CURIE       `json:"allelic_state"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	d := &VariationDescriptor{
		ValueObjectDescriptor: wire.ValueObjectDescriptor,
		VariationID:           wire.VariationID,
		MoleculeContext:       wire.MoleculeContext,
		StructuralType:        wire.StructuralType,
		Expressions:           wire.Expressions,
		VCFRecord:             wire.VCFRecord,
		VRSRefAlleleSeq:       wire.VRSRefAlleleSeq,
		AllelicState:          wire.AllelicState,
	}
	if len(wire.Variation) > 0 {
		variation, err := vrs.ParseVariation(wire.Variation, opts)
		if err != nil {
			return nil, validation.Wrap("variation", err)
		}
		d.Variation = variation
	}
	if len(wire.GeneContext) > 0 {
		gc, err := parseGeneContext(wire.GeneContext, opts)
		if err != nil {
			return nil, validation.Wrap("gene_context", err)
		}
		d.GeneContext = &gc
	}
	if err := d.Validate(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// UnmarshalJSON decodes a variation descriptor under vrs.DefaultOptions.
// Use ParseVariationDescriptor for strict or legacy-accepting behavior.
func (d *VariationDescriptor) UnmarshalJSON(data []byte) error {
	parsed, err := ParseVariationDescriptor(data, vrs.DefaultOptions)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}
