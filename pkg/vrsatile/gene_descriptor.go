package vrsatile

import (
	"ga4gh/pkg/validation"
	"ga4gh/pkg/vrs"
)

// GeneDescriptor wraps a Gene value object inline or by reference.
type GeneDescriptor struct {
	ValueObjectDescriptor
	GeneID vrs.CURIE `json:"gene_id,omitempty"`
	Gene   *vrs.Gene `json:"gene,omitempty"`
}

// NewGeneDescriptor validates and builds a GeneDescriptor wrapping an
// inline gene.
func NewGeneDescriptor(id vrs.CURIE, gene *vrs.Gene) (*GeneDescriptor, error) {
	d := &GeneDescriptor{
		ValueObjectDescriptor: ValueObjectDescriptor{ID: id, Type: TypeGeneDescriptor},
		Gene:                  gene,
	}
	if err := d.Validate(vrs.DefaultOptions); err != nil {
		return nil, err
	}
	return d, nil
}

// NewGeneDescriptorRef validates and builds a GeneDescriptor referencing a
// gene by identifier.
func NewGeneDescriptorRef(id, geneID vrs.CURIE) (*GeneDescriptor, error) {
	d := &GeneDescriptor{
		ValueObjectDescriptor: ValueObjectDescriptor{ID: id, Type: TypeGeneDescriptor},
		GeneID:                geneID,
	}
	if err := d.Validate(vrs.DefaultOptions); err != nil {
		return nil, err
	}
	return d, nil
}

func (*GeneDescriptor) isDescriptor() {}

// DescriptorID returns the descriptor's identifier.
func (d *GeneDescriptor) DescriptorID() vrs.CURIE {
	return d.ID
}

// Validate aggregates every violation in the descriptor's flat field group.
func (d *GeneDescriptor) Validate(opts vrs.Options) error {
	var errs validation.Errors
	d.validateCommon(TypeGeneDescriptor, &errs)
	switch {
	case d.Gene == nil && d.GeneID == "":
		errs.Append(validation.MutualExclusionf("gene", "exactly one of gene or gene_id is required"))
	case d.Gene != nil && d.GeneID != "":
		errs.Append(validation.MutualExclusionf("gene", "gene and gene_id are mutually exclusive"))
	case d.GeneID != "":
		if err := d.GeneID.Validate(); err != nil {
			errs.Append(validation.Wrap("gene_id", err))
		}
	default:
		if err := d.Gene.Validate(opts); err != nil {
			errs.Append(validation.Wrap("gene", err))
		}
	}
	return errs.Err()
}

// ParseGeneDescriptor decodes and validates one gene descriptor.
func ParseGeneDescriptor(data []byte, opts vrs.Options) (*GeneDescriptor, error) {
	var d GeneDescriptor
	if err := decodeInto(data, opts, &d); err != nil {
		return nil, err
	}
	if err := d.Validate(opts); err != nil {
		return nil, err
	}
	return &d, nil
}
