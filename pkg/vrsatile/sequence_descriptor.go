package vrsatile

import (
	"ga4gh/pkg/validation"
	"ga4gh/pkg/vrs"
)

// SequenceDescriptor wraps a residue sequence inline or by reference, with
// an optional residue type identifier.
type SequenceDescriptor struct {
	ValueObjectDescriptor
	SequenceID  vrs.CURIE    `json:"sequence_id,omitempty"`
	Sequence    vrs.Sequence `json:"sequence,omitempty"`
	ResidueType vrs.CURIE    `json:"residue_type,omitempty"`
}

// NewSequenceDescriptor validates and builds a SequenceDescriptor wrapping
// an inline sequence.
func NewSequenceDescriptor(id vrs.CURIE, sequence vrs.Sequence) (*SequenceDescriptor, error) {
	d := &SequenceDescriptor{
		ValueObjectDescriptor: ValueObjectDescriptor{ID: id, Type: TypeSequenceDescriptor},
		Sequence:              sequence,
	}
	if err := d.Validate(vrs.DefaultOptions); err != nil {
		return nil, err
	}
	return d, nil
}

// NewSequenceDescriptorRef validates and builds a SequenceDescriptor
// referencing a sequence by identifier.
func NewSequenceDescriptorRef(id, sequenceID vrs.CURIE) (*SequenceDescriptor, error) {
	d := &SequenceDescriptor{
		ValueObjectDescriptor: ValueObjectDescriptor{ID: id, Type: TypeSequenceDescriptor},
		SequenceID:            sequenceID,
	}
	if err := d.Validate(vrs.DefaultOptions); err != nil {
		return nil, err
	}
	return d, nil
}

func (*SequenceDescriptor) isDescriptor() {}

// DescriptorID returns the descriptor's identifier.
func (d *SequenceDescriptor) DescriptorID() vrs.CURIE {
	return d.ID
}

// Validate aggregates every violation in the descriptor's flat field group.
func (d *SequenceDescriptor) Validate(opts vrs.Options) error {
	var errs validation.Errors
	d.validateCommon(TypeSequenceDescriptor, &errs)
	switch {
	case d.Sequence == "" && d.SequenceID == "":
		errs.Append(validation.MutualExclusionf("sequence", "exactly one of sequence or sequence_id is required"))
	case d.Sequence != "" && d.SequenceID != "":
		errs.Append(validation.MutualExclusionf("sequence", "sequence and sequence_id are mutually exclusive"))
	case d.SequenceID != "":
		if err := d.SequenceID.Validate(); err != nil {
			errs.Append(validation.Wrap("sequence_id", err))
		}
	default:
		if err := d.Sequence.Validate(opts); err != nil {
			errs.Append(validation.Wrap("sequence", err))
		}
	}
	if d.ResidueType != "" {
		if err := d.ResidueType.Validate(); err != nil {
			errs.Append(validation.Wrap("residue_type", err))
		}
	}
	return errs.Err()
}

// ParseSequenceDescriptor decodes and validates one sequence descriptor.
func ParseSequenceDescriptor(data []byte, opts vrs.Options) (*SequenceDescriptor, error) {
	var d SequenceDescriptor
	if err := decodeInto(data, opts, &d); err != nil {
		return nil, err
	}
	if err := d.Validate(opts); err != nil {
		return nil, err
	}
	return &d, nil
}
