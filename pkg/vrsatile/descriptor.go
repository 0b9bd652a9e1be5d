// Package vrsatile implements the VRSATILE descriptor layer: wrappers that
// attach external identity, provenance, and contextual metadata to VRS
// value objects. A descriptor carries its wrapped object either inline or
// as a CURIE reference resolvable by an external store, never both.
package vrsatile

import (
	"bytes"
	"encoding/json"

	"ga4gh/pkg/extension"
	"ga4gh/pkg/validation"
	"ga4gh/pkg/vrs"
)

// DescriptorType is the discriminator carried in the "type" field of every
// descriptor kind.
type DescriptorType string

// Descriptor kind discriminators.
const (
	TypeVariationDescriptor DescriptorType = "VariationDescriptor"
	TypeGeneDescriptor      DescriptorType = "GeneDescriptor"
	TypeSequenceDescriptor  DescriptorType = "SequenceDescriptor"
	TypeLocationDescriptor  DescriptorType = "LocationDescriptor"
)

// Descriptor is the union of value object descriptor kinds.
type Descriptor interface {
	isDescriptor()
	// DescriptorID returns the descriptor's mandatory identifier.
	DescriptorID() vrs.CURIE
	// Validate checks the descriptor's flat field group, aggregating every
	// violation found at this level.
	Validate(opts vrs.Options) error
}

// ValueObjectDescriptor holds the fields shared by every descriptor kind.
// It is embedded by the concrete kinds, never used on its own.
type ValueObjectDescriptor struct {
	ID              vrs.CURIE             `json:"id"`
	Type            DescriptorType        `json:"type"`
	Label           string                `json:"label,omitempty"`
	Description     string                `json:"description,omitempty"`
	Xrefs           []vrs.CURIE           `json:"xrefs,omitempty"`
	AlternateLabels []string              `json:"alternate_labels,omitempty"`
	Extensions      []extension.Extension `json:"extensions,omitempty"`
}

// validateCommon appends violations for the shared flat fields: mandatory
// valid id, correct discriminator, valid xref identifiers, and
// well-formed extensions. Alternate labels are unconstrained.
func (d *ValueObjectDescriptor) validateCommon(want DescriptorType, errs *validation.Errors) {
	if d.Type != want {
		errs.Append(validation.Discriminatorf("type", d.Type, "expected %q", want))
	}
	if d.ID == "" {
		errs.Append(validation.Formatf("id", "", "descriptor id is required"))
	} else if err := d.ID.Validate(); err != nil {
		errs.Append(validation.Wrap("id", err))
	}
	for i, xref := range d.Xrefs {
		if err := xref.Validate(); err != nil {
			errs.Append(validation.Wrap(validation.Index("xrefs", i), err))
		}
	}
	for i := range d.Extensions {
		if err := d.Extensions[i].Validate(); err != nil {
			errs.Append(validation.Wrap(validation.Index("extensions", i), err))
		}
	}
}

// ParseDescriptor decodes one descriptor of any kind, dispatching on the
// discriminator before the remaining fields are inspected.
func ParseDescriptor(data []byte, opts vrs.Options) (Descriptor, error) {
	var probe struct {
		Type DescriptorType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, validation.Formatf("", string(data), "%v", err)
	}
	switch probe.Type {
	case TypeVariationDescriptor:
		return ParseVariationDescriptor(data, opts)
	case TypeGeneDescriptor:
		return ParseGeneDescriptor(data, opts)
	case TypeSequenceDescriptor:
		return ParseSequenceDescriptor(data, opts)
	case TypeLocationDescriptor:
		return ParseLocationDescriptor(data, opts)
	default:
		return nil, validation.Discriminatorf("type", probe.Type, "unknown descriptor type")
	}
}

// decodeInto decodes data into v, honoring strict mode by rejecting
// unknown fields.
func decodeInto(data []byte, opts vrs.Options, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if opts.Strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return validation.Formatf("", string(data), "%v", err)
	}
	return nil
}

// isJSONString reports whether the raw message is a JSON string, the wire
// form of a by-reference member.
func isJSONString(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '"'
}
