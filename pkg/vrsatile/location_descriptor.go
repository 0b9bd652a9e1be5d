package vrsatile

import (
	"encoding/json"

	"ga4gh/pkg/validation"
	"ga4gh/pkg/vrs"
)

// LocationDescriptor wraps a VRS location inline or by reference.
type LocationDescriptor struct {
	ValueObjectDescriptor
	LocationID vrs.CURIE    `json:"location_id,omitempty"`
	Location   vrs.Location `json:"location,omitempty"`
}

// NewLocationDescriptor validates and builds a LocationDescriptor wrapping
// an inline location.
func NewLocationDescriptor(id vrs.CURIE, location vrs.Location) (*LocationDescriptor, error) {
	d := &LocationDescriptor{
		ValueObjectDescriptor: ValueObjectDescriptor{ID: id, Type: TypeLocationDescriptor},
		Location:              location,
	}
	if err := d.Validate(vrs.DefaultOptions); err != nil {
		return nil, err
	}
	return d, nil
}

// NewLocationDescriptorRef validates and builds a LocationDescriptor
// referencing a location by identifier.
func NewLocationDescriptorRef(id, locationID vrs.CURIE) (*LocationDescriptor, error) {
	d := &LocationDescriptor{
		ValueObjectDescriptor: ValueObjectDescriptor{ID: id, Type: TypeLocationDescriptor},
		LocationID:            locationID,
	}
	if err := d.Validate(vrs.DefaultOptions); err != nil {
		return nil, err
	}
	return d, nil
}

func (*LocationDescriptor) isDescriptor() {}

// DescriptorID returns the descriptor's identifier.
func (d *LocationDescriptor) DescriptorID() vrs.CURIE {
	return d.ID
}

// Validate aggregates every violation in the descriptor's flat field group.
func (d *LocationDescriptor) Validate(opts vrs.Options) error {
	var errs validation.Errors
	d.validateCommon(TypeLocationDescriptor, &errs)
	switch {
	case d.Location == nil && d.LocationID == "":
		errs.Append(validation.MutualExclusionf("location", "exactly one of location or location_id is required"))
	case d.Location != nil && d.LocationID != "":
		errs.Append(validation.MutualExclusionf("location", "location and location_id are mutually exclusive"))
	case d.LocationID != "":
		if err := d.LocationID.Validate(); err != nil {
			errs.Append(validation.Wrap("location_id", err))
		}
	default:
		if err := d.Location.Validate(opts); err != nil {
			errs.Append(validation.Wrap("location", err))
		}
	}
	return errs.Err()
}

// ParseLocationDescriptor decodes and validates one location descriptor.
func ParseLocationDescriptor(data []byte, opts vrs.Options) (*LocationDescriptor, error) {
	var wire struct {
		ValueObjectDescriptor
		LocationID vrs.CURIE       `json:"location_id"`
		Location   json.RawMessage `json:"location"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	d := &LocationDescriptor{
		ValueObjectDescriptor: wire.ValueObjectDescriptor,
		LocationID:            wire.LocationID,
	}
	if len(wire.Location) > 0 {
		location, err := vrs.ParseLocation(wire.Location, opts)
		if err != nil {
			return nil, validation.Wrap("location", err)
		}
		d.Location = location
	}
	if err := d.Validate(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// UnmarshalJSON decodes a location descriptor under vrs.DefaultOptions.
// Use ParseLocationDescriptor for strict or legacy-accepting behavior.
func (d *LocationDescriptor) UnmarshalJSON(data []byte) error {
	parsed, err := ParseLocationDescriptor(data, vrs.DefaultOptions)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}
