package vrs

import "ga4gh/pkg/validation"

// Location is the union of "where" shapes. The union is open by design:
// adding a kind means adding a variant here and revisiting every exhaustive
// match, never silently passing an unknown tag through.
type Location interface {
	isLocation()
	// LocationID returns the object-level identifier, when assigned.
	LocationID() CURIE
	// Validate checks the location and its nested members.
	Validate(opts Options) error
}

// SequenceLocation places an interval on an identified sequence. The
// sequence identifier must be a syntactically valid CURIE; whether the
// sequence exists is an external concern.
type SequenceLocation struct {
	ID         CURIE      `json:"_id,omitempty"`
	Type       ObjectType `json:"type"`
	SequenceID CURIE      `json:"sequence_id"`
	Interval   Interval   `json:"interval"`
}

// NewSequenceLocation validates and builds a SequenceLocation.
func NewSequenceLocation(sequenceID CURIE, interval Interval) (*SequenceLocation, error) {
	loc := &SequenceLocation{Type: TypeSequenceLocation, SequenceID: sequenceID, Interval: interval}
	if err := loc.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return loc, nil
}

func (*SequenceLocation) isLocation() {}

// LocationID returns the assigned object identifier.
func (l *SequenceLocation) LocationID() CURIE {
	return l.ID
}

// Validate checks the discriminator, identifiers, and nested interval.
func (l *SequenceLocation) Validate(opts Options) error {
	if l.Type != TypeSequenceLocation {
		return validation.Discriminatorf("type", l.Type, "expected %q", TypeSequenceLocation)
	}
	if l.ID != "" {
		if err := l.ID.Validate(); err != nil {
			return validation.Wrap("_id", err)
		}
	}
	if err := l.SequenceID.Validate(); err != nil {
		return validation.Wrap("sequence_id", err)
	}
	if l.Interval == nil {
		return validation.Formatf("interval", nil, "interval is required")
	}
	if _, legacy := l.Interval.(*SimpleInterval); legacy && !opts.AllowLegacy {
		return validation.Discriminatorf("interval.type", TypeSimpleInterval, "legacy interval shape requires AllowLegacy")
	}
	if _, cytoband := l.Interval.(*CytobandInterval); cytoband {
		return validation.Discriminatorf("interval.type", TypeCytobandInterval, "cytoband intervals belong to ChromosomeLocation")
	}
	if err := l.Interval.Validate(opts); err != nil {
		return validation.Wrap("interval", err)
	}
	return nil
}

// ChromosomeLocation is the deprecated cytoband-addressed location shape,
// accepted only under Options.AllowLegacy.
type ChromosomeLocation struct {
	ID        CURIE             `json:"_id,omitempty"`
	Type      ObjectType        `json:"type"`
	SpeciesID CURIE             `json:"species_id"`
	Chr       string            `json:"chr"`
	Interval  *CytobandInterval `json:"interval"`
}

// NewChromosomeLocation validates and builds the legacy chromosome
// location.
func NewChromosomeLocation(speciesID CURIE, chr string, interval *CytobandInterval) (*ChromosomeLocation, error) {
	loc := &ChromosomeLocation{Type: TypeChromosomeLocation, SpeciesID: speciesID, Chr: chr, Interval: interval}
	if err := loc.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return loc, nil
}

func (*ChromosomeLocation) isLocation() {}

// LocationID returns the assigned object identifier.
func (l *ChromosomeLocation) LocationID() CURIE {
	return l.ID
}

// Validate checks the discriminator, identifiers, chromosome name, and
// nested interval.
func (l *ChromosomeLocation) Validate(opts Options) error {
	if l.Type != TypeChromosomeLocation {
		return validation.Discriminatorf("type", l.Type, "expected %q", TypeChromosomeLocation)
	}
	if l.ID != "" {
		if err := l.ID.Validate(); err != nil {
			return validation.Wrap("_id", err)
		}
	}
	if err := l.SpeciesID.Validate(); err != nil {
		return validation.Wrap("species_id", err)
	}
	if l.Chr == "" {
		return validation.Formatf("chr", l.Chr, "chromosome name must not be empty")
	}
	if l.Interval == nil {
		return validation.Formatf("interval", nil, "interval is required")
	}
	if err := l.Interval.Validate(opts); err != nil {
		return validation.Wrap("interval", err)
	}
	return nil
}

// LocationMember is the two-armed inline-or-reference position at which a
// Location appears inside another object: exactly one of Location and Ref
// is set. A Ref is a lookup key for an external store; the model never
// resolves it.
type LocationMember struct {
	Location Location
	Ref      CURIE
}

// InlineLocation wraps a location for inline membership.
func InlineLocation(loc Location) LocationMember {
	return LocationMember{Location: loc}
}

// RefLocation wraps an identifier for by-reference membership.
func RefLocation(ref CURIE) LocationMember {
	return LocationMember{Ref: ref}
}

// IsRef reports whether the member carries a reference rather than an
// inline location.
func (m LocationMember) IsRef() bool {
	return m.Ref != ""
}

// Validate enforces the exactly-one arm rule and validates whichever arm is
// present.
func (m LocationMember) Validate(opts Options) error {
	switch {
	case m.Location == nil && m.Ref == "":
		return validation.MutualExclusionf("", "either an inline location or a location reference is required")
	case m.Location != nil && m.Ref != "":
		return validation.MutualExclusionf("", "inline location and location reference are mutually exclusive")
	case m.Ref != "":
		return m.Ref.Validate()
	default:
		if _, legacy := m.Location.(*ChromosomeLocation); legacy && !opts.AllowLegacy {
			return validation.Discriminatorf("type", TypeChromosomeLocation, "legacy location shape requires AllowLegacy")
		}
		return m.Location.Validate(opts)
	}
}
