package vrs

import (
	"bytes"
	"encoding/json"

	"ga4gh/pkg/validation"
)

// decodeInto decodes data into v, honoring strict mode by rejecting unknown
// fields.
func decodeInto(data []byte, opts Options, v any) error {
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

// probeType extracts the discriminator without decoding the full object.
// The discriminator is checked before any other field.
func probeType(data []byte) (ObjectType, error) {
	var probe struct {
		Type ObjectType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", validation.Formatf("", string(data), "%v", err)
	}
	return probe.Type, nil
}

// ParseVariation decodes one variation of any kind. Unknown discriminators
// are rejected before the remaining fields are inspected.
func ParseVariation(data []byte, opts Options) (Variation, error) {
	tag, err := probeType(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TypeAllele:
		return parseAllele(data, opts)
	case TypeHaplotype:
		return parseHaplotype(data, opts)
	case TypeCopyNumber:
		return parseCopyNumber(data, opts)
	case TypeVariationSet:
		return parseVariationSet(data, opts)
	case TypeText:
		return parseText(data, opts)
	default:
		return nil, validation.Discriminatorf("type", tag, "unknown variation type")
	}
}

// ParseLocation decodes one location of any kind. The legacy
// ChromosomeLocation requires Options.AllowLegacy.
func ParseLocation(data []byte, opts Options) (Location, error) {
	tag, err := probeType(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TypeSequenceLocation:
		return parseSequenceLocation(data, opts)
	case TypeChromosomeLocation:
		if !opts.AllowLegacy {
			return nil, validation.Discriminatorf("type", tag, "legacy location shape requires AllowLegacy")
		}
		return parseChromosomeLocation(data, opts)
	default:
		return nil, validation.Discriminatorf("type", tag, "unknown location type")
	}
}

// ParseInterval decodes one interval of any kind. The legacy SimpleInterval
// requires Options.AllowLegacy.
func ParseInterval(data []byte, opts Options) (Interval, error) {
	tag, err := probeType(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TypeSequenceInterval:
		var iv SequenceInterval
		if err := decodeInto(data, opts, &iv); err != nil {
			return nil, err
		}
		if err := iv.Validate(opts); err != nil {
			return nil, err
		}
		return &iv, nil
	case TypeSimpleInterval:
		if !opts.AllowLegacy {
			return nil, validation.Discriminatorf("type", tag, "legacy interval shape requires AllowLegacy")
		}
		var iv SimpleInterval
		if err := decodeInto(data, opts, &iv); err != nil {
			return nil, err
		}
		if err := iv.Validate(opts); err != nil {
			return nil, err
		}
		return &iv, nil
	case TypeCytobandInterval:
		var iv CytobandInterval
		if err := decodeInto(data, opts, &iv); err != nil {
			return nil, err
		}
		if err := iv.Validate(opts); err != nil {
			return nil, err
		}
		return &iv, nil
	default:
		return nil, validation.Discriminatorf("type", tag, "unknown interval type")
	}
}

// ParseSequenceExpression decodes one sequence expression of any kind. The
// legacy SequenceState requires Options.AllowLegacy.
func ParseSequenceExpression(data []byte, opts Options) (SequenceExpression, error) {
	tag, err := probeType(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TypeLiteralSequenceExpression:
		var e LiteralSequenceExpression
		if err := decodeInto(data, opts, &e); err != nil {
			return nil, err
		}
		if err := e.Validate(opts); err != nil {
			return nil, err
		}
		return &e, nil
	case TypeDerivedSequenceExpression:
		return parseDerivedSequenceExpression(data, opts)
	case TypeRepeatedSequenceExpression:
		return parseRepeatedSequenceExpression(data, opts)
	case TypeSequenceState:
		if !opts.AllowLegacy {
			return nil, validation.Discriminatorf("type", tag, "legacy state shape requires AllowLegacy")
		}
		var s SequenceState
		if err := decodeInto(data, opts, &s); err != nil {
			return nil, err
		}
		if err := s.Validate(opts); err != nil {
			return nil, err
		}
		return &s, nil
	default:
		return nil, validation.Discriminatorf("type", tag, "unknown sequence expression type")
	}
}

// ParseCount decodes one count of either kind.
func ParseCount(data []byte, opts Options) (Count, error) {
	tag, err := probeType(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TypeNumber:
		var n Number
		if err := decodeInto(data, opts, &n); err != nil {
			return nil, err
		}
		if err := n.Validate(opts); err != nil {
			return nil, err
		}
		return &n, nil
	case TypeRange:
		var r Range
		if err := decodeInto(data, opts, &r); err != nil {
			return nil, err
		}
		if err := r.Validate(opts); err != nil {
			return nil, err
		}
		return &r, nil
	default:
		return nil, validation.Discriminatorf("type", tag, "unknown count type")
	}
}

func parseSequenceLocation(data []byte, opts Options) (*SequenceLocation, error) {
	var wire struct {
		ID         CURIE           `json:"_id"`
		Type       ObjectType      `json:"type"`
		SequenceID CURIE           `json:"sequence_id"`
		Interval   json.RawMessage `json:"interval"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	loc := &SequenceLocation{ID: wire.ID, Type: wire.Type, SequenceID: wire.SequenceID}
	if len(wire.Interval) > 0 {
		interval, err := ParseInterval(wire.Interval, opts)
		if err != nil {
			return nil, validation.Wrap("interval", err)
		}
		loc.Interval = interval
	}
	if err := loc.Validate(opts); err != nil {
		return nil, err
	}
	return loc, nil
}

func parseChromosomeLocation(data []byte, opts Options) (*ChromosomeLocation, error) {
	var loc ChromosomeLocation
	if err := decodeInto(data, opts, &loc); err != nil {
		return nil, err
	}
	if err := loc.Validate(opts); err != nil {
		return nil, err
	}
	return &loc, nil
}

func parseDerivedSequenceExpression(data []byte, opts Options) (*DerivedSequenceExpression, error) {
	var wire struct {
		Type              ObjectType      `json:"type"`
		Location          json.RawMessage `json:"location"`
		ReverseComplement bool            `json:"reverse_complement"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	e := &DerivedSequenceExpression{Type: wire.Type, ReverseComplement: wire.ReverseComplement}
	if len(wire.Location) > 0 {
		loc, err := parseSequenceLocation(wire.Location, opts)
		if err != nil {
			return nil, validation.Wrap("location", err)
		}
		e.Location = loc
	}
	if err := e.Validate(opts); err != nil {
		return nil, err
	}
	return e, nil
}

func parseRepeatedSequenceExpression(data []byte, opts Options) (*RepeatedSequenceExpression, error) {
	var wire struct {
		Type    ObjectType      `json:"type"`
		SeqExpr json.RawMessage `json:"seq_expr"`
		Count   json.RawMessage `json:"count"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	e := &RepeatedSequenceExpression{Type: wire.Type}
	if len(wire.SeqExpr) > 0 {
		inner, err := ParseSequenceExpression(wire.SeqExpr, opts)
		if err != nil {
			return nil, validation.Wrap("seq_expr", err)
		}
		e.SeqExpr = inner
	}
	if len(wire.Count) > 0 {
		count, err := ParseCount(wire.Count, opts)
		if err != nil {
			return nil, validation.Wrap("count", err)
		}
		e.Count = count
	}
	if err := e.Validate(opts); err != nil {
		return nil, err
	}
	return e, nil
}

func parseLocationMember(data []byte, opts Options) (LocationMember, error) {
	if isJSONString(data) {
		var ref CURIE
		if err := json.Unmarshal(data, &ref); err != nil {
			return LocationMember{}, validation.Formatf("", string(data), "%v", err)
		}
		member := RefLocation(ref)
		return member, member.Validate(opts)
	}
	loc, err := ParseLocation(data, opts)
	if err != nil {
		return LocationMember{}, err
	}
	return InlineLocation(loc), nil
}

func parseAlleleMember(data []byte, opts Options) (AlleleMember, error) {
	if isJSONString(data) {
		var ref CURIE
		if err := json.Unmarshal(data, &ref); err != nil {
			return AlleleMember{}, validation.Formatf("", string(data), "%v", err)
		}
		member := RefAllele(ref)
		return member, member.Validate(opts)
	}
	tag, err := probeType(data)
	if err != nil {
		return AlleleMember{}, err
	}
	if tag != TypeAllele {
		return AlleleMember{}, validation.Discriminatorf("type", tag, "haplotype members must be alleles")
	}
	allele, err := parseAllele(data, opts)
	if err != nil {
		return AlleleMember{}, err
	}
	return InlineAllele(allele), nil
}

func parseVariationMember(data []byte, opts Options) (VariationMember, error) {
	if isJSONString(data) {
		var ref CURIE
		if err := json.Unmarshal(data, &ref); err != nil {
			return VariationMember{}, validation.Formatf("", string(data), "%v", err)
		}
		member := RefVariation(ref)
		return member, member.Validate(opts)
	}
	v, err := ParseVariation(data, opts)
	if err != nil {
		return VariationMember{}, err
	}
	return InlineVariation(v), nil
}

func parseSubject(data []byte, opts Options) (Subject, error) {
	if isJSONString(data) {
		var ref CURIE
		if err := json.Unmarshal(data, &ref); err != nil {
			return Subject{}, validation.Formatf("", string(data), "%v", err)
		}
		subject := RefSubject(ref)
		return subject, subject.Validate(opts)
	}
	tag, err := probeType(data)
	if err != nil {
		return Subject{}, err
	}
	switch tag {
	case TypeSequenceLocation, TypeChromosomeLocation:
		loc, err := ParseLocation(data, opts)
		if err != nil {
			return Subject{}, err
		}
		return LocationSubject(loc), nil
	case TypeAllele, TypeHaplotype, TypeCopyNumber, TypeVariationSet, TypeText:
		v, err := ParseVariation(data, opts)
		if err != nil {
			return Subject{}, err
		}
		return VariationSubject(v), nil
	default:
		return Subject{}, validation.Discriminatorf("type", tag, "copy number subject must be a location, variation, or reference")
	}
}

func parseAllele(data []byte, opts Options) (*Allele, error) {
	var wire struct {
		ID       CURIE           `json:"_id"`
		Type     ObjectType      `json:"type"`
		Location json.RawMessage `json:"location"`
		State    json.RawMessage `json:"state"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	a := &Allele{ID: wire.ID, Type: wire.Type}
	if len(wire.Location) > 0 {
		member, err := parseLocationMember(wire.Location, opts)
		if err != nil {
			return nil, validation.Wrap("location", err)
		}
		a.Location = member
	}
	if len(wire.State) > 0 {
		state, err := ParseSequenceExpression(wire.State, opts)
		if err != nil {
			return nil, validation.Wrap("state", err)
		}
		a.State = state
	}
	if err := a.Validate(opts); err != nil {
		return nil, err
	}
	return a, nil
}

func parseHaplotype(data []byte, opts Options) (*Haplotype, error) {
	var wire struct {
		ID      CURIE             `json:"_id"`
		Type    ObjectType        `json:"type"`
		Members []json.RawMessage `json:"members"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	h := &Haplotype{ID: wire.ID, Type: wire.Type}
	for i, raw := range wire.Members {
		member, err := parseAlleleMember(raw, opts)
		if err != nil {
			return nil, validation.Wrap(validation.Index("members", i), err)
		}
		h.Members = append(h.Members, member)
	}
	if err := h.Validate(opts); err != nil {
		return nil, err
	}
	return h, nil
}

func parseCopyNumber(data []byte, opts Options) (*CopyNumber, error) {
	var wire struct {
		ID      CURIE           `json:"_id"`
		Type    ObjectType      `json:"type"`
		Subject json.RawMessage `json:"subject"`
		Copies  json.RawMessage `json:"copies"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	cn := &CopyNumber{ID: wire.ID, Type: wire.Type}
	if len(wire.Subject) > 0 {
		subject, err := parseSubject(wire.Subject, opts)
		if err != nil {
			return nil, validation.Wrap("subject", err)
		}
		cn.Subject = subject
	}
	if len(wire.Copies) > 0 {
		copies, err := ParseCount(wire.Copies, opts)
		if err != nil {
			return nil, validation.Wrap("copies", err)
		}
		cn.Copies = copies
	}
	if err := cn.Validate(opts); err != nil {
		return nil, err
	}
	return cn, nil
}

func parseVariationSet(data []byte, opts Options) (*VariationSet, error) {
	var wire struct {
		ID      CURIE             `json:"_id"`
		Type    ObjectType        `json:"type"`
		Members []json.RawMessage `json:"members"`
	}
	if err := decodeInto(data, opts, &wire); err != nil {
		return nil, err
	}
	vs := &VariationSet{ID: wire.ID, Type: wire.Type}
	for i, raw := range wire.Members {
		member, err := parseVariationMember(raw, opts)
		if err != nil {
			return nil, validation.Wrap(validation.Index("members", i), err)
		}
		vs.Members = append(vs.Members, member)
	}
	if err := vs.Validate(opts); err != nil {
		return nil, err
	}
	return vs, nil
}

func parseText(data []byte, opts Options) (*Text, error) {
	var t Text
	if err := decodeInto(data, opts, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(opts); err != nil {
		return nil, err
	}
	return &t, nil
}

// MarshalJSON emits the reference CURIE as a bare string, or the inline
// location object.
func (m LocationMember) MarshalJSON() ([]byte, error) {
	if m.Ref != "" {
		return json.Marshal(m.Ref)
	}
	return json.Marshal(m.Location)
}

// UnmarshalJSON decodes either arm under DefaultOptions.
func (m *LocationMember) UnmarshalJSON(data []byte) error {
	member, err := parseLocationMember(data, DefaultOptions)
	if err != nil {
		return err
	}
	*m = member
	return nil
}

// MarshalJSON emits the reference CURIE as a bare string, or the inline
// allele object.
func (m AlleleMember) MarshalJSON() ([]byte, error) {
	if m.Ref != "" {
		return json.Marshal(m.Ref)
	}
	return json.Marshal(m.Allele)
}

// UnmarshalJSON decodes either arm under DefaultOptions.
func (m *AlleleMember) UnmarshalJSON(data []byte) error {
	member, err := parseAlleleMember(data, DefaultOptions)
	if err != nil {
		return err
	}
	*m = member
	return nil
}

// MarshalJSON emits the reference CURIE as a bare string, or the inline
// variation object.
func (m VariationMember) MarshalJSON() ([]byte, error) {
	if m.Ref != "" {
		return json.Marshal(m.Ref)
	}
	return json.Marshal(m.Variation)
}

// UnmarshalJSON decodes either arm under DefaultOptions.
func (m *VariationMember) UnmarshalJSON(data []byte) error {
	member, err := parseVariationMember(data, DefaultOptions)
	if err != nil {
		return err
	}
	*m = member
	return nil
}

// MarshalJSON emits whichever subject arm is set.
func (s Subject) MarshalJSON() ([]byte, error) {
	switch {
	case s.Ref != "":
		return json.Marshal(s.Ref)
	case s.Location != nil:
		return json.Marshal(s.Location)
	default:
		return json.Marshal(s.Variation)
	}
}

// UnmarshalJSON decodes any subject arm under DefaultOptions.
func (s *Subject) UnmarshalJSON(data []byte) error {
	subject, err := parseSubject(data, DefaultOptions)
	if err != nil {
		return err
	}
	*s = subject
	return nil
}

// UnmarshalJSON decodes an allele under DefaultOptions. Use ParseVariation
// for strict or legacy-accepting behavior.
func (a *Allele) UnmarshalJSON(data []byte) error {
	parsed, err := parseAllele(data, DefaultOptions)
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}

// UnmarshalJSON decodes a haplotype under DefaultOptions.
func (h *Haplotype) UnmarshalJSON(data []byte) error {
	parsed, err := parseHaplotype(data, DefaultOptions)
	if err != nil {
		return err
	}
	*h = *parsed
	return nil
}

// UnmarshalJSON decodes a copy number under DefaultOptions.
func (cn *CopyNumber) UnmarshalJSON(data []byte) error {
	parsed, err := parseCopyNumber(data, DefaultOptions)
	if err != nil {
		return err
	}
	*cn = *parsed
	return nil
}

// UnmarshalJSON decodes a variation set under DefaultOptions.
func (vs *VariationSet) UnmarshalJSON(data []byte) error {
	parsed, err := parseVariationSet(data, DefaultOptions)
	if err != nil {
		return err
	}
	*vs = *parsed
	return nil
}

// UnmarshalJSON decodes a sequence location under DefaultOptions. Use
// ParseLocation for strict or legacy-accepting behavior.
func (l *SequenceLocation) UnmarshalJSON(data []byte) error {
	parsed, err := parseSequenceLocation(data, DefaultOptions)
	if err != nil {
		return err
	}
	*l = *parsed
	return nil
}

// UnmarshalJSON decodes a repeated sequence expression under
// DefaultOptions.
func (e *RepeatedSequenceExpression) UnmarshalJSON(data []byte) error {
	parsed, err := parseRepeatedSequenceExpression(data, DefaultOptions)
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}

// UnmarshalJSON decodes a derived sequence expression under DefaultOptions.
func (e *DerivedSequenceExpression) UnmarshalJSON(data []byte) error {
	parsed, err := parseDerivedSequenceExpression(data, DefaultOptions)
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}
