package vrs

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"ga4gh/pkg/validation"
)

const alleleJSON = `{
	"_id": "ga4gh:VA.abc123",
	"type": "Allele",
	"location": {
		"type": "SequenceLocation",
		"sequence_id": "refseq:NC_000019.10",
		"interval": {"type": "SequenceInterval", "start": 44908821, "end": 44908822}
	},
	"state": {"type": "LiteralSequenceExpression", "sequence": "T"}
}`

func TestParseVariation_Allele(t *testing.T) {
	v, err := ParseVariation([]byte(alleleJSON), DefaultOptions)
	require.NoError(t, err)
	a, ok := v.(*Allele)
	require.True(t, ok)
	require.Equal(t, CURIE("ga4gh:VA.abc123"), a.VariationID())
	require.Equal(t, CURIE("refseq:NC_000019.10"), a.Location.Location.(*SequenceLocation).SequenceID)
}

func TestParseVariation_UnknownTag(t *testing.T) {
	_, err := ParseVariation([]byte(`{"type": "Wobble", "definition": "x"}`), DefaultOptions)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleDiscriminator})
	verr := &validation.Error{}
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "type", verr.Path)
}

func TestParseVariation_RefMemberWireForm(t *testing.T) {
	data := []byte(`{
		"type": "Haplotype",
		"members": [
			` + alleleJSON + `,
			"ga4gh:VA.def456"
		]
	}`)
	v, err := ParseVariation(data, DefaultOptions)
	require.NoError(t, err)
	h := v.(*Haplotype)
	require.Len(t, h.Members, 2)
	require.False(t, h.Members[0].IsRef())
	require.True(t, h.Members[1].IsRef())
	require.Equal(t, CURIE("ga4gh:VA.def456"), h.Members[1].Ref)
}

func TestParseVariation_MemberErrorPath(t *testing.T) {
	data := []byte(`{
		"type": "Haplotype",
		"members": ["ga4gh:VA.ok", "not a curie"]
	}`)
	_, err := ParseVariation(data, DefaultOptions)
	require.Error(t, err)
	verr := &validation.Error{}
	require.ErrorAs(t, err, &verr)
	require.Equal(t, validation.RuleFormat, verr.Rule)
	require.Equal(t, "members[1]", verr.Path)
}

func TestParseVariation_LegacyGating(t *testing.T) {
	legacy := []byte(`{
		"type": "Allele",
		"location": {
			"type": "SequenceLocation",
			"sequence_id": "refseq:NC_000019.10",
			"interval": {"type": "SimpleInterval", "start": 10, "end": 11}
		},
		"state": {"type": "SequenceState", "sequence": "T"}
	}`)
	_, err := ParseVariation(legacy, DefaultOptions)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleDiscriminator})

	v, err := ParseVariation(legacy, Options{AllowLegacy: true})
	require.NoError(t, err)
	a := v.(*Allele)
	require.IsType(t, &SimpleInterval{}, a.Location.Location.(*SequenceLocation).Interval)
	require.IsType(t, &SequenceState{}, a.State)
}

func TestParseLocation_LegacyChromosome(t *testing.T) {
	data := []byte(`{
		"type": "ChromosomeLocation",
		"species_id": "taxonomy:9606",
		"chr": "19",
		"interval": {"type": "CytobandInterval", "start": "q13.32", "end": "q13.32"}
	}`)
	_, err := ParseLocation(data, DefaultOptions)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleDiscriminator})

	loc, err := ParseLocation(data, Options{AllowLegacy: true})
	require.NoError(t, err)
	require.IsType(t, &ChromosomeLocation{}, loc)
}

func TestParseVariation_StrictUnknownField(t *testing.T) {
	data := []byte(`{
		"type": "Allele",
		"surprise": true,
		"location": "ga4gh:VSL.abc",
		"state": {"type": "LiteralSequenceExpression", "sequence": "T"}
	}`)
	v, err := ParseVariation(data, DefaultOptions)
	require.NoError(t, err)
	require.NotNil(t, v)

	_, err = ParseVariation(data, Options{Strict: true})
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleFormat})
}

func TestMemberMarshal_RefIsBareString(t *testing.T) {
	out, err := json.Marshal(RefAllele("ga4gh:VA.def456"))
	require.NoError(t, err)
	require.JSONEq(t, `"ga4gh:VA.def456"`, string(out))

	out, err = json.Marshal(RefVariation("ga4gh:VA.def456"))
	require.NoError(t, err)
	require.JSONEq(t, `"ga4gh:VA.def456"`, string(out))

	out, err = json.Marshal(RefSubject("ga4gh:VSL.xyz"))
	require.NoError(t, err)
	require.JSONEq(t, `"ga4gh:VSL.xyz"`, string(out))
}

func TestVariationSet_RoundTripPreservesOrder(t *testing.T) {
	a := mustAllele(t, 100, 101, "G")
	vs, err := NewVariationSet([]VariationMember{
		InlineVariation(a),
		RefVariation("ga4gh:VA.ref1"),
		RefVariation("ga4gh:VA.ref0"),
	})
	require.NoError(t, err)

	data, err := json.Marshal(vs)
	require.NoError(t, err)

	var back VariationSet
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, vs, &back)
	require.Equal(t, CURIE("ga4gh:VA.ref1"), back.Members[1].Ref)
	require.Equal(t, CURIE("ga4gh:VA.ref0"), back.Members[2].Ref)
}

func TestAllele_RoundTrip(t *testing.T) {
	var a Allele
	require.NoError(t, json.Unmarshal([]byte(alleleJSON), &a))

	data, err := json.Marshal(&a)
	require.NoError(t, err)

	var back Allele
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, a, back)
}

func alleleGen() *rapid.Generator[*Allele] {
	bases := rapid.SliceOfN(rapid.SampledFrom([]rune("ACGTN")), 1, 12)
	return rapid.Custom(func(rt *rapid.T) *Allele {
		start := rapid.Int64Range(0, 1<<32).Draw(rt, "start")
		length := rapid.Int64Range(0, 64).Draw(rt, "length")
		iv, err := NewSequenceInterval(Bound(start), Bound(start+length))
		if err != nil {
			rt.Fatalf("interval: %v", err)
		}
		loc, err := NewSequenceLocation("refseq:NC_000001.11", iv)
		if err != nil {
			rt.Fatalf("location: %v", err)
		}
		state, err := NewLiteralSequenceExpression(Sequence(bases.Draw(rt, "seq")))
		if err != nil {
			rt.Fatalf("state: %v", err)
		}
		a, err := NewAllele(InlineLocation(loc), state)
		if err != nil {
			rt.Fatalf("allele: %v", err)
		}
		return a
	})
}

func TestAllele_RoundTripProperty(t *testing.T) {
	gen := alleleGen()
	rapid.Check(t, func(rt *rapid.T) {
		a := gen.Draw(rt, "allele")
		data, err := json.Marshal(a)
		if err != nil {
			rt.Fatalf("marshal: %v", err)
		}
		back, err := ParseVariation(data, Options{Strict: true})
		if err != nil {
			rt.Fatalf("parse: %v", err)
		}
		if !reflect.DeepEqual(back, a) {
			rt.Fatalf("round trip mismatch: %#v != %#v", back, a)
		}
	})
}
