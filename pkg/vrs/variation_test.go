package vrs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ga4gh/pkg/validation"
)

func mustAllele(t *testing.T, start, end int64, seq Sequence) *Allele {
	t.Helper()
	iv, err := NewSequenceInterval(Bound(start), Bound(end))
	require.NoError(t, err)
	loc, err := NewSequenceLocation("refseq:NC_000019.10", iv)
	require.NoError(t, err)
	state, err := NewLiteralSequenceExpression(seq)
	require.NoError(t, err)
	a, err := NewAllele(InlineLocation(loc), state)
	require.NoError(t, err)
	return a
}

func TestNewAllele_InsertionPoint(t *testing.T) {
	// A zero-length interval with a one-residue state is an insertion.
	a := mustAllele(t, 100, 100, "A")
	require.Equal(t, TypeAllele, a.Type)
	require.Empty(t, a.VariationID())
}

func TestNewAllele_MissingState(t *testing.T) {
	loc := mustSequenceLocation(t)
	_, err := NewAllele(InlineLocation(loc), nil)
	require.Error(t, err)
	verr := &validation.Error{}
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "state", verr.Path)
}

func TestAllele_LegacyStateGate(t *testing.T) {
	loc := mustSequenceLocation(t)
	state, err := NewSequenceState("T")
	require.NoError(t, err)

	a, err := NewAllele(InlineLocation(loc), state)
	require.NoError(t, err)

	err = a.Validate(DefaultOptions)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleDiscriminator})
	require.NoError(t, a.Validate(Options{AllowLegacy: true}))
}

func TestNewHaplotype(t *testing.T) {
	a := mustAllele(t, 100, 101, "T")
	h, err := NewHaplotype([]AlleleMember{InlineAllele(a), RefAllele("ga4gh:VA.def456")})
	require.NoError(t, err)
	require.Len(t, h.Members, 2)

	_, err = NewHaplotype(nil)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleEmptyCollection})
	_, err = NewHaplotype([]AlleleMember{})
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleEmptyCollection})
}

func TestHaplotype_MemberErrorPath(t *testing.T) {
	a := mustAllele(t, 100, 101, "T")
	h := &Haplotype{
		Type: TypeHaplotype,
		Members: []AlleleMember{
			InlineAllele(a),
			{Allele: a, Ref: "ga4gh:VA.def456"},
		},
	}
	err := h.Validate(DefaultOptions)
	require.Error(t, err)
	verr := &validation.Error{}
	require.ErrorAs(t, err, &verr)
	require.Equal(t, validation.RuleMutualExclusion, verr.Rule)
	require.True(t, strings.HasPrefix(verr.Path, "members[1]"), verr.Path)
}

func TestSubject_ExactlyOneArm(t *testing.T) {
	loc := mustSequenceLocation(t)
	a := mustAllele(t, 100, 101, "C")

	require.NoError(t, LocationSubject(loc).Validate(DefaultOptions))
	require.NoError(t, VariationSubject(a).Validate(DefaultOptions))
	require.NoError(t, RefSubject("ga4gh:VA.abc").Validate(DefaultOptions))

	err := Subject{}.Validate(DefaultOptions)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleMutualExclusion})

	err = Subject{Location: loc, Variation: a}.Validate(DefaultOptions)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleMutualExclusion})

	err = Subject{Location: loc, Variation: a, Ref: "ga4gh:VA.abc"}.Validate(DefaultOptions)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleMutualExclusion})
}

func TestNewCopyNumber(t *testing.T) {
	loc := mustSequenceLocation(t)
	copies, err := NewNumber(3)
	require.NoError(t, err)

	cn, err := NewCopyNumber(LocationSubject(loc), copies)
	require.NoError(t, err)
	require.Equal(t, TypeCopyNumber, cn.Type)

	_, err = NewCopyNumber(LocationSubject(loc), nil)
	require.Error(t, err)
}

func TestCopyNumber_InvertedRange(t *testing.T) {
	loc := mustSequenceLocation(t)
	cn := &CopyNumber{
		Type:    TypeCopyNumber,
		Subject: LocationSubject(loc),
		Copies:  &Range{Type: TypeRange, Low: Bound(5), High: Bound(2)},
	}
	err := cn.Validate(DefaultOptions)
	require.Error(t, err)
	verr := &validation.Error{}
	require.ErrorAs(t, err, &verr)
	require.Equal(t, validation.RuleFormat, verr.Rule)
	require.Equal(t, "copies.low", verr.Path)
}

func TestNewVariationSet(t *testing.T) {
	a := mustAllele(t, 100, 101, "G")

	// Empty sets and duplicate members are both permitted.
	vs, err := NewVariationSet(nil)
	require.NoError(t, err)
	require.Empty(t, vs.Members)

	vs, err = NewVariationSet([]VariationMember{
		InlineVariation(a),
		InlineVariation(a),
		RefVariation("ga4gh:VA.dup"),
	})
	require.NoError(t, err)
	require.Len(t, vs.Members, 3)
}

func TestVariationSet_NestedSet(t *testing.T) {
	a := mustAllele(t, 100, 101, "G")
	inner, err := NewVariationSet([]VariationMember{InlineVariation(a)})
	require.NoError(t, err)
	outer, err := NewVariationSet([]VariationMember{InlineVariation(inner)})
	require.NoError(t, err)
	require.NoError(t, outer.Validate(DefaultOptions))
}

func TestNewText(t *testing.T) {
	txt, err := NewText("APOE loss-of-function variants")
	require.NoError(t, err)
	require.Equal(t, TypeText, txt.Type)

	_, err = NewText("")
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleFormat})
}

func TestVariation_DiscriminatorCheckedFirst(t *testing.T) {
	// A wrong tag is reported even when every other field is broken too.
	a := &Allele{Type: "Bogus"}
	err := a.Validate(DefaultOptions)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleDiscriminator})
	verr := &validation.Error{}
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "type", verr.Path)
}
