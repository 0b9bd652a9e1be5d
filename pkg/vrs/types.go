package vrs

// ObjectType is the discriminator carried in the "type" field of every
// polymorphic VRS object. Discriminators form closed sets per union; an
// unknown tag is rejected before any other field is inspected.
type ObjectType string

// Discriminator values for the VRS unions.
const (
	// TypeAllele identifies a variation at one location described by one
	// sequence change.
	TypeAllele ObjectType = "Allele"
	// TypeHaplotype identifies an ordered co-occurring group of alleles.
	TypeHaplotype ObjectType = "Haplotype"
	// TypeCopyNumber identifies a subject with an assessed copy count.
	TypeCopyNumber ObjectType = "CopyNumber"
	// TypeVariationSet identifies a grouping of variations.
	TypeVariationSet ObjectType = "VariationSet"
	// TypeText identifies the free-form fallback variation.
	TypeText ObjectType = "Text"

	// TypeSequenceLocation identifies a sequence identifier plus interval.
	TypeSequenceLocation ObjectType = "SequenceLocation"
	// TypeChromosomeLocation identifies the deprecated cytoband-addressed
	// location shape, accepted only under Options.AllowLegacy.
	TypeChromosomeLocation ObjectType = "ChromosomeLocation"

	// TypeSequenceInterval identifies the current interval shape with
	// optionally open bounds.
	TypeSequenceInterval ObjectType = "SequenceInterval"
	// TypeSimpleInterval identifies the deprecated fixed-bound interval,
	// accepted only under Options.AllowLegacy.
	TypeSimpleInterval ObjectType = "SimpleInterval"
	// TypeCytobandInterval identifies the cytoband interval carried by
	// ChromosomeLocation.
	TypeCytobandInterval ObjectType = "CytobandInterval"

	// TypeLiteralSequenceExpression identifies a literal residue sequence.
	TypeLiteralSequenceExpression ObjectType = "LiteralSequenceExpression"
	// TypeDerivedSequenceExpression identifies a sequence derived from
	// another location.
	TypeDerivedSequenceExpression ObjectType = "DerivedSequenceExpression"
	// TypeRepeatedSequenceExpression identifies a repeated subsequence.
	TypeRepeatedSequenceExpression ObjectType = "RepeatedSequenceExpression"
	// TypeSequenceState identifies the deprecated literal state shape,
	// accepted only under Options.AllowLegacy.
	TypeSequenceState ObjectType = "SequenceState"

	// TypeNumber identifies an exact count.
	TypeNumber ObjectType = "Number"
	// TypeRange identifies a bounded or half-bounded count range.
	TypeRange ObjectType = "Range"

	// TypeGene identifies a gene reference value object.
	TypeGene ObjectType = "Gene"
)
