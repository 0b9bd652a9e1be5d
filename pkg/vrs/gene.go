package vrs

import "ga4gh/pkg/validation"

// Gene is a reference to an externally defined gene concept. The gene
// identifier carries all semantics; the model validates syntax only.
type Gene struct {
	Type   ObjectType `json:"type"`
	GeneID CURIE      `json:"gene_id"`
}

// NewGene validates and builds a Gene.
func NewGene(geneID CURIE) (*Gene, error) {
	g := &Gene{Type: TypeGene, GeneID: geneID}
	if err := g.Validate(constructorOptions); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the discriminator and the gene identifier syntax.
func (g *Gene) Validate(_ Options) error {
	if g.Type != TypeGene {
		return validation.Discriminatorf("type", g.Type, "expected %q", TypeGene)
	}
	if err := g.GeneID.Validate(); err != nil {
		return validation.Wrap("gene_id", err)
	}
	return nil
}
