package vrsatile

import (
	"strings"

	"ga4gh/pkg/validation"
)

// VCFRecord anchors a variation descriptor to the coordinates of a VCF
// record. The four coordinate fields form an all-or-none group: a record
// present at all must carry chrom, pos, ref, and alt together.
type VCFRecord struct {
	GenomeAssembly string `json:"genome_assembly"`
	Chrom          string `json:"chrom"`
	Pos            int64  `json:"pos"`
	ID             string `json:"id,omitempty"`
	Ref            string `json:"ref"`
	Alt            string `json:"alt"`
	Qual           string `json:"qual,omitempty"`
	Filter         string `json:"filter,omitempty"`
	Info           string `json:"info,omitempty"`
}

// NewVCFRecord validates and builds a VCFRecord.
func NewVCFRecord(genomeAssembly, chrom string, pos int64, ref, alt string) (*VCFRecord, error) {
	r := &VCFRecord{GenomeAssembly: genomeAssembly, Chrom: chrom, Pos: pos, Ref: ref, Alt: alt}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate enforces the grouped coordinate invariant and the assembly
// label. VCF positions are 1-based, so zero marks an absent pos.
func (r *VCFRecord) Validate() error {
	if r.GenomeAssembly == "" {
		return validation.Formatf("genome_assembly", "", "genome assembly is required")
	}
	var missing []string
	if r.Chrom == "" {
		missing = append(missing, "chrom")
	}
	if r.Pos <= 0 {
		missing = append(missing, "pos")
	}
	if r.Ref == "" {
		missing = append(missing, "ref")
	}
	if r.Alt == "" {
		missing = append(missing, "alt")
	}
	if len(missing) > 0 {
		return validation.MutualExclusionf("", "vcf coordinates are all-or-none; missing %s", strings.Join(missing, ", "))
	}
	return nil
}
