package vrs

import (
	"regexp"

	"ga4gh/pkg/validation"
)

// iupacPattern is the strict-mode residue alphabet: IUPAC codes for nucleic
// acids and amino acids, the stop symbol, and the gap symbol.
var iupacPattern = regexp.MustCompile(`^[A-Z*\-]*$`)

// Sequence is a string of residue characters. An empty Sequence is valid in
// itself (deletions are expressed as empty literal states); contexts that
// require content enforce non-emptiness themselves.
type Sequence string

// Validate checks the residue alphabet. Lenient mode accepts any string;
// strict mode requires IUPAC codes only.
func (s Sequence) Validate(opts Options) error {
	if opts.Strict && !iupacPattern.MatchString(string(s)) {
		return validation.Formatf("", string(s), "sequence must use IUPAC residue characters")
	}
	return nil
}

func (s Sequence) String() string {
	return string(s)
}
