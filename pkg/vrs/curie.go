// Package vrs implements the GA4GH Variation Representation object model: a
// typed, validated set of value objects describing genomic variation. Every
// public constructor and parser is the sole route to an instance of its
// type; a value that fails validation is never returned. Valid instances
// serialize deterministically (see Canonical) so external tooling can derive
// content-based identifiers from them.
package vrs

import (
	"regexp"
	"strings"

	"ga4gh/pkg/validation"
)

// curiePattern is the CURIE grammar: a word-character-led prefix without
// whitespace or colons, a colon, and a non-whitespace reference.
var curiePattern = regexp.MustCompile(`^\w[^:\s]*:\S+$`)

// CURIE is a compact URI of the form prefix:reference. Values are
// case-sensitive and never normalized. A CURIE is used both as object-level
// identifier metadata and as an external reference: the model never resolves
// one, it only guarantees the syntax.
type CURIE string

// ParseCURIE validates s against the CURIE grammar.
func ParseCURIE(s string) (CURIE, error) {
	c := CURIE(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks the CURIE grammar.
func (c CURIE) Validate() error {
	if !curiePattern.MatchString(string(c)) {
		return validation.Formatf("", string(c), "not a valid CURIE (prefix:reference)")
	}
	return nil
}

// Prefix returns the namespace token before the first colon.
func (c CURIE) Prefix() string {
	if i := strings.IndexByte(string(c), ':'); i >= 0 {
		return string(c)[:i]
	}
	return ""
}

// Reference returns the token after the first colon.
func (c CURIE) Reference() string {
	if i := strings.IndexByte(string(c), ':'); i >= 0 {
		return string(c)[i+1:]
	}
	return ""
}

func (c CURIE) String() string {
	return string(c)
}
