package vrs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ga4gh/pkg/validation"
)

func TestParseCURIE_Valid(t *testing.T) {
	c, err := ParseCURIE("refseq:NC_000001.11")
	require.NoError(t, err)
	require.Equal(t, "refseq", c.Prefix())
	require.Equal(t, "NC_000001.11", c.Reference())
}

func TestParseCURIE_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"no colon", "no-colon-here"},
		{"empty", ""},
		{"empty prefix", ":reference"},
		{"empty reference", "prefix:"},
		{"whitespace in prefix", "pre fix:ref"},
		{"whitespace in reference", "prefix:re f"},
		{"leading colon prefix", ":a:b"},
		{"prefix starts with symbol", "-prefix:ref"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCURIE(tc.input)
			require.Error(t, err)
			var verr *validation.Error
			require.True(t, errors.As(err, &verr))
			require.Equal(t, validation.RuleFormat, verr.Rule)
		})
	}
}

func TestCURIE_CaseSensitive(t *testing.T) {
	// No normalization: distinct cases stay distinct values.
	lower, err := ParseCURIE("ga4gh:va.abc")
	require.NoError(t, err)
	upper, err := ParseCURIE("ga4gh:VA.abc")
	require.NoError(t, err)
	require.NotEqual(t, lower, upper)
}

func TestCURIE_SecondColonAllowedInReference(t *testing.T) {
	c, err := ParseCURIE("ga4gh:VA:extra")
	require.NoError(t, err)
	require.Equal(t, "ga4gh", c.Prefix())
	require.Equal(t, "VA:extra", c.Reference())
}
