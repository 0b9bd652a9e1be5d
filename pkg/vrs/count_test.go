package vrs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ga4gh/pkg/validation"
)

func TestNewNumber(t *testing.T) {
	n, err := NewNumber(3)
	require.NoError(t, err)
	require.Equal(t, int64(3), n.Value)

	_, err = NewNumber(0)
	require.NoError(t, err)

	_, err = NewNumber(-1)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleFormat})
}

func TestNewRange(t *testing.T) {
	r, err := NewRange(Bound(1), Bound(3))
	require.NoError(t, err)
	require.Equal(t, TypeRange, r.Type)

	// Half-open and fully open brackets are valid.
	_, err = NewRange(nil, Bound(3))
	require.NoError(t, err)
	_, err = NewRange(Bound(1), nil)
	require.NoError(t, err)
	_, err = NewRange(nil, nil)
	require.NoError(t, err)

	_, err = NewRange(Bound(5), Bound(2))
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleFormat})
	_, err = NewRange(Bound(-1), Bound(2))
	require.Error(t, err)
}
