package vrs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"ga4gh/pkg/validation"
)

func TestNewSequenceInterval_Ordering(t *testing.T) {
	iv, err := NewSequenceInterval(Bound(100), Bound(200))
	require.NoError(t, err)
	require.Equal(t, TypeSequenceInterval, iv.Type)

	// Zero-length interval marks an insertion point.
	_, err = NewSequenceInterval(Bound(100), Bound(100))
	require.NoError(t, err)

	_, err = NewSequenceInterval(Bound(200), Bound(100))
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleFormat})
}

func TestNewSequenceInterval_OpenBounds(t *testing.T) {
	iv, err := NewSequenceInterval(nil, Bound(55))
	require.NoError(t, err)
	require.Nil(t, iv.Start)

	_, err = NewSequenceInterval(nil, nil)
	require.NoError(t, err)
}

func TestNewSequenceInterval_NegativeBound(t *testing.T) {
	_, err := NewSequenceInterval(Bound(-1), Bound(5))
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleFormat})
	_, err = NewSequenceInterval(Bound(0), Bound(-5))
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleFormat})
}

func TestSequenceInterval_OrderingProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.Int64Range(0, 1<<40).Draw(rt, "start")
		end := rapid.Int64Range(0, 1<<40).Draw(rt, "end")
		_, err := NewSequenceInterval(Bound(start), Bound(end))
		if start <= end {
			if err != nil {
				rt.Fatalf("expected success for start=%d end=%d: %v", start, end, err)
			}
		} else if err == nil {
			rt.Fatalf("expected failure for start=%d end=%d", start, end)
		}
	})
}

func TestNewSimpleInterval(t *testing.T) {
	iv, err := NewSimpleInterval(10, 20)
	require.NoError(t, err)
	require.Equal(t, TypeSimpleInterval, iv.Type)

	_, err = NewSimpleInterval(20, 10)
	require.Error(t, err)
	_, err = NewSimpleInterval(-3, 10)
	require.Error(t, err)
}

func TestNewCytobandInterval(t *testing.T) {
	iv, err := NewCytobandInterval("q13.32", "q13.33")
	require.NoError(t, err)
	require.Equal(t, TypeCytobandInterval, iv.Type)

	_, err = NewCytobandInterval("chr13", "q13.33")
	require.Error(t, err)
	_, err = NewCytobandInterval("pter", "cen")
	require.NoError(t, err)
}
