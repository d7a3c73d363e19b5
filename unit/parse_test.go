// Package unit_test: tests for the text adapter.
package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantor/planck/unit"
)

// TestParse_RoundTrip verifies Parse(v.String()) == v for catalogue
// vectors with integer exponents.
func TestParse_RoundTrip(t *testing.T) {
	for _, v := range []unit.Vec{
		unit.Energy, unit.Charge, unit.Force, unit.Gravity, unit.Boltzmann, {},
	} {
		got, err := unit.Parse(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got, "round trip through %q", v.String())
	}
}

// TestParse_DefaultExponent verifies that a bare "[X]" token means
// exponent 1.
func TestParse_DefaultExponent(t *testing.T) {
	got, err := unit.Parse("[T] [M]-2")
	require.NoError(t, err)
	assert.Equal(t, unit.Vec{1, 0, -2, 0, 0, 0}, got)
}

// TestParse_Empty verifies that an empty or all-space string parses to
// the dimensionless vector.
func TestParse_Empty(t *testing.T) {
	got, err := unit.Parse("   ")
	require.NoError(t, err)
	assert.Equal(t, unit.Vec{}, got)
}

// TestParse_Errors verifies the two sentinel errors of the adapter.
func TestParse_Errors(t *testing.T) {
	_, err := unit.Parse("[X]2")
	assert.ErrorIs(t, err, unit.ErrUnknownDimension, "X is not a base dimension")

	_, err = unit.Parse("T2")
	assert.ErrorIs(t, err, unit.ErrBadExponent, "unbracketed token must be rejected")

	_, err = unit.Parse("[T]1/2")
	assert.ErrorIs(t, err, unit.ErrBadExponent, "fractional exponents are not part of the text format")
}
