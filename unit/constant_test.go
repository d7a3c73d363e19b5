// Package unit_test: tests for the constant (value + dimension) algebra.
package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvantor/planck/unit"
)

// TestConstant_Compose verifies that value and unit travel together
// through products, quotients and powers, and that composed results
// are anonymous.
func TestConstant_Compose(t *testing.T) {
	hw := unit.Hbar.Mul(unit.Constant{Name: "w", Unit: unit.Frequency, Value: 2.0})
	assert.Empty(t, hw.Name, "composition must yield an anonymous constant")
	assert.Equal(t, unit.Action.Mul(unit.Frequency), hw.Unit)
	assert.InEpsilon(t, 2*unit.Hbar.Value, hw.Value, 1e-12)

	ratio := unit.Hbar.Div(unit.Hbar)
	assert.True(t, ratio.Unit.IsZero(), "self-quotient is dimensionless")
	assert.Equal(t, 1.0, ratio.Value)

	c2 := unit.C.Pow(2)
	assert.Equal(t, unit.Speed.Pow(2), c2.Unit)
	assert.InEpsilon(t, unit.C.Value*unit.C.Value, c2.Value, 1e-12)

	inv := unit.C.Pow(-1)
	assert.InEpsilon(t, 1/unit.C.Value, inv.Value, 1e-12)
}

// TestConstant_String verifies the "<name> = <value> <unit>" rendering.
func TestConstant_String(t *testing.T) {
	assert.Equal(t, "c = 2.99792458e+08 [T]-1 [L]1", unit.C.String())
	assert.Equal(t, "NA = 6.02214076e+23 [N]-1", unit.NA.String())

	anon := unit.Constant{Unit: unit.Energy, Value: 1.5}
	assert.Equal(t, " = 1.5 [T]-2 [L]2 [M]1", anon.String())
}

// TestCatalog_DerivedDimensions spot-checks the declarative catalogue
// against hand-computed exponent vectors.
func TestCatalog_DerivedDimensions(t *testing.T) {
	assert.Equal(t, unit.Vec{-2, 2, 1, 0, 0, 0}, unit.Energy, "Joule = kg·m²/s²")
	assert.Equal(t, unit.Vec{1, 0, 0, 1, 0, 0}, unit.Charge, "Coulomb reduces to A·s")
	assert.Equal(t, unit.Vec{-2, 3, -1, 0, 0, 0}, unit.Gravity)
	assert.Equal(t, unit.Vec{-1, 2, 1, 0, 0, 0}, unit.Action)
	assert.Equal(t, unit.Energy.Div(unit.Temperature), unit.Entropy)
	assert.Equal(t, unit.Boltzmann, unit.HeatCapacity)
	assert.Equal(t, unit.Vec{-2, -1, 1, 0, 0, 0}, unit.Pressure, "Pascal = J/m³")
}
