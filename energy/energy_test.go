// Package energy_test contains unit tests for the energy-conversion façade.
package energy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvantor/planck/energy"
	"github.com/kvantor/planck/unit"
)

const floatTol = 1e-9 // relative tolerance for round-trips

// TestEnergy_ElectronRestMass verifies the concrete scenario: the
// 511 keV static electron energy converts to the electron rest mass,
// and the inverse constructor recovers the energy.
func TestEnergy_ElectronRestMass(t *testing.T) {
	e := energy.New(511e3 * unit.Qe.Value)

	m := e.Mass()
	assert.Equal(t, unit.Mass, m.Unit)
	assert.InEpsilon(t, unit.Me.Value, m.Value, 1e-3, "511 keV is the electron rest energy")

	back := energy.FromMass(m.Value)
	assert.InEpsilon(t, e.SI(), back.SI(), floatTol)

	// Cross-check against the catalogue electron mass directly.
	ev := energy.FromMass(unit.Me.Value).EV()
	assert.InDelta(t, 510998.95, ev, 0.5, "m_e·c²/e in electron-volts")
}

// TestEnergy_EVRoundTrip verifies FromEV(E.EV()) == E for a spread of
// magnitudes.
func TestEnergy_EVRoundTrip(t *testing.T) {
	for _, joules := range []float64{1e-21, 1.0, 3.14e5, 8.19e-14} {
		e := energy.New(joules)
		assert.InEpsilon(t, joules, energy.FromEV(e.EV()).SI(), floatTol)
	}
}

// TestEnergy_Wavenumber verifies the natural-length conversion E/(ħc)
// and the reciprocal wavelength.
func TestEnergy_Wavenumber(t *testing.T) {
	const joules = 3.0e-19 // visible-light photon
	e := energy.New(joules)

	k := e.Wavenumber()
	want := joules / (unit.Hbar.Value * unit.C.Value)
	assert.InEpsilon(t, want, k.Value, floatTol)
	assert.InEpsilon(t, 1/want, e.Wavelength(), floatTol)

	back := energy.FromWavelength(e.Wavelength())
	assert.InEpsilon(t, joules, back.SI(), floatTol)
}

// TestEnergy_Freq verifies the angular-frequency conversion E/ħ and
// its round-trip.
func TestEnergy_Freq(t *testing.T) {
	const joules = 6.6e-34
	e := energy.New(joules)

	f := e.Freq()
	assert.Equal(t, unit.Frequency, f.Unit)
	assert.InEpsilon(t, joules/unit.Hbar.Value, f.Value, floatTol)

	back := energy.FromFreq(f.Value)
	assert.InEpsilon(t, joules, back.SI(), floatTol)
}

// TestEnergy_MassRoundTrip verifies FromMass(E.Mass()) == E over a
// spread of magnitudes.
func TestEnergy_MassRoundTrip(t *testing.T) {
	for _, joules := range []float64{1e-13, 1.0, 9e16} {
		e := energy.New(joules)
		assert.InEpsilon(t, joules, energy.FromMass(e.Mass().Value).SI(), floatTol)
		assert.InEpsilon(t, joules/(unit.C.Value*unit.C.Value), e.Mass().Value, floatTol)
	}
}

// TestEnergy_ZeroValue verifies the zero Energy is a well-formed zero
// Joule quantity.
func TestEnergy_ZeroValue(t *testing.T) {
	var e energy.Energy
	assert.Zero(t, e.SI())
	assert.Zero(t, e.EV())
	assert.Zero(t, e.Mass().Value)
}
