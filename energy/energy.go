package energy

import (
	"github.com/kvantor/planck/space"
	"github.com/kvantor/planck/unit"
)

// Energy wraps one SI energy value (dimension M·L²·T⁻², Joule). The
// zero value is a zero-Joule energy. Immutable; derived quantities are
// computed on demand.
type Energy struct {
	si unit.Constant
}

// New builds an Energy from a raw SI value in Joule.
func New(joules float64) Energy {
	return Energy{si: unit.Constant{Unit: unit.Energy, Value: joules}}
}

// SI returns the wrapped energy value in Joule.
func (e Energy) SI() float64 { return e.si.Value }

// EV returns the energy in electron-volts (SI value over the
// elementary charge).
func (e Energy) EV() float64 { return e.si.Value / unit.Qe.Value }

// Wavenumber converts the energy through the natural-length space,
// yielding E/(ħc) in 1/m — the reduced wavenumber of a photon of this
// energy.
func (e Energy) Wavenumber() space.Quantity {
	return space.NaturalLength().ConvertValue(e.si)
}

// Wavelength returns the reciprocal of the wavenumber: the reduced
// wavelength ħc/E in meters.
func (e Energy) Wavelength() float64 {
	return 1 / e.Wavenumber().Value
}

// Freq converts the energy to the equivalent angular frequency E/ħ via
// the natural-mass space. The result is an SI constant of dimension
// T⁻¹ with the value in rad/s.
func (e Energy) Freq() unit.Constant {
	return space.NaturalMass().ValueTo(e.si, unit.Frequency)
}

// Mass converts the energy to the equivalent rest mass E/c² via the
// natural-mass space. The result is an SI constant of dimension M with
// the value in kilograms.
func (e Energy) Mass() unit.Constant {
	return space.NaturalMass().ValueTo(e.si, unit.Mass)
}

// FromEV builds an Energy from a value in electron-volts.
func FromEV(ev float64) Energy {
	return New(ev * unit.Qe.Value)
}

// FromWavelength builds an Energy from a reduced wavelength in meters,
// pushing the corresponding wavenumber back through the natural-length
// space. Inverse of Wavelength.
func FromWavelength(lambda float64) Energy {
	k := unit.Constant{Unit: unit.Length.Pow(-1), Value: 1 / lambda}
	return New(space.NaturalLength().ValueTo(k, unit.Energy).Value)
}

// FromFreq builds an Energy from an angular frequency in rad/s.
// Inverse of Freq.
func FromFreq(freq float64) Energy {
	f := unit.Constant{Unit: unit.Frequency, Value: freq}
	return New(space.NaturalMass().ValueTo(f, unit.Energy).Value)
}

// FromMass builds an Energy from a rest mass in kilograms. Inverse of
// Mass.
func FromMass(mass float64) Energy {
	m := unit.Constant{Unit: unit.Mass, Value: mass}
	return New(space.NaturalMass().ValueTo(m, unit.Energy).Value)
}
