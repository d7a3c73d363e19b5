// Package energy is the conversion façade over the unit-space engine:
// it wraps a raw SI energy value and converts it to and from the other
// quantities an energy is habitually quoted in.
//
// 🚀 Conversions:
//
//	          EV()  ───────  SI value / e
//	   Wavenumber()  ──────  natural-length space, E/(ħc)   [1/m]
//	   Wavelength()  ──────  reciprocal wavenumber           [m]
//	         Freq()  ──────  natural-mass space, E/ħ         [rad/s]
//	         Mass()  ──────  natural-mass space, E/c²        [kg]
//
// Each conversion has an inverse constructor (FromEV, FromWavelength,
// FromFreq, FromMass) going through the same machinery in reverse, so
// round-trips reproduce the original value within float tolerance.
//
// ⚙️ Usage:
//
//	e := energy.FromMass(unit.Me.Value) // electron rest energy
//	fmt.Printf("%.0f eV\n", e.EV())     // ≈ 510999 eV
//
// Derived quantities are computed on demand, never cached; an Energy
// is a plain immutable value.
package energy
