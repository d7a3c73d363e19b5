// Package planck is a small dimensional-analysis toolkit: express any
// physical unit as an exponent vector over the six SI base dimensions,
// compose units algebraically, and convert quantities between SI and
// arbitrary "natural" unit systems defined by physical constants.
//
// 🚀 What is planck?
//
//	A pure-Go library that brings together:
//		• Dimension vectors: products, quotients and integer powers over {T,L,M,I,K,N}
//		• Physical constants: value + dimension composed together
//		• Unit spaces: re-express any unit in a basis of dimensionally-independent
//		  constants (c, ħ, G, e, k_B, N_A, ...) and rescale its value consistently
//		• Energy conversions: J ↔ eV ↔ wavelength ↔ frequency ↔ rest mass
//
// ✨ Why choose planck?
//
//   - Immutable value types – every operation returns a new value, nothing mutates
//   - Fail-fast configuration – degenerate constant sets are rejected at construction
//   - Concurrency-safe – all catalogue constants and spaces are read-only after init
//   - Small surface – three packages, one concern each
//
// Everything is organized under three subpackages:
//
//	unit/   — dimension-vector and constant algebra, catalogue, display, parser
//	space/  — the basis-change engine (UnitSpace), basis units, Planck & natural spaces
//	energy/ — the energy-conversion façade built on top of the spaces
//
// Quick example:
//
//	e := energy.FromEV(511e3)       // electron rest energy
//	fmt.Println(e.Mass().Value)     // ≈ 9.109e-31 kg
//	fmt.Println(e.Wavelength())     // reduced Compton wavelength
//
// See each package's doc.go for details and example_test.go for runnable
// scenarios.
//
//	go get github.com/kvantor/planck
package planck
