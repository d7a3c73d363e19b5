// SPDX-License-Identifier: MIT

// Package space implements the basis-change engine for dimension
// vectors: a Space is an alternative coordinate system over the six SI
// base dimensions, defined by an ordered set of dimensionally
// independent physical constants, each implicitly set to value 1.
//
// 🚀 What is a Space?
//
//	Stack the dimension vectors of N constants as rows of a matrix.
//	With N = 6 the stack is the basis matrix directly; with N < 6 the
//	constants must leave exactly 6−N base dimensions untouched, and
//	those dimensions are filled in as SI identity rows. The 6×6 matrix
//	is inverted once at construction; after that, converting any SI
//	dimension vector into basis coordinates — and rescaling any SI
//	value into its natural-unit value — is a single matrix-vector
//	product plus a product of constant powers.
//
// ✨ Key features:
//   - Space — immutable after construction; safe for concurrent reads
//   - BasisUnit — a coordinate vector tied to its owning Space, with
//     algebra restricted to same-space operands and an exact SI() inverse
//   - Quantity — a converted value: name + basis unit + natural value
//   - Planck(), NaturalMass(), NaturalLength() — the canonical spaces
//
// ⚙️ Usage:
//
//	// ħ, a mass and a frequency span {T, L, M}: the harmonic-oscillator basis.
//	ho, err := space.New([]unit.Constant{
//	    unit.Hbar,
//	    {Name: "m", Unit: unit.Mass, Value: 1},
//	    {Name: "w", Unit: unit.Frequency, Value: 1},
//	})
//	if err != nil { ... }
//	fmt.Println(ho.ConvertUnit(unit.Length)) // [hbar]1/2 [m]-1/2 [w]-1/2
//
// Error taxonomy (all fatal, none recovered internally):
//   - ErrDimensionCoverage — constant count vs uncovered-dimension count
//     mismatch at construction (configuration error)
//   - ErrSingularBasis — the assembled basis matrix does not invert
//     (dimensionally dependent constant set; configuration error)
//   - ErrSpaceMismatch — BasisUnit arithmetic across different spaces
//     (usage error)
//
// Linear algebra rides gonum (gonum.org/v1/gonum/mat); this package
// adds only the exponent/value bookkeeping on top.
package space
