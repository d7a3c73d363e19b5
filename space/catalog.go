// SPDX-License-Identifier: MIT
// Package space: the canonical unit-space catalogue. Process-wide,
// built once at package load from statically known-good constant sets
// and never mutated afterwards.
package space

import "github.com/kvantor/planck/unit"

var (
	planck = MustNew([]unit.Constant{
		unit.C, unit.Hbar, unit.G, unit.Qe, unit.KB, unit.NA,
	})
	naturalMass = MustNew([]unit.Constant{
		{Name: "M", Unit: unit.Mass, Value: 1},
		unit.C, unit.Hbar, unit.Qe, unit.KB, unit.NA,
	})
	naturalLength = MustNew([]unit.Constant{
		{Name: "L", Unit: unit.Length, Value: 1},
		unit.C, unit.Hbar, unit.Qe, unit.KB, unit.NA,
	})
)

// Planck returns the Planck unit space: c, ħ, G, e, k_B and N_A all
// fixed to 1. The instance is shared and immutable.
func Planck() *Space { return planck }

// NaturalMass returns the natural unit space where c, ħ, e, k_B, N_A
// are fixed to 1 and the kilogram is kept as the mass unit. Energies
// convert to frequencies (E/ħ) and rest masses (E/c²) in this space.
func NaturalMass() *Space { return naturalMass }

// NaturalLength returns the natural unit space where c, ħ, e, k_B, N_A
// are fixed to 1 and the meter is kept as the length unit. Energies
// convert to wavenumbers (E/ħc) in this space.
func NaturalLength() *Space { return naturalLength }
