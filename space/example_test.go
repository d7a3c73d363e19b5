// SPDX-License-Identifier: MIT
package space_test

import (
	"fmt"

	"github.com/kvantor/planck/space"
	"github.com/kvantor/planck/unit"
)

// ExampleNew demonstrates a partial basis: ħ, a mass m and a frequency
// ω span {T, L, M}, so I, K, N are kept as SI identity rows. The
// length dimension re-expressed in this basis is the familiar
// harmonic-oscillator length scale √(ħ/mω).
func ExampleNew() {
	ho, err := space.New([]unit.Constant{
		unit.Hbar,
		{Name: "m", Unit: unit.Mass, Value: 1},
		{Name: "w", Unit: unit.Frequency, Value: 1},
	})
	if err != nil {
		fmt.Println("configuration error:", err)
		return
	}
	fmt.Println(ho.ConvertUnit(unit.Length))
	// Output: [hbar]1/2 [m]-1/2 [w]-1/2
}

// ExampleSpace_ConvertUnit shows the Planck-basis coordinates of the
// energy dimension: E = c^(5/2)·ħ^(1/2)·G^(-1/2).
func ExampleSpace_ConvertUnit() {
	fmt.Println(space.Planck().ConvertUnit(unit.Energy))
	// Output: [c]5/2 [hbar]1/2 [G]-1/2
}
