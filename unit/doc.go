// Package unit implements the exponent-vector algebra of physical
// dimensions and the pairing of a dimension with a numeric SI value.
//
// 🚀 What is a dimension vector?
//
//	Every physical unit is a product of powers of the six SI base
//	dimensions, in the fixed order
//
//	  s   [T]  time
//	  m   [L]  length
//	  kg  [M]  mass
//	  A   [I]  current
//	  K   [K]  temperature
//	  mol [N]  amount of substance
//
//	so a unit is fully described by six exponents: Joule = kg·m²·s⁻²
//	is the vector (-2, 2, 1, 0, 0, 0).
//
// ✨ Key features:
//   - Vec — an immutable six-exponent vector with Mul/Div/Pow
//   - Constant — a named dimension + SI value composing under the same algebra
//   - a declarative catalogue of derived dimensions (Speed, Energy, Charge, ...)
//     and canonical constants (C, Hbar, G, Qe, KB, NA, Me)
//   - rational rendering: exponents display as bounded-denominator fractions,
//     e.g. "[T]-1 [L]1/2"
//   - Parse — the best-effort inverse of the text rendering
//
// ⚙️ Usage:
//
//	import "github.com/kvantor/planck/unit"
//
//	joule := unit.Mass.Mul(unit.Speed.Pow(2))
//	fmt.Println(joule)               // [T]-2 [L]2 [M]1
//	fmt.Println(unit.Hbar)           // hbar = 1.054571817e-34 [T]-1 [L]2 [M]1
//
// All values here are plain value types: operations never mutate their
// operands and the catalogue is initialized once and never written again,
// so everything may be shared freely across goroutines.
package unit
