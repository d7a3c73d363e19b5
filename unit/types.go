// Package unit: domain types for the dimension algebra.
// This file intentionally contains ONLY the core types and their
// algebra. Display lives in format.go, the catalogue in catalog.go,
// parsing in parse.go, errors in errors.go per the global conventions.
package unit

import (
	"fmt"
	"math"
)

// DimCount is the number of SI base dimensions spanned by a Vec.
const DimCount = 6

// Dim indexes one SI base dimension inside a Vec.
// Determinism relies on the fixed ordering T, L, M, I, K, N.
type Dim int

// Base dimension indices, in vector order.
const (
	DimTime        Dim = iota // seconds, [T]
	DimLength                 // meters, [L]
	DimMass                   // kilograms, [M]
	DimCurrent                // amperes, [I]
	DimTemperature            // kelvin, [K]
	DimAmount                 // mol, [N]
)

// dimLetters maps a Dim to its display letter.
const dimLetters = "TLMIKN"

// String returns the single-letter SI tag of the dimension ("T".."N").
func (d Dim) String() string {
	if d < 0 || d >= DimCount {
		return "?"
	}
	return string(dimLetters[d])
}

// Vec is a dimension vector: six real exponents over the ordered base
// dimensions {T, L, M, I, K, N}. The zero value is the dimensionless
// unit. Vec is an immutable value type — every operation returns a new
// vector and never touches its operands.
//
// Exponents are exact integers or simple rationals in practice but are
// stored as float64; use IsZero/Eq (rational-tolerant) rather than ==
// when comparing vectors that went through fractional arithmetic.
type Vec [DimCount]float64

// Base returns the unit vector of a single base dimension.
// Complexity: O(1).
func Base(d Dim) Vec {
	var v Vec
	v[d] = 1
	return v
}

// Mul returns the unit product v·o, i.e. the componentwise sum of
// exponents. Total function, no error conditions.
func (v Vec) Mul(o Vec) Vec {
	var r Vec
	for i := 0; i < DimCount; i++ {
		r[i] = v[i] + o[i]
	}
	return r
}

// Div returns the unit quotient v/o, i.e. the componentwise difference
// of exponents. Total function, no error conditions.
func (v Vec) Div(o Vec) Vec {
	var r Vec
	for i := 0; i < DimCount; i++ {
		r[i] = v[i] - o[i]
	}
	return r
}

// Pow returns the unit raised to the integer power k, i.e. every
// exponent scaled by k. Pow(0) yields the dimensionless vector.
func (v Vec) Pow(k int) Vec {
	var r Vec
	for i := 0; i < DimCount; i++ {
		r[i] = v[i] * float64(k)
	}
	return r
}

// Constant pairs a display name with a dimension vector and a numeric
// value in SI units. An anonymous constant (Name == "") is the normal
// result of arithmetic composition; only leaf physical constants carry
// names. Value and Unit always travel together: every operation updates
// both consistently.
type Constant struct {
	Name  string
	Unit  Vec
	Value float64
}

// Mul returns the anonymous product of two constants: units multiply,
// values multiply.
func (c Constant) Mul(o Constant) Constant {
	return Constant{Unit: c.Unit.Mul(o.Unit), Value: c.Value * o.Value}
}

// Div returns the anonymous quotient of two constants: units divide,
// values divide.
func (c Constant) Div(o Constant) Constant {
	return Constant{Unit: c.Unit.Div(o.Unit), Value: c.Value / o.Value}
}

// Pow returns the anonymous k-th power of the constant: unit exponents
// scale by k, the value is raised to the k-th power.
func (c Constant) Pow(k int) Constant {
	return Constant{Unit: c.Unit.Pow(k), Value: math.Pow(c.Value, float64(k))}
}

// String renders the constant as "<name> = <value> <unit>".
func (c Constant) String() string {
	return fmt.Sprintf("%s = %v %s", c.Name, c.Value, c.Unit)
}
