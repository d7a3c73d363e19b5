// Package unit: rational rendering of exponent vectors.
// Display is a presentation concern kept apart from the float algebra:
// the algebra is tested with numeric tolerance, never through strings.
package unit

import (
	"math/big"
	"strings"
)

// MaxDenominator bounds the denominator of the rational approximation
// used for display and zero-testing. Exponents produced by the algebra
// are simple fractions (1/2, 5/2, ...), so any float noise collapses
// back onto the intended rational well below this bound.
const MaxDenominator = 1_000_000

// approxRat returns the closest fraction to x with denominator at most
// MaxDenominator, via the standard continued-fraction bound selection.
// NaN and ±Inf collapse to 0/1 (they never arise from the algebra).
func approxRat(x float64) *big.Rat {
	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		return new(big.Rat)
	}
	maxDen := big.NewInt(MaxDenominator)
	if r.Denom().Cmp(maxDen) <= 0 {
		return r
	}

	// Walk the continued-fraction convergents p/q of x until the next
	// denominator would exceed the bound.
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())
	a, m := new(big.Int), new(big.Int)
	for {
		a.DivMod(n, d, m) // floor division; d stays positive
		q2 := new(big.Int).Add(new(big.Int).Mul(a, q1), q0)
		if q2.Cmp(maxDen) > 0 {
			break
		}
		p2 := new(big.Int).Add(new(big.Int).Mul(a, p1), p0)
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = new(big.Int).Set(d), new(big.Int).Set(m)
	}

	// Two candidate bounds: the last convergent, and the best
	// semiconvergent that still fits under the denominator cap.
	k := new(big.Int).Sub(maxDen, q0)
	k.Div(k, q1)
	semi := new(big.Rat).SetFrac(
		new(big.Int).Add(new(big.Int).Mul(k, p1), p0),
		new(big.Int).Add(new(big.Int).Mul(k, q1), q0),
	)
	conv := new(big.Rat).SetFrac(p1, q1)

	dConv := new(big.Rat).Sub(conv, r)
	dConv.Abs(dConv)
	dSemi := new(big.Rat).Sub(semi, r)
	dSemi.Abs(dSemi)
	if dConv.Cmp(dSemi) <= 0 {
		return conv
	}
	return semi
}

// Format renders a vector against an arbitrary label set: every
// component whose rational approximation is nonzero appears as
// "[<label>]<rational>", space-joined in dimension order. A vector of
// all (approximately) zero exponents renders as the empty string.
//
// The SI rendering is Vec.String; space.BasisUnit reuses Format with
// the per-row labels of its owning space.
func Format(v Vec, labels [DimCount]string) string {
	parts := make([]string, 0, DimCount)
	for i := 0; i < DimCount; i++ {
		r := approxRat(v[i])
		if r.Sign() == 0 {
			continue
		}
		parts = append(parts, "["+labels[i]+"]"+r.RatString())
	}
	return strings.Join(parts, " ")
}

// siLabels are the fixed single-letter SI dimension tags.
var siLabels = [DimCount]string{"T", "L", "M", "I", "K", "N"}

// String renders the vector with SI dimension letters, e.g. the Joule
// as "[T]-2 [L]2 [M]1". Dimensionless vectors render as "".
func (v Vec) String() string { return Format(v, siLabels) }

// IsZero reports whether every exponent is zero under the rational
// approximation, i.e. whether the vector is dimensionless up to float
// noise.
func (v Vec) IsZero() bool {
	for i := 0; i < DimCount; i++ {
		if approxRat(v[i]).Sign() != 0 {
			return false
		}
	}
	return true
}

// Eq reports whether two vectors carry the same dimension up to float
// noise, by testing that their quotient is dimensionless.
func (v Vec) Eq(o Vec) bool { return v.Div(o).IsZero() }
