// SPDX-License-Identifier: MIT
// Package space: construction of unit spaces and the conversion kernels.
package space

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kvantor/planck/unit"
)

// identityValue is the SI value carried by an identity (uncovered
// base-dimension) row: one SI base unit equals 1 by definition.
const identityValue = 1.0

// Space is a coordinate system for dimension vectors defined by a set
// of physical constants. It caches the forward basis matrix (rows =
// defining constants, padded with SI identity rows when the set is
// partial), its inverse, and per-row labels and SI values. A Space is
// immutable after New returns and may be shared read-only across
// goroutines without locking.
type Space struct {
	fwd    *mat.Dense             // 6×6 forward basis matrix, rows stacked in placement order
	inv    *mat.Dense             // cached inverse of fwd, computed once at construction
	labels [unit.DimCount]string  // per-row display labels (constant names or SI letters)
	values [unit.DimCount]float64 // per-row SI values (identity rows carry 1)
}

// New builds a Space from an ordered list of physical constants.
//
// Implementation:
//   - Stage 1: Validate the coverage invariant. With N == 6 the stacked
//     dimension vectors are used directly, in the given order. With
//     N < 6 the constants' vectors must leave exactly 6−N base
//     dimensions all-zero; constants fill the covered dimension slots
//     in increasing dimension order, uncovered slots become SI identity
//     rows with value 1. N > 6 is rejected outright.
//   - Stage 2: Invert the assembled 6×6 matrix once via gonum; the
//     inverse is the basis-change operator for the Space's lifetime.
//
// Inputs:
//   - constants: ordered, dimensionally independent defining constants.
//     The slice is read, never retained.
//
// Returns:
//   - *Space: the immutable coordinate system.
//
// Errors:
//   - ErrDimensionCoverage — N > 6, or the all-zero column count of the
//     stacked vectors differs from 6−N.
//   - ErrSingularBasis — the assembled matrix does not invert
//     (dimensionally dependent set, including overlapping coverage that
//     slips past the count check).
//
// Complexity:
//   - Time O(1) for the fixed 6×6 inversion; Space construction is a
//     one-off configuration step.
func New(constants []unit.Constant) (*Space, error) {
	n := len(constants)
	if n > unit.DimCount {
		return nil, fmt.Errorf("%d constants for %d dimensions: %w", n, unit.DimCount, ErrDimensionCoverage)
	}

	s := &Space{}
	data := make([]float64, unit.DimCount*unit.DimCount)

	if n == unit.DimCount {
		// Full basis: rows are the constants' vectors in the given order.
		var i, j int // loop iterators
		for i = 0; i < n; i++ {
			for j = 0; j < unit.DimCount; j++ {
				data[i*unit.DimCount+j] = constants[i].Unit[j]
			}
			s.labels[i] = constants[i].Name
			s.values[i] = constants[i].Value
		}
	} else {
		// Partial basis: locate the base dimensions touched by any constant.
		var covered [unit.DimCount]bool
		uncovered := unit.DimCount
		var i, j int // loop iterators
		for i = 0; i < n; i++ {
			for j = 0; j < unit.DimCount; j++ {
				if constants[i].Unit[j] != 0 && !covered[j] {
					covered[j] = true
					uncovered--
				}
			}
		}
		if uncovered != unit.DimCount-n {
			return nil, fmt.Errorf("%d constants leave %d of %d dimensions uncovered: %w",
				n, uncovered, unit.DimCount, ErrDimensionCoverage)
		}

		// Constants fill covered dimension slots in increasing dimension
		// order; uncovered slots become SI identity rows.
		next := 0
		for i = 0; i < unit.DimCount; i++ {
			if covered[i] {
				for j = 0; j < unit.DimCount; j++ {
					data[i*unit.DimCount+j] = constants[next].Unit[j]
				}
				s.labels[i] = constants[next].Name
				s.values[i] = constants[next].Value
				next++
				continue
			}
			data[i*unit.DimCount+i] = 1
			s.labels[i] = unit.Dim(i).String()
			s.values[i] = identityValue
		}
	}

	s.fwd = mat.NewDense(unit.DimCount, unit.DimCount, data)
	s.inv = mat.NewDense(unit.DimCount, unit.DimCount, nil)
	if err := s.inv.Inverse(s.fwd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularBasis, err)
	}
	return s, nil
}

// MustNew is like New but panics on error. Reserve it for statically
// known-good constant sets (the package catalogue); a panic here is a
// programmer error, mirroring the fatal-configuration contract.
func MustNew(constants []unit.Constant) *Space {
	s, err := New(constants)
	if err != nil {
		panic(err)
	}
	return s
}

// Equal reports whether two spaces define the same coordinate system:
// exact element-wise equality of their forward basis matrices. Two
// independently constructed spaces over the same constants compare
// equal and their basis units interoperate.
func (s *Space) Equal(o *Space) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	return mat.Equal(s.fwd, o.fwd)
}

// Labels returns the per-row display labels of the basis: defining
// constants' names in their placed row order, SI letters for identity
// rows.
func (s *Space) Labels() [unit.DimCount]string { return s.labels }

// ConvertUnit maps an SI dimension vector into coordinates of this
// basis (row vector times the cached inverse matrix). Well-defined for
// any SI vector, not only those with integer basis coordinates; total
// function, no error conditions.
func (s *Space) ConvertUnit(u unit.Vec) BasisUnit {
	var out mat.VecDense
	out.MulVec(s.inv.T(), mat.NewVecDense(unit.DimCount, u[:]))
	var coords unit.Vec
	for i := 0; i < unit.DimCount; i++ {
		coords[i] = out.AtVec(i)
	}
	return BasisUnit{coords: coords, space: s}
}

// ConvertValue re-expresses a constant's SI value in this basis.
//
// Implementation:
//   - Stage 1: Convert the constant's dimension vector to basis
//     coordinates via ConvertUnit.
//   - Stage 2: Compute the conversion factor Π valueᵢ^coordᵢ over all
//     basis rows — the SI value that one unit of the target quantity
//     equals when reconstructed from the defining constants (identity
//     rows contribute 1) — and divide the SI value by it.
//
// Returns:
//   - Quantity carrying the original name, the basis coordinates and
//     the rescaled natural-unit value.
//
// Complexity: O(1) — one matrix-vector product and six Pow calls.
func (s *Space) ConvertValue(c unit.Constant) Quantity {
	bu := s.ConvertUnit(c.Unit)
	return Quantity{
		Name:  c.Name,
		Unit:  bu,
		Value: c.Value / s.factorOf(bu.coords),
	}
}

// Factor answers "how many SI units equal one natural unit" of the
// given dimension: the inverse of ConvertValue applied to a value-1
// anonymous constant. Callers must not confuse the two directions —
// ConvertValue scales SI→natural, Factor reports natural→SI.
func (s *Space) Factor(u unit.Vec) Quantity {
	q := s.ConvertValue(unit.Constant{Unit: u, Value: 1})
	q.Value = 1 / q.Value
	return q
}

// UnitTo computes the dimension of the multiplicative factor F with
// origin · F = target, expressed in basis coordinates.
func (s *Space) UnitTo(origin, target unit.Vec) BasisUnit {
	return s.ConvertUnit(target.Div(origin))
}

// ValueTo converts a physical quantity into its equivalent of the
// target dimension: the quotient dimension target/origin is pushed
// through the basis, its SI factor reconstructed, and the origin value
// scaled by it. The result is an anonymous SI constant carrying the
// target dimension — e.g. under the natural-mass space an energy maps
// to the rest mass E/c².
func (s *Space) ValueTo(origin unit.Constant, target unit.Vec) unit.Constant {
	f := s.Factor(target.Div(origin.Unit))
	return unit.Constant{Unit: target, Value: origin.Value * f.Value}
}

// factorOf reconstructs the SI value of the natural-unit combination
// with the given basis coordinates: Π valuesᵢ^coordsᵢ.
func (s *Space) factorOf(coords unit.Vec) float64 {
	f := 1.0
	for i := 0; i < unit.DimCount; i++ {
		if coords[i] == 0 {
			continue // skip exact zeros; Pow(x, 0) is 1
		}
		f *= math.Pow(s.values[i], coords[i])
	}
	return f
}
