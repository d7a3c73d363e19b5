// SPDX-License-Identifier: MIT
// Package space: basis-coordinate types tied to an owning Space.
package space

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/kvantor/planck/unit"
)

// BasisUnit is a dimension vector expressed in the coordinates of a
// particular Space. The Space reference is a non-owning association:
// the Space must outlive every BasisUnit it produced. Arithmetic is
// restricted to operands of the same space (compared by Space.Equal,
// i.e. by basis-matrix value, not identity).
type BasisUnit struct {
	coords unit.Vec
	space  *Space
}

// Coords returns the raw coordinate vector in this basis.
func (b BasisUnit) Coords() unit.Vec { return b.coords }

// Space returns the owning coordinate system.
func (b BasisUnit) Space() *Space { return b.space }

// Mul returns the product of two basis units (componentwise coordinate
// sum). Returns ErrSpaceMismatch when the operands' spaces differ.
func (b BasisUnit) Mul(o BasisUnit) (BasisUnit, error) {
	if !b.space.Equal(o.space) {
		return BasisUnit{}, ErrSpaceMismatch
	}
	return BasisUnit{coords: b.coords.Mul(o.coords), space: b.space}, nil
}

// Div returns the quotient of two basis units (componentwise coordinate
// difference). Returns ErrSpaceMismatch when the operands' spaces differ.
func (b BasisUnit) Div(o BasisUnit) (BasisUnit, error) {
	if !b.space.Equal(o.space) {
		return BasisUnit{}, ErrSpaceMismatch
	}
	return BasisUnit{coords: b.coords.Div(o.coords), space: b.space}, nil
}

// Pow returns the basis unit raised to the integer power k. Same-space
// trivially, so no error surface.
func (b BasisUnit) Pow(k int) BasisUnit {
	return BasisUnit{coords: b.coords.Pow(k), space: b.space}
}

// SI projects the basis coordinates back to the raw SI dimension
// vector: coordinates dotted with the forward (non-inverted) basis
// matrix. Exact left inverse of Space.ConvertUnit up to float noise.
func (b BasisUnit) SI() unit.Vec {
	var out mat.VecDense
	out.MulVec(b.space.fwd.T(), mat.NewVecDense(unit.DimCount, b.coords[:]))
	var v unit.Vec
	for i := 0; i < unit.DimCount; i++ {
		v[i] = out.AtVec(i)
	}
	return v
}

// String renders the coordinates like unit.Vec.String but with the
// owning space's per-row labels instead of the SI letters, e.g.
// "[hbar]1/2 [m]-1/2 [w]-1/2".
func (b BasisUnit) String() string {
	return unit.Format(b.coords, b.space.labels)
}

// Quantity is a physical value expressed in the coordinates of a
// Space: the natural-unit counterpart of unit.Constant, produced by
// Space.ConvertValue and Space.Factor.
type Quantity struct {
	Name  string
	Unit  BasisUnit
	Value float64
}

// String renders the quantity as "<name> = <value> <basis-unit>".
func (q Quantity) String() string {
	return fmt.Sprintf("%s = %v %s", q.Name, q.Value, q.Unit)
}
