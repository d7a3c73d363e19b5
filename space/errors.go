// SPDX-License-Identifier: MIT
// Package space: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All operations
// MUST return these sentinels and tests MUST check them via errors.Is.
// Construction failures are configuration errors surfaced immediately;
// nothing is retried or degraded.
package space

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "space: ..." for consistency and easy
// grepping. Do NOT %w-wrap these sentinels when returning directly; if
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary — callers still match via errors.Is.

var (
	// ErrDimensionCoverage is returned by New when the constant set does
	// not span the base dimensions correctly: more than six constants,
	// or fewer than six whose vectors do not leave exactly the
	// complementary number of base dimensions fully uncovered.
	ErrDimensionCoverage = errors.New("space: constant set does not cover dimensions correctly")

	// ErrSingularBasis is returned by New when the assembled 6×6 basis
	// matrix cannot be inverted — the constants are dimensionally
	// dependent and define no coordinate system.
	ErrSingularBasis = errors.New("space: basis matrix is singular")

	// ErrSpaceMismatch is returned by BasisUnit.Mul/Div when the two
	// operands belong to spaces with different basis matrices.
	ErrSpaceMismatch = errors.New("space: operands belong to different unit spaces")
)
