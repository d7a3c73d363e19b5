// Package unit: sentinel error set.
// All errors of this package live here and are matched via errors.Is.
// Context is added only by wrapping with fmt.Errorf("ctx: %w", ErrX)
// at the call site; the sentinels themselves are never wrapped twice.
package unit

import "errors"

var (
	// ErrUnknownDimension is returned by Parse when a bracketed letter
	// does not name one of the six base dimensions T, L, M, I, K, N.
	ErrUnknownDimension = errors.New("unit: unknown dimension letter")

	// ErrBadExponent is returned by Parse when a token is not of the
	// form "[X]" or "[X]<integer>".
	ErrBadExponent = errors.New("unit: malformed exponent token")
)
