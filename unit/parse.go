package unit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// tokenPattern matches one rendered component: a bracketed dimension
// letter followed by an optional signed integer exponent.
var tokenPattern = regexp.MustCompile(`^\[([A-Z])\](-?\d+)?$`)

// Parse is the best-effort inverse of Vec.String: it reads a
// space-separated list of "[X]" / "[X]<integer>" tokens back into a
// vector. A missing exponent means 1; an empty (or all-space) string is
// the dimensionless vector. Only integer exponents are accepted — this
// is a diagnostic text adapter, not a robust wire format.
//
// Errors:
//   - ErrBadExponent      — token does not match the "[X]n" shape.
//   - ErrUnknownDimension — the bracketed letter is not one of TLMIKN.
func Parse(s string) (Vec, error) {
	var v Vec
	for _, tok := range strings.Fields(s) {
		m := tokenPattern.FindStringSubmatch(tok)
		if m == nil {
			return Vec{}, fmt.Errorf("token %q: %w", tok, ErrBadExponent)
		}
		idx := strings.Index(dimLetters, m[1])
		if idx < 0 {
			return Vec{}, fmt.Errorf("token %q: %w", tok, ErrUnknownDimension)
		}
		exp := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return Vec{}, fmt.Errorf("token %q: %w", tok, ErrBadExponent)
			}
			exp = n
		}
		v[idx] = float64(exp)
	}
	return v, nil
}
