// File: power.go
// Title: Power and Root Functions
// Description: Pow with uncertain or exact exponent, roots and Hypot.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-29 v0.1.0: Pow, PowN, Sqrt
// - 2026-10-12 v0.2.0: Cbrt and Hypot

package errmath

import (
	"math"

	"github.com/msto63/errc/foundation/utils/uncertain"
)

// Pow returns xʸ with both base and exponent uncertain. The partials are
// y·xʸ⁻¹ and xʸ·ln x; an exact exponent contributes nothing, so a negative
// base with an integral exponent stays finite.
func Pow[V Float, E uncertain.Float](x, y uncertain.Value[V, E]) uncertain.Value[V, E] {
	b, e := float64(x.Nominal), float64(y.Nominal)
	value := math.Pow(b, e)
	return binary(x, y, value, e*math.Pow(b, e-1), value*math.Log(b))
}

// PowN returns xⁿ for an exact exponent n, with uncertainty |n·xⁿ⁻¹|·dx
func PowN[V Float, E uncertain.Float](x uncertain.Value[V, E], n float64) uncertain.Value[V, E] {
	return unary(x,
		func(v float64) float64 { return math.Pow(v, n) },
		func(v float64) float64 { return n * math.Pow(v, n-1) },
	)
}

// Sqrt returns √x ± dx/(2√x)
func Sqrt[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Sqrt, func(n float64) float64 {
		return 1 / (2 * math.Sqrt(n))
	})
}

// Cbrt returns ∛x ± dx/(3·∛x²). Negative arguments are in the domain.
func Cbrt[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Cbrt, func(n float64) float64 {
		c := math.Cbrt(n)
		return 1 / (3 * c * c)
	})
}

// Hypot returns sqrt(x²+y²) ± sqrt((x·dx)²+(y·dy)²)/hypot
func Hypot[V Float, E uncertain.Float](x, y uncertain.Value[V, E]) uncertain.Value[V, E] {
	a, b := float64(x.Nominal), float64(y.Nominal)
	h := math.Hypot(a, b)
	return binary(x, y, h, a/h, b/h)
}
