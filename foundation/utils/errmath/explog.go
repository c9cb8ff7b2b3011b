// File: explog.go
// Title: Exponential and Logarithmic Functions
// Description: Exp, Log and their variants, including a logarithm to an
//              arbitrary base with promotion of integral values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-29 v0.1.0: Exp, Log, Log10, Log2
// - 2026-10-12 v0.2.0: Expm1, Exp2, Log1p, Logn and LognIntegral

package errmath

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/msto63/errc/foundation/utils/uncertain"
)

// Exp returns eˣ ± eˣ·dx
func Exp[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Exp, math.Exp)
}

// Expm1 returns eˣ-1 ± eˣ·dx, accurate for x near zero
func Expm1[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Expm1, math.Exp)
}

// Exp2 returns 2ˣ ± 2ˣ·ln2·dx
func Exp2[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Exp2, func(n float64) float64 {
		return math.Exp2(n) * math.Ln2
	})
}

// Log returns ln x ± dx/|x|
func Log[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Log, func(n float64) float64 {
		return 1 / n
	})
}

// Log1p returns ln(1+x) ± dx/|1+x|, accurate for x near zero
func Log1p[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Log1p, func(n float64) float64 {
		return 1 / (1 + n)
	})
}

// Log10 returns log₁₀ x ± dx/|x·ln10|
func Log10[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Log10, func(n float64) float64 {
		return 1 / (n * math.Ln10)
	})
}

// Log2 returns log₂ x ± dx/|x·ln2|
func Log2[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Log2, func(n float64) float64 {
		return 1 / (n * math.Ln2)
	})
}

// Logn returns the logarithm of x to the exact base n
func Logn[V Float, E uncertain.Float](x uncertain.Value[V, E], n float64) uncertain.Value[V, E] {
	lnBase := math.Log(n)
	return unary(x,
		func(v float64) float64 { return math.Log(v) / lnBase },
		func(v float64) float64 { return 1 / (v * lnBase) },
	)
}

// LognIntegral returns the logarithm of an integral x to the exact base n.
// The result is promoted to float64.
func LognIntegral[V constraints.Integer, E uncertain.Float](x uncertain.Value[V, E], n float64) uncertain.Value[float64, E] {
	return Logn(uncertain.Cast[float64](x), n)
}
