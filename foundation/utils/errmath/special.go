// File: special.go
// Title: Error Functions, Abs and Fma
// Description: Gauss error functions, absolute value and fused multiply-add.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-12

package errmath

import (
	"math"

	"github.com/msto63/errc/foundation/utils/uncertain"
)

// twoOverSqrtPi is the derivative scale of erf
const twoOverSqrtPi = 2 / math.SqrtPi

// Erf returns erf(x) ± (2/√π)·e^(-x²)·dx
func Erf[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Erf, dErf)
}

// Erfc returns erfc(x) ± (2/√π)·e^(-x²)·dx
func Erfc[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Erfc, dErf)
}

func dErf(n float64) float64 {
	return twoOverSqrtPi * math.Exp(-n*n)
}

// Abs returns |x| with the uncertainty unchanged. Any numeric type is accepted.
// For the most negative signed integer the negation wraps and the result stays
// negative, as with Go's unary minus.
func Abs[V uncertain.Number, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	if x.Nominal < 0 {
		return x.Neg()
	}
	return x
}

// Fma returns x·y+z, computed with a single rounding. The product term
// propagates as in Value.Mul and z adds its absolute uncertainty.
func Fma[V Float, E uncertain.Float](x, y, z uncertain.Value[V, E]) uncertain.Value[V, E] {
	a, b, c := float64(x.Nominal), float64(y.Nominal), float64(z.Nominal)
	r := x
	r.Nominal = V(math.FMA(a, b, c))
	r.Uncertainty = E(math.Sqrt(
		sq(contribution(b, float64(x.Uncertainty))) +
			sq(contribution(a, float64(y.Uncertainty))) +
			sq(float64(z.Uncertainty)),
	))
	return r
}

func sq(v float64) float64 { return v * v }
