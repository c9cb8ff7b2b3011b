// File: trig.go
// Title: Trigonometric Functions
// Description: Sin, Cos, Tan, their inverses and Atan2 for uncertain values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29

package errmath

import (
	"math"

	"github.com/msto63/errc/foundation/utils/uncertain"
)

// Sin returns sin(x) ± |cos x|·dx
func Sin[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Sin, math.Cos)
}

// Cos returns cos(x) ± |sin x|·dx
func Cos[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Cos, math.Sin)
}

// Tan returns tan(x) ± dx/cos²x
func Tan[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Tan, func(n float64) float64 {
		c := math.Cos(n)
		return 1 / (c * c)
	})
}

// Asin returns asin(x) ± dx/sqrt(1-x²)
func Asin[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Asin, dAsin)
}

// Acos returns acos(x) ± dx/sqrt(1-x²)
func Acos[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Acos, dAsin)
}

// Atan returns atan(x) ± dx/(1+x²)
func Atan[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Atan, func(n float64) float64 {
		return 1 / (1 + n*n)
	})
}

// Atan2 returns Atan(y / x). The nominal value lies in (-π/2, π/2) and x = 0
// yields ±π/2 or NaN as the quotient does.
func Atan2[V Float, E uncertain.Float](y, x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return Atan(y.Div(x))
}

func dAsin(n float64) float64 {
	return 1 / math.Sqrt(1-n*n)
}
