// File: hyperbolic.go
// Title: Hyperbolic Functions
// Description: Sinh, Cosh, Tanh and their inverses for uncertain values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-12

package errmath

import (
	"math"

	"github.com/msto63/errc/foundation/utils/uncertain"
)

// Sinh returns sinh(x) ± cosh x·dx
func Sinh[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Sinh, math.Cosh)
}

// Cosh returns cosh(x) ± |sinh x|·dx
func Cosh[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Cosh, math.Sinh)
}

// Tanh returns tanh(x) ± dx/cosh²x
func Tanh[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Tanh, func(n float64) float64 {
		c := math.Cosh(n)
		return 1 / (c * c)
	})
}

// Asinh returns asinh(x) ± dx/sqrt(1+x²)
func Asinh[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Asinh, func(n float64) float64 {
		return 1 / math.Sqrt(1+n*n)
	})
}

// Acosh returns acosh(x) ± dx/sqrt(x²-1)
func Acosh[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Acosh, func(n float64) float64 {
		return 1 / math.Sqrt(n*n-1)
	})
}

// Atanh returns atanh(x) ± dx/|1-x²|
func Atanh[V Float, E uncertain.Float](x uncertain.Value[V, E]) uncertain.Value[V, E] {
	return unary(x, math.Atanh, func(n float64) float64 {
		return 1 / (1 - n*n)
	})
}
