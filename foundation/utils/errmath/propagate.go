// File: propagate.go
// Title: Propagation Helpers
// Description: Shared first-order propagation for one and two arguments.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12

package errmath

import (
	"math"

	"github.com/msto63/errc/foundation/utils/uncertain"
)

// Float is the set of nominal value types accepted by most functions
type Float interface {
	~float32 | ~float64
}

// contribution returns |d|·dx, or zero when dx is zero
func contribution(d, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	return math.Abs(d) * dx
}

// unary applies f to x, propagating the uncertainty with the derivative df
func unary[V Float, E uncertain.Float](x uncertain.Value[V, E], f, df func(float64) float64) uncertain.Value[V, E] {
	n := float64(x.Nominal)
	r := x
	r.Nominal = V(f(n))
	r.Uncertainty = E(contribution(df(n), float64(x.Uncertainty)))
	return r
}

// binary sets r to value ± rss of the partial-derivative contributions
func binary[V Float, E uncertain.Float](x, y uncertain.Value[V, E], value, dfdx, dfdy float64) uncertain.Value[V, E] {
	r := x
	r.Nominal = V(value)
	r.Uncertainty = E(math.Hypot(
		contribution(dfdx, float64(x.Uncertainty)),
		contribution(dfdy, float64(y.Uncertainty)),
	))
	return r
}
