// File: doc.go
// Title: Uncertainty Propagation Library Documentation
// Description: Package errmath applies mathematical functions to uncertain
//              values and propagates the uncertainty to first order.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-29 v0.1.0: Trigonometric, exponential and power functions
// - 2026-10-12 v0.2.0: Hyperbolic, error functions, Fma and Hypot

/*
Package errmath provides the functions of package math for uncertain.Value.

Every function returns a new value whose nominal part is the function applied
to the nominal inputs and whose uncertainty is the linearised propagation of
the input uncertainties:

	d f(x)    = |f'(x)| · dx
	d f(x, y) = sqrt((∂f/∂x · dx)² + (∂f/∂y · dy)²)

Inputs are assumed statistically independent. The result carries the default
error policy of the first operand.

	x := uncertain.New(1.23, 0.038)
	y := errmath.Sin(x) // 0.94249 ± 0.01270

The names mirror package math and are meant to be used qualified.

# Domain

Arguments outside a function's real domain follow IEEE-754: Log of a negative
value, Sqrt of a negative value or Asin beyond ±1 produce NaN and poles produce
±Inf. Check results with Value.Validate where that matters. An input with zero
uncertainty always yields a result with zero uncertainty, including at points
where the derivative is infinite.

# Integral Values

Most functions take floating-point values only. Convert integral values with
uncertain.Cast first; LognIntegral does this for the generic-base logarithm.
Abs accepts any numeric type.
*/
package errmath
