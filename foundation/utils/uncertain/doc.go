// File: doc.go
// Title: Uncertain Value Package Documentation
// Description: Package uncertain provides a generic numeric type that carries
//              a nominal value together with its uncertainty and propagates
//              the uncertainty through arithmetic.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation of Value and arithmetic
// - 2026-10-12 v0.2.0: Default-error policy as tagged mode, Validate

/*
Package uncertain provides Value, a measured quantity with an attached
uncertainty.

A Value[V, E] holds a nominal value of any integer or floating-point type V and
an uncertainty of floating-point type E, interpreted as one standard deviation.
Operands are assumed statistically independent, so uncertainties combine by
root-sum-of-squares and never cancel:

	a := uncertain.New(10.0, 0.3)
	b := uncertain.New(2.0, 0.1)
	sum := a.Add(b)  // 12 ± 0.31623
	prod := a.Mul(b) // 20 ± 1.16619

# Arithmetic

Add, Sub, Mul and Div return new values and never modify their operands. The
AddAssign family modifies the receiver and returns it for chaining. Products
and quotients propagate with the partial derivatives written out:

	d(a·b) = sqrt((b·da)² + (a·db)²)
	d(a/b) = sqrt((da/b)² + (a·db/b²)²)

which equals the textbook relative-error form whenever both nominal values are
non-zero and stays defined when one of them is zero. Dividing by a zero
floating-point nominal yields IEEE-754 infinities or NaN, detected by Validate.
Integer division by zero panics as Go's built-in integer division does.

# Default Uncertainty

A bare number enters a computation through the receiver's default-error
policy: ModeZero gives it no uncertainty, ModeHalf gives it half a unit in its
last decimal place and ModeFunc calls a caller-supplied function.

	v := uncertain.Value[float64, float64]{}
	_ = v.SetDefaultMode(uncertain.ModeHalf, nil)
	v.AssignNumber(0.03) // 0.03 ± 0.005

The policy belongs to each value. Copies made by plain Go assignment share it,
Assign keeps the receiver's own.

# Comparison

Equal, Less and the other comparisons look at the nominal value only. Two
values with the same nominal value and different uncertainties are equal.
Compare returns -1, 0 or +1 and fits slices.SortFunc.
*/
package uncertain
