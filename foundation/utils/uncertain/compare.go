// File: compare.go
// Title: Value Comparison
// Description: Ordering and equality on the nominal value. The uncertainty
//              never takes part in a comparison.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28

package uncertain

import "cmp"

// Equal reports v.Nominal == o.Nominal
func (v Value[V, E]) Equal(o Value[V, E]) bool { return v.Nominal == o.Nominal }

// NotEqual reports v.Nominal != o.Nominal
func (v Value[V, E]) NotEqual(o Value[V, E]) bool { return v.Nominal != o.Nominal }

// Less reports v.Nominal < o.Nominal
func (v Value[V, E]) Less(o Value[V, E]) bool { return v.Nominal < o.Nominal }

// LessEqual reports v.Nominal <= o.Nominal
func (v Value[V, E]) LessEqual(o Value[V, E]) bool { return v.Nominal <= o.Nominal }

// Greater reports v.Nominal > o.Nominal
func (v Value[V, E]) Greater(o Value[V, E]) bool { return v.Nominal > o.Nominal }

// GreaterEqual reports v.Nominal >= o.Nominal
func (v Value[V, E]) GreaterEqual(o Value[V, E]) bool { return v.Nominal >= o.Nominal }

// Compare returns -1, 0 or +1 ordering v and o by nominal value. NaN sorts
// before every other value as in cmp.Compare.
func (v Value[V, E]) Compare(o Value[V, E]) int {
	return cmp.Compare(v.Nominal, o.Nominal)
}
