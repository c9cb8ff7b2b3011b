// File: value.go
// Title: Uncertain Value Type
// Description: Value type, construction and assignment, arithmetic with
//              root-sum-of-squares propagation, unary operators and accessors.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation of Value and arithmetic
// - 2026-10-12 v0.2.0: Absolute partial-derivative form for Mul and Div

package uncertain

import (
	"math"

	"golang.org/x/exp/constraints"

	errcerr "github.com/msto63/errc/foundation/core/error"
	errcerrors "github.com/msto63/errc/foundation/core/errors"
)

// Number is the set of nominal value types: every integer and float type
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the set of uncertainty types
type Float interface {
	constraints.Float
}

// Sentinel errors for use with errors.Is
var (
	ErrIndexOutOfRange = errcerr.New("component index out of range").WithCode(errcerr.CodeValueOutOfRange)
	ErrInvalidConfig   = errcerr.New("invalid default-error configuration").WithCode(errcerr.CodeInvalidConfig)
	ErrDomain          = errcerr.New("value outside the real domain").WithCode(errcerr.CodeDomain)
)

// Value is a nominal value with a non-negative uncertainty. The zero value is
// 0 ± 0 with ModeZero.
type Value[V Number, E Float] struct {
	Nominal     V
	Uncertainty E

	policy policy[V, E]
}

// New returns nominal ± uncertainty. The uncertainty is stored as given.
func New[V Number, E Float](nominal V, uncertainty E) Value[V, E] {
	return Value[V, E]{Nominal: nominal, Uncertainty: uncertainty}
}

// Assign copies nominal value and uncertainty from o and keeps the receiver's
// default-error policy.
func (v *Value[V, E]) Assign(o Value[V, E]) *Value[V, E] {
	v.Nominal = o.Nominal
	v.Uncertainty = o.Uncertainty
	return v
}

// AssignNumber sets the nominal value to x and derives the uncertainty from
// the default-error policy.
func (v *Value[V, E]) AssignNumber(x V) *Value[V, E] {
	v.Nominal = x
	v.Uncertainty = v.policy.apply(x)
	return v
}

// Set replaces nominal value and uncertainty
func (v *Value[V, E]) Set(nominal V, uncertainty E) {
	v.Nominal = nominal
	v.Uncertainty = uncertainty
}

// promote turns x into a Value using the receiver's policy
func (v Value[V, E]) promote(x V) Value[V, E] {
	return Value[V, E]{Nominal: x, Uncertainty: v.policy.apply(x)}
}

// AddAssign adds o to v
func (v *Value[V, E]) AddAssign(o Value[V, E]) *Value[V, E] {
	v.Nominal += o.Nominal
	v.Uncertainty = rss(v.Uncertainty, o.Uncertainty)
	return v
}

// SubAssign subtracts o from v
func (v *Value[V, E]) SubAssign(o Value[V, E]) *Value[V, E] {
	v.Nominal -= o.Nominal
	v.Uncertainty = rss(v.Uncertainty, o.Uncertainty)
	return v
}

// MulAssign multiplies v by o
func (v *Value[V, E]) MulAssign(o Value[V, E]) *Value[V, E] {
	a, b := float64(v.Nominal), float64(o.Nominal)
	da, db := float64(v.Uncertainty), float64(o.Uncertainty)

	v.Nominal *= o.Nominal
	v.Uncertainty = E(math.Hypot(b*da, a*db))
	return v
}

// DivAssign divides v by o
func (v *Value[V, E]) DivAssign(o Value[V, E]) *Value[V, E] {
	a, b := float64(v.Nominal), float64(o.Nominal)
	da, db := float64(v.Uncertainty), float64(o.Uncertainty)

	v.Nominal /= o.Nominal
	v.Uncertainty = E(math.Hypot(da/b, a*db/(b*b)))
	return v
}

// AddNumberAssign adds the bare number x, promoted through the policy
func (v *Value[V, E]) AddNumberAssign(x V) *Value[V, E] {
	return v.AddAssign(v.promote(x))
}

// SubNumberAssign subtracts the bare number x, promoted through the policy
func (v *Value[V, E]) SubNumberAssign(x V) *Value[V, E] {
	return v.SubAssign(v.promote(x))
}

// MulNumberAssign multiplies by the bare number x, promoted through the policy
func (v *Value[V, E]) MulNumberAssign(x V) *Value[V, E] {
	return v.MulAssign(v.promote(x))
}

// DivNumberAssign divides by the bare number x, promoted through the policy
func (v *Value[V, E]) DivNumberAssign(x V) *Value[V, E] {
	return v.DivAssign(v.promote(x))
}

// Add returns v + o
func (v Value[V, E]) Add(o Value[V, E]) Value[V, E] {
	return *v.AddAssign(o)
}

// Sub returns v - o
func (v Value[V, E]) Sub(o Value[V, E]) Value[V, E] {
	return *v.SubAssign(o)
}

// Mul returns v · o
func (v Value[V, E]) Mul(o Value[V, E]) Value[V, E] {
	return *v.MulAssign(o)
}

// Div returns v / o
func (v Value[V, E]) Div(o Value[V, E]) Value[V, E] {
	return *v.DivAssign(o)
}

// AddNumber returns v + x
func (v Value[V, E]) AddNumber(x V) Value[V, E] {
	return *v.AddNumberAssign(x)
}

// SubNumber returns v - x
func (v Value[V, E]) SubNumber(x V) Value[V, E] {
	return *v.SubNumberAssign(x)
}

// MulNumber returns v · x
func (v Value[V, E]) MulNumber(x V) Value[V, E] {
	return *v.MulNumberAssign(x)
}

// DivNumber returns v / x
func (v Value[V, E]) DivNumber(x V) Value[V, E] {
	return *v.DivNumberAssign(x)
}

// Pos returns a copy of v
func (v Value[V, E]) Pos() Value[V, E] {
	return v
}

// Neg returns -v with the same uncertainty
func (v Value[V, E]) Neg() Value[V, E] {
	v.Nominal = -v.Nominal
	return v
}

// Inc adds exactly one to the nominal value and returns v
func (v *Value[V, E]) Inc() *Value[V, E] {
	v.Nominal++
	return v
}

// Dec subtracts exactly one from the nominal value and returns v
func (v *Value[V, E]) Dec() *Value[V, E] {
	v.Nominal--
	return v
}

// PostInc adds one to the nominal value and returns the previous state
func (v *Value[V, E]) PostInc() Value[V, E] {
	old := *v
	v.Nominal++
	return old
}

// PostDec subtracts one from the nominal value and returns the previous state
func (v *Value[V, E]) PostDec() Value[V, E] {
	old := *v
	v.Nominal--
	return old
}

// At returns component i: 0 is the nominal value, 1 the uncertainty
func (v Value[V, E]) At(i int) (E, error) {
	switch i {
	case 0:
		return E(v.Nominal), nil
	case 1:
		return v.Uncertainty, nil
	default:
		return 0, errcerrors.IndexOutOfRange(errcerrors.ModuleUncertain, "At", i)
	}
}

// Min returns the lower bound nominal - uncertainty
func (v Value[V, E]) Min() E {
	return E(v.Nominal) - v.Uncertainty
}

// Max returns the upper bound nominal + uncertainty
func (v Value[V, E]) Max() E {
	return E(v.Nominal) + v.Uncertainty
}

// Convert returns the nominal value as T. The uncertainty is discarded.
func Convert[T Number, V Number, E Float](v Value[V, E]) T {
	return T(v.Nominal)
}

// Cast re-types the nominal value, keeping the uncertainty. The result uses
// ModeZero.
func Cast[T Number, V Number, E Float](v Value[V, E]) Value[T, E] {
	return Value[T, E]{Nominal: T(v.Nominal), Uncertainty: v.Uncertainty}
}

// Validate reports a domain error when a component is NaN or infinite and an
// invalid-input error when the uncertainty is negative.
func (v Value[V, E]) Validate() error {
	n, u := float64(v.Nominal), float64(v.Uncertainty)
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return errcerrors.DomainError(errcerrors.ModuleUncertain, "Validate", n, "nominal value is not finite")
	case math.IsNaN(u) || math.IsInf(u, 0):
		return errcerrors.DomainError(errcerrors.ModuleUncertain, "Validate", u, "uncertainty is not finite")
	case u < 0:
		return errcerrors.InvalidInput(errcerrors.ModuleUncertain, "Validate", u, "non-negative uncertainty")
	}
	return nil
}

func rss[E Float](a, b E) E {
	return E(math.Hypot(float64(a), float64(b)))
}
