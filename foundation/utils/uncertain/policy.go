// File: policy.go
// Title: Default-Error Policy
// Description: Mode selection for the uncertainty assigned to bare numbers and
//              the half-unit-in-last-place rule.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Shortest decimal representation for half-unit rule

package uncertain

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	errcerrors "github.com/msto63/errc/foundation/core/errors"
)

// Mode selects how a bare number is given an uncertainty
type Mode int

const (
	// ModeZero assigns no uncertainty
	ModeZero Mode = iota

	// ModeHalf assigns half a unit in the last decimal place
	ModeHalf

	// ModeFunc delegates to a caller-supplied function
	ModeFunc
)

// String returns the configuration name of the mode
func (m Mode) String() string {
	switch m {
	case ModeZero:
		return "zero"
	case ModeHalf:
		return "half"
	case ModeFunc:
		return "func"
	default:
		return "unknown"
	}
}

// IsValid reports whether m is one of the defined modes
func (m Mode) IsValid() bool {
	return m >= ModeZero && m <= ModeFunc
}

// ParseMode parses a configuration name into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero", "none", "":
		return ModeZero, nil
	case "half", "half-ulp", "ulp":
		return ModeHalf, nil
	case "func", "custom":
		return ModeFunc, nil
	default:
		return ModeZero, errcerrors.InvalidConfig(errcerrors.ModuleUncertain, "ParseMode",
			"default_error.mode", s, "expected zero, half or func")
	}
}

// policy is the tagged variant behind the default-error mode. fn is set only
// when mode is ModeFunc.
type policy[V Number, E Float] struct {
	mode Mode
	fn   func(V) E
}

func (p policy[V, E]) apply(x V) E {
	switch p.mode {
	case ModeHalf:
		return HalfUnit[V, E](x)
	case ModeFunc:
		return p.fn(x)
	default:
		return 0
	}
}

// SetDefaultMode selects the default-error policy. ModeZero and ModeHalf
// ignore fn; ModeFunc requires it. On error the policy is unchanged.
func (v *Value[V, E]) SetDefaultMode(mode Mode, fn func(V) E) error {
	switch mode {
	case ModeZero, ModeHalf:
		v.policy = policy[V, E]{mode: mode}
		return nil
	case ModeFunc:
		if fn == nil {
			return errcerrors.InvalidConfig(errcerrors.ModuleUncertain, "SetDefaultMode",
				"default_error.func", nil, "custom mode requires a function")
		}
		v.policy = policy[V, E]{mode: ModeFunc, fn: fn}
		return nil
	default:
		return errcerrors.InvalidConfig(errcerrors.ModuleUncertain, "SetDefaultMode",
			"default_error.mode", int(mode), "unknown mode")
	}
}

// DefaultMode returns the active default-error mode
func (v Value[V, E]) DefaultMode() Mode {
	return v.policy.mode
}

// DefaultFunc returns the custom function, or nil unless the mode is ModeFunc
func (v Value[V, E]) DefaultFunc() func(V) E {
	if v.policy.mode != ModeFunc {
		return nil
	}
	return v.policy.fn
}

// HalfUnit returns half of the least significant decimal digit of x:
// 10 → 5, 1 → 0.5, 0.03 → 0.005. Zero yields 0.5.
func HalfUnit[V Number, E Float](x V) E {
	if x == 0 {
		return 0.5
	}
	if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
		return E(math.NaN())
	}

	digits := decimalString(x)
	if dot := strings.IndexByte(digits, '.'); dot >= 0 {
		places := len(digits) - dot - 1
		return E(5 * math.Pow10(-places-1))
	}

	zeros := len(digits) - len(strings.TrimRight(digits, "0"))
	return E(5 * math.Pow10(zeros-1))
}

// decimalString renders |x| in the shortest plain decimal form that
// round-trips for its type, without exponent.
func decimalString[V Number](x V) string {
	rv := reflect.ValueOf(x)
	var s string
	switch rv.Kind() {
	case reflect.Float32:
		s = strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		s = strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s = strconv.FormatUint(rv.Uint(), 10)
	default:
		s = strconv.FormatInt(rv.Int(), 10)
	}
	return strings.TrimPrefix(s, "-")
}
