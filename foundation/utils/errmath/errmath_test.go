// File: errmath_test.go
// Title: Unit Tests for the Propagation Library
// Description: Reference values for every function and a cross-check of the
//              derivative rules against automatic differentiation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12

package errmath

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/dual"

	"github.com/msto63/errc/foundation/utils/uncertain"
)

const tol = 1e-6

type value = uncertain.Value[float64, float64]

func TestReferenceValues(t *testing.T) {
	x := uncertain.New(1.23, 0.038)
	u := uncertain.New(0.83, 0.038)
	v := uncertain.New(1.34, 0.48)

	tests := []struct {
		name        string
		got         value
		wantNominal float64
		wantErr     float64
	}{
		{"Sin", Sin(x), 0.942488801, 0.0127010336},
		{"Cos", Cos(x), 0.334237727, 0.035814574},
		{"Tan", Tan(x), 2.819815734, 0.340151709},
		{"Asin", Asin(u), 0.979107684, 0.068129247},
		{"Acos", Acos(u), 0.591688642, 0.068129247},
		{"Atan", Atan(u), 0.692767835, 0.0224998519},
		{"Atan2", Atan2(u, uncertain.New(0.43, 0.134)), 1.092795636, 0.128649457},
		{"Sinh", Sinh(x), 1.564468479, 0.0705569},
		{"Cosh", Cosh(x), 1.856761056, 0.0594498},
		{"Tanh", Tanh(x), 0.842579325, 0.0110223},
		{"Asinh", Asinh(u), 0.755923299, 0.0292403},
		{"Acosh", Acosh(uncertain.New(1.2, 0.038)), 0.622362503, 0.0572872},
		{"Atanh", Atanh(u), 1.188136404, 0.122147},
		{"Erf", Erf(u), 0.759523756, 0.0215305},
		{"Erfc", Erfc(u), 0.240476243, 0.0215305},
		{"Exp", Exp(u), 2.293318740, 0.087146112},
		{"Expm1", Expm1(u), 1.293318740, 0.087146112},
		{"Exp2", Exp2(u), 1.777685362, 0.046823508},
		{"Log", Log(u), -0.186329578, 0.045783132},
		{"Log1p", Log1p(u), 0.604315966, 0.020765027},
		{"Log10", Log10(u), -0.080921907, 0.019883361},
		{"Log2", Log2(u), -0.268816758, 0.066051098},
		{"Logn", Logn(u, 10), -0.080921907, 0.019883361},
		{"PowN", PowN(u, 3.23), 0.547800265, 0.081008439},
		{"Pow exact exponent", Pow(u, uncertain.New(3.23, 0.0)), 0.547800265, 0.081008439},
		{"Sqrt", Sqrt(u), 0.9110433579, 0.020855209},
		{"Cbrt", Cbrt(u), 0.939779637, 0.014342018},
		{"Hypot", Hypot(u, v), 1.576229678, 0.408552664},
		{"Fma", Fma(u, v, uncertain.New(1.45566, 1.2)), 2.56786, 1.265430917},
		{"Abs", Abs(uncertain.New(-0.234, 0.12345)), 0.234, 0.12345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !scalar.EqualWithinAbs(tt.got.Nominal, tt.wantNominal, tol) {
				t.Errorf("%s nominal = %.9f, want %.9f", tt.name, tt.got.Nominal, tt.wantNominal)
			}
			if !scalar.EqualWithinAbs(tt.got.Uncertainty, tt.wantErr, tol) {
				t.Errorf("%s uncertainty = %.9f, want %.9f", tt.name, tt.got.Uncertainty, tt.wantErr)
			}
		})
	}
}

func TestLognIntegral(t *testing.T) {
	got := LognIntegral(uncertain.New(2, 0.038), 10)
	if !scalar.EqualWithinAbs(got.Nominal, 0.301029995, tol) {
		t.Errorf("LognIntegral nominal = %v, want 0.301029995", got.Nominal)
	}
	if !scalar.EqualWithinAbs(got.Uncertainty, 0.008251595, tol) {
		t.Errorf("LognIntegral uncertainty = %v, want 0.008251595", got.Uncertainty)
	}
}

func TestAbsInteger(t *testing.T) {
	got := Abs(uncertain.New(-7, 0.5))
	if got.Nominal != 7 || got.Uncertainty != 0.5 {
		t.Errorf("Abs(-7 ± 0.5) = %v", got)
	}
	got = Abs(uncertain.New(3, 0.5))
	if got.Nominal != 3 {
		t.Errorf("Abs(3 ± 0.5) = %v", got)
	}
}

func TestAbsMinInt(t *testing.T) {
	// negation of the most negative integer wraps, as with Go's unary minus
	got := Abs(uncertain.New(int8(math.MinInt8), 0.5))
	if got.Nominal != math.MinInt8 || got.Uncertainty != 0.5 {
		t.Errorf("Abs(-128 ± 0.5) = %v, want -128 ± 0.5", got)
	}
}

func TestPowBothUncertain(t *testing.T) {
	x := uncertain.New(1.5, 0.02)
	y := uncertain.New(2.5, 0.1)

	got := Pow(x, y)
	value := math.Pow(1.5, 2.5)
	want := math.Hypot(2.5*math.Pow(1.5, 1.5)*0.02, value*math.Log(1.5)*0.1)

	if !scalar.EqualWithinAbs(got.Nominal, value, 1e-12) {
		t.Errorf("Pow nominal = %v, want %v", got.Nominal, value)
	}
	if !scalar.EqualWithinAbs(got.Uncertainty, want, 1e-12) {
		t.Errorf("Pow uncertainty = %v, want %v", got.Uncertainty, want)
	}
}

func TestPowNegativeBaseExactExponent(t *testing.T) {
	got := Pow(uncertain.New(-2.0, 0.1), uncertain.New(3.0, 0.0))
	if got.Nominal != -8 {
		t.Errorf("Pow(-2, 3) nominal = %v, want -8", got.Nominal)
	}
	if !scalar.EqualWithinAbs(got.Uncertainty, 1.2, 1e-12) {
		t.Errorf("Pow(-2, 3) uncertainty = %v, want 1.2", got.Uncertainty)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDomainPropagatesIEEE(t *testing.T) {
	tests := []struct {
		name string
		got  value
	}{
		{"Log of negative", Log(uncertain.New(-1.0, 0.1))},
		{"Log of zero", Log(uncertain.New(0.0, 0.1))},
		{"Sqrt of negative", Sqrt(uncertain.New(-4.0, 0.1))},
		{"Asin beyond one", Asin(uncertain.New(1.5, 0.1))},
		{"Acosh below one", Acosh(uncertain.New(0.5, 0.1))},
		{"Pow of negative base", Pow(uncertain.New(-2.0, 0.1), uncertain.New(0.5, 0.1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.got.Validate(); !isDomain(err) {
				t.Errorf("%s = %v, Validate() = %v, want domain error", tt.name, tt.got, err)
			}
		})
	}
}

func TestExactInputAtPole(t *testing.T) {
	got := Sqrt(uncertain.New(0.0, 0.0))
	if got.Nominal != 0 || got.Uncertainty != 0 {
		t.Errorf("Sqrt(0 ± 0) = %v, want 0 ± 0", got)
	}
}

func TestResultKeepsPolicy(t *testing.T) {
	x := uncertain.New(0.5, 0.01)
	if err := x.SetDefaultMode(uncertain.ModeHalf, nil); err != nil {
		t.Fatalf("SetDefaultMode() error = %v", err)
	}
	if got := Exp(x).DefaultMode(); got != uncertain.ModeHalf {
		t.Errorf("Exp result mode = %v, want half", got)
	}
	if x.Nominal != 0.5 {
		t.Errorf("Exp mutated its argument: %v", x)
	}
}

func TestFloat32(t *testing.T) {
	got := Sin(uncertain.New[float32, float32](1.23, 0.038))
	if !scalar.EqualWithinAbs(float64(got.Nominal), 0.942488801, 1e-6) {
		t.Errorf("Sin float32 nominal = %v", got.Nominal)
	}
	if !scalar.EqualWithinAbs(float64(got.Uncertainty), 0.0127010336, 1e-6) {
		t.Errorf("Sin float32 uncertainty = %v", got.Uncertainty)
	}
}

// TestDerivativesMatchDual checks every single-argument rule against the
// derivative computed by forward-mode automatic differentiation.
func TestDerivativesMatchDual(t *testing.T) {
	tests := []struct {
		name   string
		f      func(value) value
		df     func(dual.Number) dual.Number
		points []float64
	}{
		{"Sin", Sin[float64, float64], dual.Sin, []float64{-2, 0.3, 1.23, 4}},
		{"Cos", Cos[float64, float64], dual.Cos, []float64{-2, 0.3, 1.23, 4}},
		{"Tan", Tan[float64, float64], dual.Tan, []float64{-1, 0.3, 1.23}},
		{"Asin", Asin[float64, float64], dual.Asin, []float64{-0.9, 0, 0.83}},
		{"Acos", Acos[float64, float64], dual.Acos, []float64{-0.9, 0, 0.83}},
		{"Atan", Atan[float64, float64], dual.Atan, []float64{-3, 0, 0.83, 10}},
		{"Sinh", Sinh[float64, float64], dual.Sinh, []float64{-2, 0, 1.23}},
		{"Cosh", Cosh[float64, float64], dual.Cosh, []float64{-2, 0.1, 1.23}},
		{"Tanh", Tanh[float64, float64], dual.Tanh, []float64{-2, 0, 1.23}},
		{"Asinh", Asinh[float64, float64], dual.Asinh, []float64{-2, 0, 0.83}},
		{"Acosh", Acosh[float64, float64], dual.Acosh, []float64{1.2, 2, 10}},
		{"Atanh", Atanh[float64, float64], dual.Atanh, []float64{-0.5, 0, 0.83}},
		{"Exp", Exp[float64, float64], dual.Exp, []float64{-2, 0, 0.83, 3}},
		{"Log", Log[float64, float64], dual.Log, []float64{0.1, 0.83, 5}},
		{"Sqrt", Sqrt[float64, float64], dual.Sqrt, []float64{0.1, 0.83, 5}},
		{"PowN", func(x value) value { return PowN(x, 3.23) },
			func(x dual.Number) dual.Number { return dual.PowReal(x, 3.23) }, []float64{0.1, 0.83, 5}},
	}

	const dx = 0.038
	for _, tt := range tests {
		for _, p := range tt.points {
			got := tt.f(uncertain.New(p, dx))
			want := tt.df(dual.Number{Real: p, Emag: 1})

			if !scalar.EqualWithinAbsOrRel(got.Nominal, want.Real, 1e-12, 1e-12) {
				t.Errorf("%s(%v) nominal = %v, want %v", tt.name, p, got.Nominal, want.Real)
			}
			if !scalar.EqualWithinAbsOrRel(got.Uncertainty, math.Abs(want.Emag)*dx, 1e-12, 1e-9) {
				t.Errorf("%s(%v) uncertainty = %v, want %v", tt.name, p, got.Uncertainty, math.Abs(want.Emag)*dx)
			}
		}
	}
}

func isDomain(err error) bool {
	return errors.Is(err, uncertain.ErrDomain)
}
