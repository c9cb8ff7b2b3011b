// File: builtin.go
// Title: Built-in Operations
// Description: Arithmetic on uncertain values and every errmath function,
//              registered under their math package names.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-12

package calc

import (
	"github.com/msto63/errc/foundation/utils/errmath"
)

// Operation categories
const (
	CategoryArithmetic  = "arithmetic"
	CategoryTrig        = "trigonometric"
	CategoryHyperbolic  = "hyperbolic"
	CategoryExponential = "exponential"
	CategoryPower       = "power"
	CategorySpecial     = "special"
)

func unaryOp(name, category, description string, f func(Operand) Operand, aliases ...string) *Operation {
	return &Operation{
		Name:        name,
		Category:    category,
		Description: description,
		Usage:       "x",
		Arity:       1,
		Aliases:     aliases,
		Eval:        func(args []Operand) Operand { return f(args[0]) },
	}
}

func binaryOp(name, category, description, usage string, f func(Operand, Operand) Operand, aliases ...string) *Operation {
	return &Operation{
		Name:        name,
		Category:    category,
		Description: description,
		Usage:       usage,
		Arity:       2,
		Aliases:     aliases,
		Eval:        func(args []Operand) Operand { return f(args[0], args[1]) },
	}
}

func builtinOperations() []*Operation {
	return []*Operation{
		binaryOp("add", CategoryArithmetic, "sum, errors added in quadrature", "x y", Operand.Add, "plus"),
		binaryOp("sub", CategoryArithmetic, "difference, errors added in quadrature", "x y", Operand.Sub, "minus"),
		binaryOp("mul", CategoryArithmetic, "product, relative errors added in quadrature", "x y", Operand.Mul, "times"),
		binaryOp("div", CategoryArithmetic, "quotient, relative errors added in quadrature", "x y", Operand.Div),
		unaryOp("neg", CategoryArithmetic, "negation, error unchanged", Operand.Neg),
		unaryOp("abs", CategoryArithmetic, "absolute value, error unchanged", errmath.Abs[float64, float64]),

		unaryOp("sin", CategoryTrig, "sine", errmath.Sin[float64, float64]),
		unaryOp("cos", CategoryTrig, "cosine", errmath.Cos[float64, float64]),
		unaryOp("tan", CategoryTrig, "tangent", errmath.Tan[float64, float64]),
		unaryOp("asin", CategoryTrig, "arcsine", errmath.Asin[float64, float64]),
		unaryOp("acos", CategoryTrig, "arccosine", errmath.Acos[float64, float64]),
		unaryOp("atan", CategoryTrig, "arctangent", errmath.Atan[float64, float64]),
		binaryOp("atan2", CategoryTrig, "arctangent of y/x", "y x", errmath.Atan2[float64, float64]),

		unaryOp("sinh", CategoryHyperbolic, "hyperbolic sine", errmath.Sinh[float64, float64]),
		unaryOp("cosh", CategoryHyperbolic, "hyperbolic cosine", errmath.Cosh[float64, float64]),
		unaryOp("tanh", CategoryHyperbolic, "hyperbolic tangent", errmath.Tanh[float64, float64]),
		unaryOp("asinh", CategoryHyperbolic, "inverse hyperbolic sine", errmath.Asinh[float64, float64]),
		unaryOp("acosh", CategoryHyperbolic, "inverse hyperbolic cosine", errmath.Acosh[float64, float64]),
		unaryOp("atanh", CategoryHyperbolic, "inverse hyperbolic tangent", errmath.Atanh[float64, float64]),

		unaryOp("exp", CategoryExponential, "natural exponential", errmath.Exp[float64, float64]),
		unaryOp("expm1", CategoryExponential, "exp(x)-1", errmath.Expm1[float64, float64]),
		unaryOp("exp2", CategoryExponential, "power of two", errmath.Exp2[float64, float64]),
		unaryOp("log", CategoryExponential, "natural logarithm", errmath.Log[float64, float64], "ln"),
		unaryOp("log1p", CategoryExponential, "log(1+x)", errmath.Log1p[float64, float64]),
		unaryOp("log10", CategoryExponential, "decimal logarithm", errmath.Log10[float64, float64], "lg"),
		unaryOp("log2", CategoryExponential, "binary logarithm", errmath.Log2[float64, float64], "ld"),
		binaryOp("logn", CategoryExponential, "logarithm to an exact base", "x base",
			func(x, base Operand) Operand { return errmath.Logn(x, base.Nominal) }),

		binaryOp("pow", CategoryPower, "power with uncertain exponent", "x y", errmath.Pow[float64, float64], "power"),
		binaryOp("pown", CategoryPower, "power with exact exponent", "x n",
			func(x, n Operand) Operand { return errmath.PowN(x, n.Nominal) }),
		unaryOp("sqrt", CategoryPower, "square root", errmath.Sqrt[float64, float64]),
		unaryOp("cbrt", CategoryPower, "cube root", errmath.Cbrt[float64, float64]),
		binaryOp("hypot", CategoryPower, "sqrt(x²+y²)", "x y", errmath.Hypot[float64, float64]),

		unaryOp("erf", CategorySpecial, "error function", errmath.Erf[float64, float64]),
		unaryOp("erfc", CategorySpecial, "complementary error function", errmath.Erfc[float64, float64]),
		{
			Name:        "fma",
			Category:    CategorySpecial,
			Description: "fused multiply-add x·y+z",
			Usage:       "x y z",
			Arity:       3,
			Eval: func(args []Operand) Operand {
				return errmath.Fma(args[0], args[1], args[2])
			},
		},
	}
}
