// File: operand.go
// Title: Operand Parser
// Description: Parses "value±error", "value+-error", "value+/-error" and bare
//              numbers into uncertain values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-12

package calc

import (
	"strconv"
	"strings"

	errcerrors "github.com/msto63/errc/foundation/core/errors"
	"github.com/msto63/errc/foundation/utils/uncertain"
)

// Operand is the value type evaluated by the registry
type Operand = uncertain.Value[float64, float64]

// separators lists the accepted value/error separators, longest first
var separators = []string{"+/-", "+-", "±"}

// ParseOperand parses s into an Operand. A bare number is assigned to a copy
// of base, so it receives base's default-error policy and the result keeps
// that policy.
func ParseOperand(s string, base Operand) (Operand, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Operand{}, errcerrors.InvalidInput(errcerrors.ModuleCalc, "ParseOperand", s, "a number or value±error")
	}

	nominalText, errorText, explicit := splitOperand(text)

	nominal, err := strconv.ParseFloat(strings.TrimSpace(nominalText), 64)
	if err != nil {
		return Operand{}, errcerrors.InvalidFormat(errcerrors.ModuleCalc, "ParseOperand", s, "value±error", err)
	}

	result := base
	if !explicit {
		result.AssignNumber(nominal)
		return result, nil
	}

	uncertainty, err := strconv.ParseFloat(strings.TrimSpace(errorText), 64)
	if err != nil {
		return Operand{}, errcerrors.InvalidFormat(errcerrors.ModuleCalc, "ParseOperand", s, "value±error", err)
	}
	if uncertainty < 0 {
		return Operand{}, errcerrors.InvalidInput(errcerrors.ModuleCalc, "ParseOperand", s, "non-negative uncertainty")
	}

	result.Set(nominal, uncertainty)
	return result, nil
}

// ParseOperands parses every argument with ParseOperand
func ParseOperands(args []string, base Operand) ([]Operand, error) {
	ops := make([]Operand, 0, len(args))
	for _, a := range args {
		op, err := ParseOperand(a, base)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// splitOperand cuts text at the first separator that is not a leading sign
func splitOperand(text string) (string, string, bool) {
	for _, sep := range separators {
		// skip index 0 so "+-1" style prefixes are not taken as a separator
		if i := strings.Index(text[1:], sep); i >= 0 {
			i++
			return text[:i], text[i+len(sep):], true
		}
	}
	return text, "", false
}
