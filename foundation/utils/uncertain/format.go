// File: format.go
// Title: Value Formatting
// Description: Renders a value as "<nominal> ± <uncertainty>".
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28

package uncertain

import (
	"fmt"
	"reflect"
	"strconv"
)

// DefaultPrecision is the number of fractional digits used by String
const DefaultPrecision = 5

// String renders v with DefaultPrecision fractional digits
func (v Value[V, E]) String() string {
	return v.Format(DefaultPrecision)
}

// Format renders v with prec fractional digits. Integral nominal values are
// printed without a fraction. A negative prec selects the shortest exact form.
func (v Value[V, E]) Format(prec int) string {
	return formatNumber(v.Nominal, prec) + " ± " + formatNumber(v.Uncertainty, prec)
}

func formatNumber[T Number](x T, prec int) string {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', prec, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', prec, 64)
	default:
		return fmt.Sprint(x)
	}
}
