package calc

import (
	"testing"

	errcerr "github.com/msto63/errc/foundation/core/error"
	"github.com/msto63/errc/foundation/utils/uncertain"
)

func TestParseOperand(t *testing.T) {
	var half Operand
	_ = half.SetDefaultMode(uncertain.ModeHalf, nil)

	tests := []struct {
		name        string
		input       string
		base        Operand
		wantNominal float64
		wantErr     float64
	}{
		{"plus-minus sign", "1.23±0.038", Operand{}, 1.23, 0.038},
		{"ascii plus-minus", "1.23+-0.038", Operand{}, 1.23, 0.038},
		{"slash form", "1.23+/-0.038", Operand{}, 1.23, 0.038},
		{"spaces", " 10 ± 0.5 ", Operand{}, 10, 0.5},
		{"negative nominal", "-0.234+-0.12345", Operand{}, -0.234, 0.12345},
		{"exponent", "1.5e+3+-2e1", Operand{}, 1500, 20},
		{"bare zero mode", "0.03", Operand{}, 0.03, 0},
		{"bare half mode", "0.03", half, 0.03, 0.005},
		{"bare integer half mode", "10", half, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperand(tt.input, tt.base)
			if err != nil {
				t.Fatalf("ParseOperand(%q) error = %v", tt.input, err)
			}
			if got.Nominal != tt.wantNominal || got.Uncertainty != tt.wantErr {
				t.Errorf("ParseOperand(%q) = %v ± %v, want %v ± %v",
					tt.input, got.Nominal, got.Uncertainty, tt.wantNominal, tt.wantErr)
			}
			if got.DefaultMode() != tt.base.DefaultMode() {
				t.Errorf("ParseOperand(%q) mode = %v, want %v", tt.input, got.DefaultMode(), tt.base.DefaultMode())
			}
		})
	}
}

func TestParseOperandErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errcerr.Code
	}{
		{"empty", "  ", errcerr.CodeInvalidInput},
		{"not a number", "abc", errcerr.CodeInvalidFormat},
		{"bad error part", "1.2+-x", errcerr.CodeInvalidFormat},
		{"missing nominal", "±0.1", errcerr.CodeInvalidFormat},
		{"negative error", "1.2+--0.1", errcerr.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOperand(tt.input, Operand{})
			if err == nil {
				t.Fatalf("ParseOperand(%q) error = nil", tt.input)
			}
			if got := errcerr.GetCode(err); got != tt.code {
				t.Errorf("ParseOperand(%q) code = %v, want %v", tt.input, got, tt.code)
			}
		})
	}
}

func TestParseOperands(t *testing.T) {
	ops, err := ParseOperands([]string{"1±0.1", "2"}, Operand{})
	if err != nil {
		t.Fatalf("ParseOperands() error = %v", err)
	}
	if len(ops) != 2 || ops[1].Nominal != 2 {
		t.Errorf("ParseOperands() = %v", ops)
	}

	if _, err := ParseOperands([]string{"1", "x"}, Operand{}); err == nil {
		t.Error("ParseOperands() accepted invalid operand")
	}
}
