package calc

import (
	"bytes"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	errcerr "github.com/msto63/errc/foundation/core/error"
	"github.com/msto63/errc/foundation/core/log"
	"github.com/msto63/errc/foundation/utils/uncertain"
)

func newTestRegistry(t *testing.T, abbreviations bool) *Registry {
	t.Helper()
	r, err := NewRegistry(Options{
		Logger:              log.NewWithConfig(log.Config{Level: log.LevelError, Output: &bytes.Buffer{}}),
		EnableAbbreviations: abbreviations,
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return r
}

func TestEvaluate(t *testing.T) {
	r := newTestRegistry(t, false)

	x := uncertain.New(1.23, 0.038)
	u := uncertain.New(0.83, 0.038)

	tests := []struct {
		name        string
		op          string
		args        []Operand
		wantNominal float64
		wantErr     float64
	}{
		{"add", "add", []Operand{uncertain.New(10.0, 12.4), uncertain.New(2.0, 0.12)}, 12, 12.400580631567},
		{"mul", "MUL", []Operand{uncertain.New(10.2, 12.4), uncertain.New(2.0, 0.12)}, 20.4, 24.830186789470},
		{"sin", "sin", []Operand{x}, 0.942488801, 0.0127010336},
		{"alias ln", "ln", []Operand{u}, -0.186329578, 0.045783132},
		{"logn", "logn", []Operand{u, uncertain.New(10.0, 0.0)}, -0.080921907, 0.019883361},
		{"pown", "pown", []Operand{u, uncertain.New(3.23, 0.5)}, 0.547800265, 0.081008439},
		{"alias power", "power", []Operand{u, uncertain.New(3.23, 0.0)}, 0.547800265, 0.081008439},
		{"fma", "fma", []Operand{u, uncertain.New(1.34, 0.48), uncertain.New(1.45566, 1.2)}, 2.56786, 1.265430917},
		{"neg", "neg", []Operand{u}, -0.83, 0.038},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Evaluate(tt.op, tt.args)
			if err != nil {
				t.Fatalf("Evaluate(%s) error = %v", tt.op, err)
			}
			if !scalar.EqualWithinAbs(got.Nominal, tt.wantNominal, 1e-6) ||
				!scalar.EqualWithinAbs(got.Uncertainty, tt.wantErr, 1e-6) {
				t.Errorf("Evaluate(%s) = %v, want %v ± %v", tt.op, got, tt.wantNominal, tt.wantErr)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	r := newTestRegistry(t, false)

	_, err := r.Evaluate("nope", nil)
	if errcerr.GetCode(err) != errcerr.CodeNotFound {
		t.Errorf("Evaluate(nope) code = %v, want NOT_FOUND", errcerr.GetCode(err))
	}

	_, err = r.Evaluate("sin", []Operand{uncertain.New(1.0, 0.1), uncertain.New(2.0, 0.1)})
	if errcerr.GetCode(err) != errcerr.CodeInvalidInput {
		t.Errorf("Evaluate(sin, 2 args) code = %v, want INVALID_INPUT", errcerr.GetCode(err))
	}
	if err == nil || !strings.Contains(err.Error(), "sin expects 1 operand(s), got 2") {
		t.Errorf("Evaluate(sin, 2 args) error = %v", err)
	}
}

func TestAbbreviations(t *testing.T) {
	r := newTestRegistry(t, true)

	op, err := r.Lookup("sq")
	if err != nil || op.Name != "sqrt" {
		t.Errorf("Lookup(sq) = %v, %v, want sqrt", op, err)
	}

	if op, err := r.Lookup("asin"); err != nil || op.Name != "asin" {
		t.Errorf("Lookup(asin) = %v, %v, want exact match", op, err)
	}

	_, err = r.Lookup("as")
	if errcerr.GetCode(err) != errcerr.CodeInvalidInput {
		t.Errorf("Lookup(as) code = %v, want ambiguous", errcerr.GetCode(err))
	}

	strict := newTestRegistry(t, false)
	if _, err := strict.Lookup("sq"); errcerr.GetCode(err) != errcerr.CodeNotFound {
		t.Errorf("Lookup(sq) without abbreviations error = %v", err)
	}
}

func TestRegister(t *testing.T) {
	r := newTestRegistry(t, false)

	double := &Operation{
		Name:    "Double",
		Arity:   1,
		Aliases: []string{"twice"},
		Eval:    func(args []Operand) Operand { return args[0].MulNumber(2) },
	}
	if err := r.Register(double); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, err := r.Evaluate("twice", []Operand{uncertain.New(1.5, 0.1)})
	if err != nil || got.Nominal != 3 || got.Uncertainty != 0.2 {
		t.Errorf("Evaluate(twice) = %v, %v", got, err)
	}

	tests := []struct {
		name string
		op   *Operation
	}{
		{"nil", nil},
		{"no eval", &Operation{Name: "x", Arity: 1}},
		{"blank name", &Operation{Name: " ", Eval: double.Eval}},
		{"duplicate", &Operation{Name: "sin", Eval: double.Eval}},
		{"alias clash", &Operation{Name: "fresh", Aliases: []string{"ln"}, Eval: double.Eval}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Register(tt.op); errcerr.GetCode(err) != errcerr.CodeInvalidInput {
				t.Errorf("Register() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestRegisterAlias(t *testing.T) {
	r := newTestRegistry(t, false)

	if err := r.RegisterAlias("root", "sqrt"); err != nil {
		t.Fatalf("RegisterAlias() error = %v", err)
	}
	if op, err := r.Lookup("ROOT"); err != nil || op.Name != "sqrt" {
		t.Errorf("Lookup(ROOT) = %v, %v", op, err)
	}
	if got := r.Aliases()["root"]; got != "sqrt" {
		t.Errorf("Aliases()[root] = %q", got)
	}

	if err := r.RegisterAlias("x", "missing"); errcerr.GetCode(err) != errcerr.CodeNotFound {
		t.Errorf("RegisterAlias(missing) error = %v", err)
	}
	if err := r.RegisterAlias("root", "cbrt"); errcerr.GetCode(err) != errcerr.CodeInvalidInput {
		t.Errorf("RegisterAlias(duplicate) error = %v", err)
	}
}

func TestOperationsSorted(t *testing.T) {
	ops := newTestRegistry(t, false).Operations()
	if len(ops) != 35 {
		t.Errorf("Operations() returned %d operations, want 35", len(ops))
	}
	for i := 1; i < len(ops); i++ {
		a, b := ops[i-1], ops[i]
		if a.Category > b.Category || (a.Category == b.Category && a.Name > b.Name) {
			t.Errorf("Operations() not sorted at %d: %s/%s before %s/%s", i, a.Category, a.Name, b.Category, b.Name)
		}
	}
}
