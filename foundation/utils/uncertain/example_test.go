package uncertain_test

import (
	"fmt"

	"github.com/msto63/errc/foundation/utils/uncertain"
)

func ExampleValue_Add() {
	a := uncertain.New(10.0, 0.3)
	b := uncertain.New(2.0, 0.4)
	fmt.Println(a.Add(b))
	// Output: 12.00000 ± 0.50000
}

func ExampleValue_AssignNumber() {
	var v uncertain.Value[float64, float64]
	_ = v.SetDefaultMode(uncertain.ModeHalf, nil)

	v.AssignNumber(0.03)
	fmt.Println(v.Format(3))
	// Output: 0.030 ± 0.005
}

func ExampleValue_PostInc() {
	v := uncertain.New(10, 0.5)
	old := v.PostInc()
	fmt.Println(old, "->", v)
	// Output: 10 ± 0.50000 -> 11 ± 0.50000
}
