package core_test

import (
	"fmt"

	"github.com/katalvlaran/fraig/core"
	"github.com/katalvlaran/fraig/sat"
)

// ExampleManager_MakeAnd shows that operand order is invisible: both
// requests resolve to the identical handle.
func ExampleManager_MakeAnd() {
	m, _ := core.NewManager(16)
	a := m.MakeInput()
	b := m.MakeInput()

	and1 := m.MakeAnd(a, b)
	and2 := m.MakeAnd(b, a)
	fmt.Println(and1 == and2)
	// Output: true
}

// ExampleManager_CheckEquiv proves two differently built circuits
// compute the same function.
func ExampleManager_CheckEquiv() {
	m, _ := core.NewManager(16)
	a := m.MakeInput()
	b := m.MakeInput()

	// ¬(a ∧ b) versus ¬a ∨ ¬b.
	nand := m.MakeAnd(a, b).Not()
	orInv := m.MakeOr(a.Not(), b.Not())

	fmt.Println(m.CheckEquiv(nand, orInv) == sat.True)
	// Output: true
}
