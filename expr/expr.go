package expr

import (
	"fmt"
	"strings"
)

// Kind discriminates the node forms of an expression tree.
type Kind uint8

const (
	// KindConst0 is the constant-false leaf.
	KindConst0 Kind = iota

	// KindConst1 is the constant-true leaf.
	KindConst1

	// KindLit is a variable leaf with a polarity.
	KindLit

	// KindAnd is an n-ary conjunction (n ≥ 2).
	KindAnd

	// KindOr is an n-ary disjunction (n ≥ 2).
	KindOr

	// KindXor is an n-ary parity (n ≥ 2).
	KindXor
)

// Expr is one node of an immutable expression tree.
type Expr struct {
	kind Kind
	v    int
	inv  bool
	kids []*Expr
}

var (
	zero = &Expr{kind: KindConst0}
	one  = &Expr{kind: KindConst1}
)

// Zero returns the constant-false expression.
func Zero() *Expr { return zero }

// One returns the constant-true expression.
func One() *Expr { return one }

// Literal returns a leaf for variable v, complemented when inv is set.
// A negative index is a programmer bug and panics.
func Literal(v int, inv bool) *Expr {
	if v < 0 {
		panic(fmt.Sprintf("expr: negative variable index %d", v))
	}

	return &Expr{kind: KindLit, v: v, inv: inv}
}

// And returns the conjunction of the children.
// One child is returned as-is; zero children panic.
func And(children ...*Expr) *Expr { return compose(KindAnd, children) }

// Or returns the disjunction of the children.
// One child is returned as-is; zero children panic.
func Or(children ...*Expr) *Expr { return compose(KindOr, children) }

// Xor returns the parity of the children.
// One child is returned as-is; zero children panic.
func Xor(children ...*Expr) *Expr { return compose(KindXor, children) }

func compose(kind Kind, children []*Expr) *Expr {
	switch len(children) {
	case 0:
		panic("expr: operator needs at least one child")
	case 1:
		return children[0]
	}
	kids := make([]*Expr, len(children))
	for i, c := range children {
		if c == nil {
			panic(fmt.Sprintf("expr: nil child at position %d", i))
		}
		kids[i] = c
	}

	return &Expr{kind: kind, kids: kids}
}

// Kind reports the node form.
func (e *Expr) Kind() Kind { return e.kind }

// Var reports the variable index; meaningful only for KindLit.
func (e *Expr) Var() int { return e.v }

// Inv reports the leaf polarity; meaningful only for KindLit.
func (e *Expr) Inv() bool { return e.inv }

// Children returns the child list of an internal node. The slice is
// shared; callers must not mutate it.
func (e *Expr) Children() []*Expr { return e.kids }

// NumVar returns one past the highest variable index referenced, i.e.
// the minimum input-vector length Eval and MakeExpr accept.
func (e *Expr) NumVar() int {
	switch e.kind {
	case KindConst0, KindConst1:
		return 0
	case KindLit:
		return e.v + 1
	}
	max := 0
	for _, k := range e.kids {
		if n := k.NumVar(); n > max {
			max = n
		}
	}

	return max
}

// Eval computes the expression under a concrete assignment.
// assign must cover NumVar() variables.
func (e *Expr) Eval(assign []bool) bool {
	switch e.kind {
	case KindConst0:
		return false
	case KindConst1:
		return true
	case KindLit:
		return assign[e.v] != e.inv
	case KindAnd:
		for _, k := range e.kids {
			if !k.Eval(assign) {
				return false
			}
		}

		return true
	case KindOr:
		for _, k := range e.kids {
			if k.Eval(assign) {
				return true
			}
		}

		return false
	}
	// KindXor
	parity := false
	for _, k := range e.kids {
		parity = parity != k.Eval(assign)
	}

	return parity
}

// String renders the tree with x<i> leaves and infix operators.
func (e *Expr) String() string {
	switch e.kind {
	case KindConst0:
		return "0"
	case KindConst1:
		return "1"
	case KindLit:
		if e.inv {
			return fmt.Sprintf("~x%d", e.v)
		}

		return fmt.Sprintf("x%d", e.v)
	}
	op := " & "
	switch e.kind {
	case KindOr:
		op = " | "
	case KindXor:
		op = " ^ "
	}
	parts := make([]string, len(e.kids))
	for i, k := range e.kids {
		parts[i] = k.String()
	}

	return "(" + strings.Join(parts, op) + ")"
}
