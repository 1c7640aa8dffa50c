// This file builds every derived operation out of MakeAnd: OR, XOR,
// the balanced n-ary reductions, expression instantiation, and
// cofactoring. Nothing here touches the hash tables or the solver
// directly — canonicity comes entirely from MakeAnd.

package core

import (
	"fmt"

	"github.com/katalvlaran/fraig/expr"
)

// MakeOr returns a canonical handle for h1 ∨ h2 (De Morgan on MakeAnd).
func (m *Manager) MakeOr(h1, h2 Handle) Handle {
	return m.MakeAnd(h1.Not(), h2.Not()).Not()
}

// MakeXor returns a canonical handle for h1 ⊕ h2, built as
// (h1 ∧ ¬h2) ∨ (¬h1 ∧ h2).
func (m *Manager) MakeXor(h1, h2 Handle) Handle {
	t1 := m.MakeAnd(h1, h2.Not())
	t2 := m.MakeAnd(h1.Not(), h2)

	return m.MakeOr(t1, t2)
}

// MakeAndN reduces the operands with balanced halving, so the result
// has depth O(log n) and shared subtrees canonicalize predictably.
// An empty list is a programmer bug and panics.
func (m *Manager) MakeAndN(hs []Handle) Handle {
	if len(hs) == 0 {
		panic("core: MakeAndN with no operands")
	}

	return m.reduceAnd(hs, false)
}

// MakeOrN is the balanced n-ary OR: ¬AND(¬h...).
func (m *Manager) MakeOrN(hs []Handle) Handle {
	if len(hs) == 0 {
		panic("core: MakeOrN with no operands")
	}

	return m.reduceAnd(hs, true).Not()
}

// MakeXorN is the balanced n-ary XOR.
func (m *Manager) MakeXorN(hs []Handle) Handle {
	if len(hs) == 0 {
		panic("core: MakeXorN with no operands")
	}

	return m.reduceXor(hs)
}

// reduceAnd ANDs hs[...] with balanced halving; invIn complements
// every operand on the way in (the OR path).
func (m *Manager) reduceAnd(hs []Handle, invIn bool) Handle {
	if len(hs) == 1 {
		h := hs[0]
		if invIn {
			h = h.Not()
		}

		return h
	}
	mid := (len(hs) + 1) / 2

	return m.MakeAnd(m.reduceAnd(hs[:mid], invIn), m.reduceAnd(hs[mid:], invIn))
}

// reduceXor XORs hs[...] with balanced halving.
func (m *Manager) reduceXor(hs []Handle) Handle {
	if len(hs) == 1 {
		return hs[0]
	}
	mid := (len(hs) + 1) / 2

	return m.MakeXor(m.reduceXor(hs[:mid]), m.reduceXor(hs[mid:]))
}

// MakeExpr instantiates an expression tree against the given input
// handles: leaf i becomes inputs[i] under the leaf's polarity.
//
// Returns ErrNilExpr for a nil tree and ErrInputIndex when a leaf
// references past the end of inputs.
// Complexity: O(tree size) MakeAnd calls.
func (m *Manager) MakeExpr(e *expr.Expr, inputs []Handle) (Handle, error) {
	if e == nil {
		return Handle{}, ErrNilExpr
	}
	switch e.Kind() {
	case expr.KindConst0:
		return Zero(), nil
	case expr.KindConst1:
		return One(), nil
	case expr.KindLit:
		if e.Var() >= len(inputs) {
			return Handle{}, fmt.Errorf("%w: literal x%d over %d inputs", ErrInputIndex, e.Var(), len(inputs))
		}
		h := inputs[e.Var()]
		if e.Inv() {
			h = h.Not()
		}

		return h, nil
	}

	kids := e.Children()
	hs := make([]Handle, len(kids))
	for i, k := range kids {
		h, err := m.MakeExpr(k, inputs)
		if err != nil {
			return Handle{}, err
		}
		hs[i] = h
	}
	switch e.Kind() {
	case expr.KindAnd:
		return m.MakeAndN(hs), nil
	case expr.KindOr:
		return m.MakeOrN(hs), nil
	default:
		return m.MakeXorN(hs), nil
	}
}

// MakeCofactor returns the cofactor of h with respect to input
// inputID: the input is pinned to 0 when inv is set, to 1 otherwise.
// Shared subgraphs are visited once per call.
func (m *Manager) MakeCofactor(h Handle, inputID int, inv bool) Handle {
	if h.IsConst() {
		return h
	}
	memo := make(map[*Node]Handle)
	ans := m.cofactorNode(h.n, inputID, inv, memo)
	if h.inv {
		ans = ans.Not()
	}

	return ans
}

// cofactorNode rebuilds the positive cone of n under the restriction.
func (m *Manager) cofactorNode(n *Node, inputID int, inv bool, memo map[*Node]Handle) Handle {
	if ans, ok := memo[n]; ok {
		return ans
	}
	var ans Handle
	if n.isInput() {
		switch {
		case n.inputID != inputID:
			ans = Handle{n, false}
		case inv:
			ans = Zero()
		default:
			ans = One()
		}
	} else {
		c0 := m.cofactorFanin(n.fanin[0], inputID, inv, memo)
		c1 := m.cofactorFanin(n.fanin[1], inputID, inv, memo)
		ans = m.MakeAnd(c0, c1)
	}
	memo[n] = ans

	return ans
}

// cofactorFanin restricts one fanin edge, reapplying its inversion.
func (m *Manager) cofactorFanin(h Handle, inputID int, inv bool, memo map[*Node]Handle) Handle {
	ans := m.cofactorNode(h.n, inputID, inv, memo)
	if h.inv {
		ans = ans.Not()
	}

	return ans
}
