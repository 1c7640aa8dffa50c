// This file is the network→FRAIG adapter and the equivalence-checking
// driver built on top of it.

package bnet

import (
	"fmt"

	"github.com/katalvlaran/fraig/core"
	"github.com/katalvlaran/fraig/sat"
)

// Convert instantiates the network against the given input handles
// and returns the handles of the marked outputs, in marking order.
//
// Gates are walked in their construction (topological) order, each
// dispatched to the matching manager primitive, so shared logic
// canonicalizes across gates — and across repeated Convert calls on
// the same manager.
//
// Returns ErrInputMismatch when len(inputs) != NumInputs.
func Convert(mgr *core.Manager, nw *Network, inputs []core.Handle) ([]core.Handle, error) {
	if len(inputs) != nw.numInputs {
		return nil, fmt.Errorf("%w: %d handles for %d inputs", ErrInputMismatch, len(inputs), nw.numInputs)
	}

	handles := make([]core.Handle, 0, nw.nodeCount())
	handles = append(handles, inputs...)

	at := func(s Signal) core.Handle {
		h := handles[s.Node]
		if s.Inv {
			h = h.Not()
		}

		return h
	}

	for i := range nw.gates {
		g := &nw.gates[i]
		fs := make([]core.Handle, len(g.fanins))
		for j, f := range g.fanins {
			fs[j] = at(f)
		}

		var h core.Handle
		switch g.kind {
		case GateConst0:
			h = mgr.MakeZero()
		case GateConst1:
			h = mgr.MakeOne()
		case GateBuf:
			h = fs[0]
		case GateNot:
			h = fs[0].Not()
		case GateAnd:
			h = mgr.MakeAndN(fs)
		case GateNand:
			h = mgr.MakeAndN(fs).Not()
		case GateOr:
			h = mgr.MakeOrN(fs)
		case GateNor:
			h = mgr.MakeOrN(fs).Not()
		case GateXor:
			h = mgr.MakeXorN(fs)
		case GateXnor:
			h = mgr.MakeXorN(fs).Not()
		case gateExpr:
			var err error
			h, err = mgr.MakeExpr(g.e, fs)
			if err != nil {
				return nil, err
			}
		default: // gateTable
			h = tableHandle(mgr, g.truth, fs)
		}
		handles = append(handles, h)
	}

	outs := make([]core.Handle, len(nw.outputs))
	for i, s := range nw.outputs {
		outs[i] = at(s)
	}

	return outs, nil
}

// tableHandle expands a truth table as its minterm sum-of-products;
// the balanced reductions take care of sharing and collapse.
func tableHandle(mgr *core.Manager, truth []bool, fs []core.Handle) core.Handle {
	var minterms []core.Handle
	for idx, on := range truth {
		if !on {
			continue
		}
		if len(fs) == 0 {
			return mgr.MakeOne()
		}
		lits := make([]core.Handle, len(fs))
		for j, f := range fs {
			if idx&(1<<j) != 0 {
				lits[j] = f
			} else {
				lits[j] = f.Not()
			}
		}
		minterms = append(minterms, mgr.MakeAndN(lits))
	}
	if len(minterms) == 0 {
		return mgr.MakeZero()
	}

	return mgr.MakeOrN(minterms)
}

// CheckEquiv builds both networks over a shared fresh input vector and
// compares corresponding outputs.
//
//	True    — every output pair proved equivalent.
//	False   — some pair differs (definitive).
//	Unknown — no pair differed, but at least one verdict timed out.
//
// Returns ErrInputMismatch / ErrOutputMismatch when the networks do
// not line up, or any conversion error.
func CheckEquiv(mgr *core.Manager, a, b *Network) (sat.SAT3, error) {
	if a.numInputs != b.numInputs {
		return sat.Unknown, fmt.Errorf("%w: %d vs %d inputs", ErrInputMismatch, a.numInputs, b.numInputs)
	}
	if len(a.outputs) != len(b.outputs) {
		return sat.Unknown, fmt.Errorf("%w: %d vs %d outputs", ErrOutputMismatch, len(a.outputs), len(b.outputs))
	}

	inputs := make([]core.Handle, a.numInputs)
	for i := range inputs {
		inputs[i] = mgr.MakeInput()
	}

	outsA, err := Convert(mgr, a, inputs)
	if err != nil {
		return sat.Unknown, err
	}
	outsB, err := Convert(mgr, b, inputs)
	if err != nil {
		return sat.Unknown, err
	}

	verdict := sat.True
	for i := range outsA {
		switch mgr.CheckEquiv(outsA[i], outsB[i]) {
		case sat.False:
			return sat.False, nil
		case sat.Unknown:
			verdict = sat.Unknown
		}
	}

	return verdict, nil
}
