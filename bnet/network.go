// This file is the network builder: gates are appended in topological
// order and validated eagerly, so a constructed Network is always
// convertible.

package bnet

import (
	"fmt"

	"github.com/katalvlaran/fraig/expr"
)

// gate is one logic vertex; exactly one of the payload fields is used,
// selected by kind.
type gate struct {
	kind   GateKind
	fanins []Signal
	e      *expr.Expr // gateExpr only
	truth  []bool     // gateTable only
}

// Network is a combinational gate-level circuit: numInputs primary
// inputs, gates in fanin-before-gate order, and marked outputs.
type Network struct {
	numInputs int
	gates     []gate
	outputs   []Signal
}

// NewNetwork creates an empty network with n primary inputs.
// Returns ErrBadInputCount for negative n.
func NewNetwork(n int) (*Network, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadInputCount, n)
	}

	return &Network{numInputs: n}, nil
}

// NumInputs reports the primary-input count.
func (nw *Network) NumInputs() int { return nw.numInputs }

// NumGates reports how many gates have been added.
func (nw *Network) NumGates() int { return len(nw.gates) }

// Outputs returns the marked output signals in marking order.
func (nw *Network) Outputs() []Signal {
	out := make([]Signal, len(nw.outputs))
	copy(out, nw.outputs)

	return out
}

// Input returns the signal of the i-th primary input.
// Returns ErrFaninRange when i is out of range.
func (nw *Network) Input(i int) (Signal, error) {
	if i < 0 || i >= nw.numInputs {
		return Signal{}, fmt.Errorf("%w: input %d of %d", ErrFaninRange, i, nw.numInputs)
	}

	return Signal{Node: i}, nil
}

// nodeCount is one past the highest id defined so far.
func (nw *Network) nodeCount() int { return nw.numInputs + len(nw.gates) }

// checkFanins validates that every fanin references an existing node.
func (nw *Network) checkFanins(fanins []Signal) error {
	for i, f := range fanins {
		if f.Node < 0 || f.Node >= nw.nodeCount() {
			return fmt.Errorf("%w: fanin %d references node %d of %d", ErrFaninRange, i, f.Node, nw.nodeCount())
		}
	}

	return nil
}

// AddGate appends a gate of the given kind and returns its signal.
//
// Arity rules: Const0/Const1 take no fanins, Buf/Not exactly one, the
// multi-input family at least one. Expression and truth-table gates
// have their own constructors.
func (nw *Network) AddGate(kind GateKind, fanins ...Signal) (Signal, error) {
	switch kind {
	case GateConst0, GateConst1:
		if len(fanins) != 0 {
			return Signal{}, fmt.Errorf("%w: constant gate with %d fanins", ErrArity, len(fanins))
		}
	case GateBuf, GateNot:
		if len(fanins) != 1 {
			return Signal{}, fmt.Errorf("%w: unary gate with %d fanins", ErrArity, len(fanins))
		}
	case GateAnd, GateNand, GateOr, GateNor, GateXor, GateXnor:
		if len(fanins) == 0 {
			return Signal{}, fmt.Errorf("%w: multi-input gate with no fanins", ErrArity)
		}
	default:
		return Signal{}, fmt.Errorf("%w: kind %d needs its dedicated constructor", ErrArity, kind)
	}
	if err := nw.checkFanins(fanins); err != nil {
		return Signal{}, err
	}

	return nw.append(gate{kind: kind, fanins: cloneSignals(fanins)}), nil
}

// AddExprGate appends a gate computing an arbitrary formula over its
// fanins: literal x<i> in e reads fanins[i].
func (nw *Network) AddExprGate(e *expr.Expr, fanins ...Signal) (Signal, error) {
	if e == nil {
		return Signal{}, ErrNilExpr
	}
	if e.NumVar() > len(fanins) {
		return Signal{}, fmt.Errorf("%w: %d variables over %d fanins", ErrExprArity, e.NumVar(), len(fanins))
	}
	if err := nw.checkFanins(fanins); err != nil {
		return Signal{}, err
	}

	return nw.append(gate{kind: gateExpr, fanins: cloneSignals(fanins), e: e}), nil
}

// AddTruthGate appends a gate computing an arbitrary truth table over
// its fanins: truth[idx] is the output when bit j of idx carries the
// value of fanins[j].
func (nw *Network) AddTruthGate(truth []bool, fanins ...Signal) (Signal, error) {
	if len(truth) != 1<<len(fanins) {
		return Signal{}, fmt.Errorf("%w: %d entries for %d fanins", ErrTruthSize, len(truth), len(fanins))
	}
	if err := nw.checkFanins(fanins); err != nil {
		return Signal{}, err
	}
	tt := make([]bool, len(truth))
	copy(tt, truth)

	return nw.append(gate{kind: gateTable, fanins: cloneSignals(fanins), truth: tt}), nil
}

// MarkOutput records s as the next primary output.
func (nw *Network) MarkOutput(s Signal) error {
	if s.Node < 0 || s.Node >= nw.nodeCount() {
		return fmt.Errorf("%w: output references node %d of %d", ErrFaninRange, s.Node, nw.nodeCount())
	}
	nw.outputs = append(nw.outputs, s)

	return nil
}

func (nw *Network) append(g gate) Signal {
	id := nw.nodeCount()
	nw.gates = append(nw.gates, g)

	return Signal{Node: id}
}

func cloneSignals(ss []Signal) []Signal {
	out := make([]Signal, len(ss))
	copy(out, ss)

	return out
}
