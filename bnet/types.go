// This file declares the sentinel errors, gate kinds, and the Signal
// value type shared by the builder and the converter.

package bnet

import "errors"

// Sentinel errors for network construction and conversion.
var (
	// ErrBadInputCount indicates a negative primary-input count.
	ErrBadInputCount = errors.New("bnet: input count must be non-negative")

	// ErrArity indicates a fanin count that does not fit the gate kind.
	ErrArity = errors.New("bnet: bad fanin count for gate kind")

	// ErrFaninRange indicates a fanin referencing a not-yet-defined node.
	ErrFaninRange = errors.New("bnet: fanin out of range")

	// ErrNilExpr indicates an expression gate without an expression.
	ErrNilExpr = errors.New("bnet: nil expression")

	// ErrExprArity indicates an expression referencing more variables
	// than the gate has fanins.
	ErrExprArity = errors.New("bnet: expression variables exceed fanins")

	// ErrTruthSize indicates a truth table whose length is not 2^arity.
	ErrTruthSize = errors.New("bnet: truth table size must be 2^arity")

	// ErrInputMismatch indicates an input-handle vector of the wrong length.
	ErrInputMismatch = errors.New("bnet: input handles do not match network inputs")

	// ErrOutputMismatch indicates differing output counts between networks.
	ErrOutputMismatch = errors.New("bnet: networks have different output counts")
)

// GateKind enumerates the gate functions the adapter understands.
type GateKind uint8

const (
	// GateConst0 is the constant-0 source (no fanins).
	GateConst0 GateKind = iota

	// GateConst1 is the constant-1 source (no fanins).
	GateConst1

	// GateBuf forwards its single fanin.
	GateBuf

	// GateNot complements its single fanin.
	GateNot

	// GateAnd is a multi-input AND (≥ 1 fanin).
	GateAnd

	// GateNand is a multi-input NAND.
	GateNand

	// GateOr is a multi-input OR.
	GateOr

	// GateNor is a multi-input NOR.
	GateNor

	// GateXor is a multi-input XOR (parity).
	GateXor

	// GateXnor is a multi-input XNOR.
	GateXnor

	// gateExpr is an arbitrary single-output formula over the fanins;
	// built via AddExprGate.
	gateExpr

	// gateTable is an arbitrary truth table over the fanins; built via
	// AddTruthGate.
	gateTable
)

// Signal is an edge of the network: a node id plus an inversion flag.
// Ids 0..NumInputs-1 are the primary inputs; gates follow in creation
// order.
type Signal struct {
	Node int
	Inv  bool
}

// Not returns the complemented signal.
func (s Signal) Not() Signal { return Signal{s.Node, !s.Inv} }
