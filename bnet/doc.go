// Package bnet provides a small gate-level network IR and the adapter
// that walks it into a FRAIG — the bridge between netlist readers and
// the equivalence-checking core.
//
// What
//
//   - Network: primary inputs plus gates in topological order (fanins
//     must precede their gate, enforced at construction), with marked
//     outputs. Signals are (node id, inversion) pairs.
//   - Gate kinds: constants, buffer/inverter, the multi-input
//     AND/NAND/OR/NOR/XOR/XNOR family, arbitrary expressions, and
//     arbitrary truth tables.
//   - Convert: instantiate a network against a vector of FRAIG input
//     handles, one manager primitive per gate.
//   - CheckEquiv: build two networks over shared inputs and compare
//     corresponding outputs, aggregating the three-valued verdicts.
//
// Why
//
//	Combinational equivalence checking is "convert both, ask the
//	manager"; everything netlist-shaped stays here so the core keeps a
//	handle-only surface.
//
// Errors
//
//	ErrBadInputCount  - negative input count at construction.
//	ErrArity          - fanin count does not fit the gate kind.
//	ErrFaninRange     - a fanin references a node not yet defined.
//	ErrTruthSize      - truth-table length is not 2^arity.
//	ErrInputMismatch  - input vector does not match the network.
//	ErrOutputMismatch - output counts differ between the two networks.
//
// Complexity: Convert is O(network size) manager calls; truth-table
// gates expand to O(2^arity) literals before reduction.
package bnet
