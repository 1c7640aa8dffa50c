// Package expr provides immutable Boolean expression trees: leaves are
// variable indices with a polarity, internal nodes are n-ary AND, OR,
// or XOR. The FRAIG manager consumes them through MakeExpr; the bnet
// adapter uses them for gates whose function survives only as a
// formula.
//
// What
//
//   - Constructors: Zero, One, Literal, And, Or, Xor
//   - Accessors: Kind, Var, Inv, Children
//   - Eval over a concrete assignment, NumVar, String
//
// Why
//
//	Gate libraries and netlist formats carry arbitrary single-output
//	formulas; a tiny shared tree keeps the manager's surface to one
//	MakeExpr entry point instead of one per formula shape.
//
// Trees are immutable after construction and safe to share; a tree
// never references the graph, so the same tree can be instantiated
// against many input-handle vectors.
//
// Complexity: Eval and MakeExpr instantiation are O(size of the tree).
package expr
