// Package core implements the FRAIG node arena and the Manager that
// orchestrates structural hashing, bit-parallel simulation, and
// SAT-backed functional reduction.
//
// What
//
//   - Handle: an AIG edge — node reference plus inversion bit; the
//     constants ZERO and ONE are the two nil-node handles.
//   - Node: one AIG vertex (input or 2-input AND) carrying its
//     bit-packed simulation signature and equivalence-class link.
//   - Manager: MakeInput / MakeAnd / MakeOr / MakeXor and their n-ary
//     balanced reductions, MakeExpr, MakeCofactor, CheckEquiv.
//
// Why
//
//	Two requests that are proved to compute the same Boolean function
//	return handles denoting the same node (up to inversion), so the
//	graph stays functionally reduced while it is being built — the
//	property combinational equivalence checking rests on.
//
// How a MakeAnd resolves, in order:
//
//  1. Trivial shortcuts (constants, equal or complementary operands).
//  2. Operand normalization (higher variable id first).
//  3. Structural-hash probe: the same fanin pair is never built twice.
//  4. Node creation: simulate, register, emit the Tseitin clauses.
//  5. SAT constancy check, skipped once both values were simulated.
//  6. Signature-hash probe; each candidate is discharged by SAT, and a
//     refuting model is folded back into every node's signature.
//  7. Registration of a genuinely new function.
//
// Determinism
//
//	Simulation patterns come from a seeded PRNG (WithSeed / WithRand),
//	so graph construction is reproducible run to run. SAT outcomes are
//	deterministic unless a solver timeout is configured.
//
// Concurrency
//
//	The Manager is single-threaded by contract; callers that share one
//	across goroutines must serialize externally. Handles are plain
//	values and may be copied freely.
//
// Errors
//
//	ErrBadSigSize  - non-positive signature size at construction.
//	ErrNilExpr     - MakeExpr received a nil expression.
//	ErrInputIndex  - input or literal index out of range.
//
// SAT outcomes are never errors: CheckEquiv returns a sat.SAT3 and
// Unknown simply leaves the graph conservative. Violated internal
// invariants panic — they are programmer bugs, not runtime conditions.
package core
