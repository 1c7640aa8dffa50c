// Package sat wraps an incremental CDCL SAT solver behind the small,
// three-valued proving surface the FRAIG engine consumes.
//
// What
//
//   - One solver variable per graph node, allocated densely from 0.
//   - AddAnd emits the three Tseitin clauses of out = f0 ∧ f1, with
//     fanin inversions folded into the literal polarity.
//   - CheckConst / CheckEquiv answer by assumption-based solving and
//     learn the proved fact as a permanent unit / binary clause, so
//     later queries get cheaper instead of re-deriving it.
//   - Every call lands in one of three outcome buckets {success,
//     failure, abort} with count, total time, and max time.
//
// Why
//
//	Random simulation only ever refutes equivalences; the solver is
//	the single source of "provably equal". Keeping the CNF incremental
//	(clauses accumulate across the whole graph lifetime) is what makes
//	thousands of small queries affordable.
//
// Determinism
//
//	The default backend is go-air/gini, which is deterministic for a
//	fixed clause sequence when run without a timeout. With WithTimeout
//	a query may return Unknown; callers must treat Unknown as "no
//	information" (the engine stays conservative).
//
// Complexity
//
//	Solving is NP-complete in general; per-call cost is bounded only
//	by the optional timeout. Clause emission is O(1) per AND node.
package sat
