// Package fraig is a Functionally Reduced And-Inverter Graph engine —
// the combinational-equivalence-checking core of a logic-synthesis flow.
//
// 🚀 What is fraig?
//
//	A library that incrementally builds a 2-input AND/INVERTER DAG in
//	which every surviving node computes a distinct Boolean function:
//
//	  • Structural hashing: identical AND structures are built once
//	  • Bit-parallel random simulation: signatures propose candidates
//	  • Incremental SAT: candidates are proved or refuted on the fly
//	  • Counter-examples sharpen the simulator after every refutation
//
// ✨ Why choose fraig?
//
//   - Canonical handles — equivalent requests return the same node
//   - Conservative     — an aborted SAT call never corrupts the graph
//   - Deterministic    — seeded simulation, reproducible end to end
//   - Pluggable        — any assumption-capable CDCL solver fits
//
// Everything is organized under four subpackages:
//
//	core/ — Handle and node arena, the two hash tables, the simulation
//	        substrate, and the Manager with the MakeAnd orchestration
//	sat/  — three-valued prover over an incremental SAT solver
//	expr/ — polarity-leaf AND/OR/XOR trees consumed by MakeExpr
//	bnet/ — gate-level network IR and the network→FRAIG adapter
//
// Quick sketch of a MakeAnd call:
//
//	simplify → normalize → strash probe → simulate → SAT constancy
//	        → signature probe → SAT equivalence → merge or register
//
// See DESIGN.md for the reasoning behind the data layout.
//
//	go get github.com/katalvlaran/fraig
package fraig
