// This file holds the Manager: the node arena, the MakeAnd
// orchestration, the public equivalence check, introspection, and the
// logging/tuning knobs.

package core

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/fraig/sat"
)

// Manager owns the FRAIG: the node arena, both hash tables, the
// simulation substrate, the SAT prover, and the PRNG. All mutation
// flows through its methods; it is not safe for concurrent use.
type Manager struct {
	allNodes   []*Node
	inputNodes []*Node

	structTab structTable
	patTab    patTable

	prover *sat.Prover

	patSize int // allocated words per node
	patUsed int // valid words per node (absorbed batches included)
	rng     *rand.Rand

	loopLimit int

	logger   *zap.Logger
	logLevel zap.AtomicLevel

	simCount int
	simTime  time.Duration
}

// NewManager builds an empty FRAIG whose nodes carry sigSize initial
// 64-bit simulation words each.
//
// Returns ErrBadSigSize for a non-positive sigSize, or the prover's
// configuration error.
// Complexity: O(initial bucket counts).
func NewManager(sigSize int, opts ...Option) (*Manager, error) {
	if sigSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSigSize, sigSize)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	prover, err := sat.NewProver(sat.WithTimeout(cfg.timeout))
	if err != nil {
		return nil, err
	}

	m := &Manager{
		structTab: newStructTable(),
		patTab:    newPatTable(),
		prover:    prover,
		patSize:   sigSize,
		patUsed:   sigSize,
		rng:       cfg.rng,
		loopLimit: cfg.loopLimit,
		logLevel:  zap.NewAtomicLevelAt(zapcore.FatalLevel),
	}
	if cfg.logger != nil {
		m.logger = cfg.logger
	} else {
		m.logger = zap.NewNop()
	}

	return m, nil
}

// newNode allocates the next node and its solver variable; the dense
// variable index must equal the node's arena position.
func (m *Manager) newNode() *Node {
	n := &Node{
		varID:   len(m.allNodes),
		inputID: -1,
		pat:     make([]uint64, m.patSize),
	}
	if v := m.prover.NewVar(); v != n.varID {
		panic(fmt.Sprintf("core: solver variable %d does not match node position %d", v, n.varID))
	}
	m.allNodes = append(m.allNodes, n)

	return n
}

// MakeZero returns the constant-0 handle.
func (m *Manager) MakeZero() Handle { return Zero() }

// MakeOne returns the constant-1 handle.
func (m *Manager) MakeOne() Handle { return One() }

// MakeInput creates a fresh primary input with a random simulation
// signature and returns its positive handle.
// Complexity: O(patUsed).
func (m *Manager) MakeInput() Handle {
	node := m.newNode()
	node.inputID = len(m.inputNodes)
	m.inputNodes = append(m.inputNodes, node)
	m.initInputPat(node)
	ans := Handle{node, false}
	m.logger.Debug("make_input", zap.Stringer("handle", ans))

	return ans
}

// MakeAnd returns a canonical handle for the conjunction of h1 and h2.
// If the requested function was ever built before — structurally or
// only functionally — the previously registered handle comes back,
// possibly complemented. Unknown SAT outcomes degrade gracefully: the
// handle still computes the requested function, merely in an unshared
// node.
func (m *Manager) MakeAnd(h1, h2 Handle) Handle {
	m.logger.Debug("make_and", zap.Stringer("h1", h1), zap.Stringer("h2", h2))

	// 1. Trivial shortcuts: constant-time, no allocation, no SAT.
	var ans Handle
	switch {
	case h1.IsZero() || h2.IsZero():
		ans = Zero()
	case h1.IsOne():
		ans = h2
	case h2.IsOne():
		ans = h1
	case h1 == h2:
		ans = h1
	case h1.n == h2.n:
		// Same node, opposite polarity.
		ans = Zero()
	default:
		ans = m.makeAndNode(h1, h2)
	}
	m.logger.Debug("make_and done", zap.Stringer("ans", ans))

	return ans
}

// makeAndNode handles the non-trivial path of MakeAnd: steps 2–7.
func (m *Manager) makeAndNode(h1, h2 Handle) Handle {
	// 2. Normalize so fanin0 carries the higher variable id; this is
	// what makes the structural key canonical.
	if h1.n.varID < h2.n.varID {
		h1, h2 = h2, h1
	}

	// 3. Structural hashing: identical fanin pairs are never rebuilt.
	if hit, ok := m.structTab.find(h1, h2); ok {
		return hit
	}

	// 4. Node creation: simulate over the full used range, register
	// the structure, emit the Tseitin clauses.
	node := m.newNode()
	node.setFanin(h1, h2)
	node.calcPat(0, m.patUsed)
	m.structTab.add(node)
	m.prover.AddAnd(node.varID, h1.n.varID, h1.inv, h2.n.varID, h2.inv)

	// 5. Constancy check, bounded by the 0/1 marks.
	if ans, proved := m.verifyConst(node); proved {
		return ans
	}

	// 6. Signature-hash candidates, discharged one SAT query at a time.
	if hit, ok := m.patTab.find(node, m); ok {
		return hit
	}

	// 7. A genuinely new function: register and hand out.
	m.patTab.add(node)

	return Handle{node, false}
}

// verifyConst probes a fresh AND node for constancy. A mark that is
// already set means the simulator has witnessed that value, so the
// corresponding SAT probe is skipped. Every refutation is absorbed
// into the signatures, which must set the missing mark.
func (m *Manager) verifyConst(node *Node) (Handle, bool) {
	var ans Handle
	proved := false

	if !node.seen1 {
		switch m.prover.CheckConst(node.varID, false) {
		case sat.True:
			node.setRep(Zero())
			ans = Zero()
			proved = true
		case sat.False:
			m.addPat(node)
			if !node.seen1 {
				panic(fmt.Sprintf("core: const-0 refutation left node %d without a 1-bit", node.varID))
			}
		}
	}
	if !node.seen0 {
		switch m.prover.CheckConst(node.varID, true) {
		case sat.True:
			node.setRep(One())
			ans = One()
			proved = true
		case sat.False:
			m.addPat(node)
			if !node.seen0 {
				panic(fmt.Sprintf("core: const-1 refutation left node %d without a 0-bit", node.varID))
			}
		}
	}

	return ans, proved
}

// CheckEquiv asks whether two handles denote the same Boolean
// function. True and False are definitive; Unknown means the solver
// budget ran out. Unlike the internal discharge path, a refutation
// here is not folded back into the signatures.
func (m *Manager) CheckEquiv(h1, h2 Handle) sat.SAT3 {
	if h1 == h2 {
		return sat.True
	}
	if h1.n == h2.n {
		// Same node with opposite polarity, or the two distinct
		// constants: never equal.
		return sat.False
	}

	// One side constant: the question reduces to a constancy probe of
	// the other side (both constant was covered by the two cases above).
	switch {
	case h1.IsZero():
		return m.prover.CheckConst(h2.n.varID, h2.inv)
	case h1.IsOne():
		return m.prover.CheckConst(h2.n.varID, !h2.inv)
	case h2.IsZero():
		return m.prover.CheckConst(h1.n.varID, h1.inv)
	case h2.IsOne():
		return m.prover.CheckConst(h1.n.varID, !h1.inv)
	}

	return m.prover.CheckEquiv(h1.n.varID, h2.n.varID, h1.inv != h2.inv)
}

// NodeNum reports how many nodes exist, inputs included.
func (m *Manager) NodeNum() int { return len(m.allNodes) }

// InputNum reports how many primary inputs exist.
func (m *Manager) InputNum() int { return len(m.inputNodes) }

// InputNode returns the positive handle of the i-th primary input.
// Returns ErrInputIndex when i is out of range.
func (m *Manager) InputNode(i int) (Handle, error) {
	if i < 0 || i >= len(m.inputNodes) {
		return Handle{}, fmt.Errorf("%w: %d of %d", ErrInputIndex, i, len(m.inputNodes))
	}

	return Handle{m.inputNodes[i], false}, nil
}

// SatStats returns a snapshot of the prover's per-call histograms.
func (m *Manager) SatStats() sat.Stats { return m.prover.Stats() }

// SetLogLevel tunes the managed logger: 0 = off, 1 = info, 2+ = debug.
// A logger injected with WithLogger keeps its own level.
func (m *Manager) SetLogLevel(level int) {
	switch {
	case level <= 0:
		m.logLevel.SetLevel(zapcore.FatalLevel)
	case level == 1:
		m.logLevel.SetLevel(zapcore.InfoLevel)
	default:
		m.logLevel.SetLevel(zapcore.DebugLevel)
	}
}

// SetLogStream points the managed logger at w using the console
// encoder, honoring the level set via SetLogLevel. It replaces any
// logger injected with WithLogger.
func (m *Manager) SetLogStream(w io.Writer) {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	m.logger = zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), m.logLevel))
}

// SetLoopLimit bounds signature-hash retry rounds per lookup.
// Non-positive values have no effect.
func (m *Manager) SetLoopLimit(n int) {
	if n > 0 {
		m.loopLimit = n
	}
}

// DumpStats writes the simulation totals and both SAT histograms.
func (m *Manager) DumpStats(w io.Writer) {
	fmt.Fprintln(w, "=====<< FraigMgr Statistics >>=====")
	fmt.Fprintf(w, "simulation:\n total %d rounds\n total %v\n", m.simCount, m.simTime)
	st := m.prover.Stats()
	fmt.Fprintln(w, "----------------------------------")
	fmt.Fprintln(w, "check_const:")
	fmt.Fprint(w, st.CheckConst)
	fmt.Fprintln(w, "----------------------------------")
	fmt.Fprintln(w, "check_equiv:")
	fmt.Fprint(w, st.CheckEquiv)
}
