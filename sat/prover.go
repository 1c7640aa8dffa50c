package sat

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// ErrBadTimeout indicates a negative solve timeout was supplied.
var ErrBadTimeout = errors.New("sat: timeout must be non-negative")

// Solver is the minimal incremental-CDCL surface the prover needs.
// *gini.Gini satisfies it; any solver with dense variable allocation,
// permanent clause addition, and assumption-based solving fits.
type Solver interface {
	// Lit allocates a fresh variable and returns its positive literal.
	Lit() z.Lit

	// Add appends a literal to the clause under construction;
	// Add(0) terminates the clause.
	Add(m z.Lit)

	// Assume registers assumption literals for the next solve.
	Assume(ms ...z.Lit)

	// Solve runs to completion: 1 = sat, -1 = unsat.
	Solve() int

	// Try solves under a deadline: 1 = sat, -1 = unsat, 0 = unknown.
	Try(dur time.Duration) int

	// Value reads the literal's value from the last satisfying model.
	Value(m z.Lit) bool
}

// Option configures a Prover before first use.
type Option func(*Prover)

// WithTimeout bounds every individual solve call; d == 0 removes the
// bound. A bounded call may return Unknown.
func WithTimeout(d time.Duration) Option {
	return func(p *Prover) { p.timeout = d }
}

// WithSolver substitutes the backend; nil has no effect.
func WithSolver(s Solver) Option {
	return func(p *Prover) {
		if s != nil {
			p.s = s
		}
	}
}

// Prover maintains the incremental Tseitin CNF of the graph and
// answers constancy and equivalence queries three-valuedly.
//
// Not safe for concurrent use; the engine serializes all access.
type Prover struct {
	s       Solver
	timeout time.Duration
	numVar  int

	constInfo Histogram // CheckConst outcomes
	equivInfo Histogram // CheckEquiv outcomes
}

// NewProver returns a prover over a fresh gini instance, unless
// WithSolver overrides the backend.
func NewProver(opts ...Option) (*Prover, error) {
	p := &Prover{s: gini.New()}
	for _, opt := range opts {
		opt(p)
	}
	if p.timeout < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadTimeout, p.timeout)
	}

	return p, nil
}

// NewVar allocates the next solver variable and returns its dense
// index. Indices start at 0 and grow by one per call; the engine
// relies on index == node position.
func (p *Prover) NewVar() int {
	l := p.s.Lit()
	v := p.numVar
	p.numVar++
	if int(l.Var()) != v+1 {
		panic(fmt.Sprintf("sat: solver variable %d out of step with index %d", l.Var(), v))
	}

	return v
}

// NumVar reports how many variables have been allocated.
func (p *Prover) NumVar() int { return p.numVar }

// lit maps a dense variable index and inversion flag to a solver literal.
func (p *Prover) lit(v int, inv bool) z.Lit {
	l := z.Var(v + 1).Pos()
	if inv {
		l = l.Not()
	}

	return l
}

// AddAnd emits the three clauses of out = (f0 XOR inv0) ∧ (f1 XOR inv1):
//
//	(¬f0 ∨ ¬f1 ∨ out), (f0 ∨ ¬out), (f1 ∨ ¬out)
//
// with the fanin inversions folded into the literal polarity.
func (p *Prover) AddAnd(out, f0 int, inv0 bool, f1 int, inv1 bool) {
	lo := p.lit(out, false)
	l0 := p.lit(f0, inv0)
	l1 := p.lit(f1, inv1)

	p.s.Add(l0.Not())
	p.s.Add(l1.Not())
	p.s.Add(lo)
	p.s.Add(0)

	p.s.Add(l0)
	p.s.Add(lo.Not())
	p.s.Add(0)

	p.s.Add(l1)
	p.s.Add(lo.Not())
	p.s.Add(0)
}

// check asks whether the conjunction of the assumptions is satisfiable.
// True = sat, False = unsat, Unknown = budget exhausted.
func (p *Prover) check(assumptions ...z.Lit) SAT3 {
	p.s.Assume(assumptions...)
	var r int
	if p.timeout > 0 {
		r = p.s.Try(p.timeout)
	} else {
		r = p.s.Solve()
	}
	switch r {
	case 1:
		return True
	case -1:
		return False
	}

	return Unknown
}

// CheckConst asks whether node v is constant, i.e. v ≡ inv as a value
// (inv=false probes constant 0, inv=true probes constant 1).
//
//	True    — proved; the unit clause pinning v is learned permanently.
//	False   — refuted; the witnessing model is readable via Value.
//	Unknown — no information, solver state untouched.
func (p *Prover) CheckConst(v int, inv bool) SAT3 {
	start := time.Now()
	code := Unknown

	// lit = 1 satisfiable? Unsatisfiable means the literal never
	// holds, so the node is stuck at the opposite phase.
	l := p.lit(v, inv)
	switch p.check(l) {
	case False:
		p.s.Add(l.Not())
		p.s.Add(0)
		code = True
	case True:
		code = False
	}
	p.constInfo.record(code, time.Since(start))

	return code
}

// CheckEquiv asks whether v1 ≡ v2 XOR inv by refuting both difference
// directions in sequence.
//
//	True    — both directions unsat; the two binary clauses forcing the
//	          equality are learned permanently.
//	False   — a difference witness exists, readable via Value.
//	Unknown — a direction timed out.
func (p *Prover) CheckEquiv(v1, v2 int, inv bool) SAT3 {
	start := time.Now()
	code := Unknown

	l1 := p.lit(v1, false)
	l2 := p.lit(v2, inv)

	// The nodes differ iff (¬l1 ∧ l2) or (l1 ∧ ¬l2) is satisfiable.
	stat := p.check(l1.Not(), l2)
	if stat == False {
		stat = p.check(l1, l2.Not())
		if stat == False {
			p.s.Add(l1.Not())
			p.s.Add(l2)
			p.s.Add(0)
			p.s.Add(l1)
			p.s.Add(l2.Not())
			p.s.Add(0)
			code = True
			p.equivInfo.record(code, time.Since(start))

			return code
		}
	}
	if stat == True {
		code = False
	}
	p.equivInfo.record(code, time.Since(start))

	return code
}

// Value reads variable v from the most recent satisfying model.
// Meaningful only immediately after a call that returned False.
func (p *Prover) Value(v int) bool {
	return p.s.Value(p.lit(v, false))
}

// Stats returns a snapshot of the per-call outcome histograms.
func (p *Prover) Stats() Stats {
	return Stats{CheckConst: p.constInfo, CheckEquiv: p.equivInfo}
}
