package sat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fraig/sat"
)

// TestNewProver_BadTimeout verifies option validation.
func TestNewProver_BadTimeout(t *testing.T) {
	_, err := sat.NewProver(sat.WithTimeout(-time.Second))
	require.ErrorIs(t, err, sat.ErrBadTimeout)
}

// TestNewVar_Dense verifies the dense index contract.
func TestNewVar_Dense(t *testing.T) {
	p, err := sat.NewProver()
	require.NoError(t, err)

	for want := 0; want < 4; want++ {
		require.Equal(t, want, p.NewVar())
	}
	require.Equal(t, 4, p.NumVar())
}

// TestCheckConst_FreeVariable: an unconstrained variable is not
// constant in either phase, and the refuting model is readable.
func TestCheckConst_FreeVariable(t *testing.T) {
	p, err := sat.NewProver()
	require.NoError(t, err)
	v := p.NewVar()

	require.Equal(t, sat.False, p.CheckConst(v, false))
	require.True(t, p.Value(v), "const-0 refutation must witness v=1")

	require.Equal(t, sat.False, p.CheckConst(v, true))
	require.False(t, p.Value(v), "const-1 refutation must witness v=0")
}

// TestCheckConst_ContradictoryAnd: c = a ∧ ¬a is provably constant 0,
// and the learned unit clause persists for later queries.
func TestCheckConst_ContradictoryAnd(t *testing.T) {
	p, err := sat.NewProver()
	require.NoError(t, err)
	a := p.NewVar()
	c := p.NewVar()
	p.AddAnd(c, a, false, a, true)

	require.Equal(t, sat.True, p.CheckConst(c, false))
	// Once pinned to 0, the const-1 probe must keep failing.
	require.Equal(t, sat.False, p.CheckConst(c, true))
}

// TestCheckEquiv_IdenticalStructure: two ANDs over the same fanins are
// equivalent; the equality is learned and survives re-querying.
func TestCheckEquiv_IdenticalStructure(t *testing.T) {
	p, err := sat.NewProver()
	require.NoError(t, err)
	a := p.NewVar()
	b := p.NewVar()
	c1 := p.NewVar()
	c2 := p.NewVar()
	p.AddAnd(c1, a, false, b, false)
	p.AddAnd(c2, a, false, b, false)

	require.Equal(t, sat.True, p.CheckEquiv(c1, c2, false))
	require.Equal(t, sat.True, p.CheckEquiv(c1, c2, false))
}

// TestCheckEquiv_DeMorgan: the misapplied De Morgan law is refuted —
// a NOR built as ¬a ∧ ¬b equals neither a ∧ b nor ¬(a ∧ b).
func TestCheckEquiv_DeMorgan(t *testing.T) {
	p, err := sat.NewProver()
	require.NoError(t, err)
	a := p.NewVar()
	b := p.NewVar()
	nor := p.NewVar()
	and := p.NewVar()
	p.AddAnd(nor, a, true, b, true) // nor = ¬a ∧ ¬b
	p.AddAnd(and, a, false, b, false)

	// nor ≠ and (witness: a=1, b=1 → nor=0, and=1).
	require.Equal(t, sat.False, p.CheckEquiv(nor, and, false))

	// ¬(a ∧ b) is NOT ¬a ∧ ¬b in general either.
	require.Equal(t, sat.False, p.CheckEquiv(nor, and, true))
}

// TestCheckEquiv_FreeVariables: two free variables are separable.
func TestCheckEquiv_FreeVariables(t *testing.T) {
	p, err := sat.NewProver()
	require.NoError(t, err)
	a := p.NewVar()
	b := p.NewVar()

	require.Equal(t, sat.False, p.CheckEquiv(a, b, false))
	require.NotEqual(t, p.Value(a), p.Value(b), "model must separate the variables")
}

// TestStats_Buckets verifies the outcome histograms add up.
func TestStats_Buckets(t *testing.T) {
	p, err := sat.NewProver()
	require.NoError(t, err)
	a := p.NewVar()
	c := p.NewVar()
	p.AddAnd(c, a, false, a, true)

	require.Equal(t, sat.True, p.CheckConst(c, false))  // success
	require.Equal(t, sat.False, p.CheckConst(a, false)) // failure
	require.Equal(t, sat.False, p.CheckEquiv(a, c, false))

	st := p.Stats()
	require.Equal(t, 2, st.CheckConst.TotalCount)
	require.Equal(t, 1, st.CheckConst.Success.Count)
	require.Equal(t, 1, st.CheckConst.Failure.Count)
	require.Equal(t, 0, st.CheckConst.Abort.Count)
	require.Equal(t, 1, st.CheckEquiv.TotalCount)
	require.Equal(t, 3, st.TotalCalls())
}

// TestSAT3_String pins the spellings used in logs and dumps.
func TestSAT3_String(t *testing.T) {
	require.Equal(t, "True", sat.True.String())
	require.Equal(t, "False", sat.False.String())
	require.Equal(t, "Unknown", sat.Unknown.String())
}
