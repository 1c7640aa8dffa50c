package bnet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fraig/bnet"
	"github.com/katalvlaran/fraig/core"
	"github.com/katalvlaran/fraig/expr"
	"github.com/katalvlaran/fraig/sat"
)

func newMgr(t *testing.T) *core.Manager {
	t.Helper()
	m, err := core.NewManager(16)
	require.NoError(t, err)

	return m
}

// TestConvert_InputMismatch rejects a short handle vector.
func TestConvert_InputMismatch(t *testing.T) {
	m := newMgr(t)
	nw, err := bnet.NewNetwork(2)
	require.NoError(t, err)

	_, err = bnet.Convert(m, nw, []core.Handle{m.MakeInput()})
	require.ErrorIs(t, err, bnet.ErrInputMismatch)
}

// TestConvert_GateFamily instantiates one gate of each plain kind and
// checks the results against direct manager constructions.
func TestConvert_GateFamily(t *testing.T) {
	m := newMgr(t)
	nw, err := bnet.NewNetwork(2)
	require.NoError(t, err)
	in0, _ := nw.Input(0)
	in1, _ := nw.Input(1)

	for _, kind := range []bnet.GateKind{
		bnet.GateAnd, bnet.GateNand, bnet.GateOr,
		bnet.GateNor, bnet.GateXor, bnet.GateXnor,
	} {
		g, gerr := nw.AddGate(kind, in0, in1)
		require.NoError(t, gerr)
		require.NoError(t, nw.MarkOutput(g))
	}
	c1, err := nw.AddGate(bnet.GateConst1)
	require.NoError(t, err)
	require.NoError(t, nw.MarkOutput(c1))
	buf, err := nw.AddGate(bnet.GateBuf, in1)
	require.NoError(t, err)
	require.NoError(t, nw.MarkOutput(buf))
	inv, err := nw.AddGate(bnet.GateNot, in0)
	require.NoError(t, err)
	require.NoError(t, nw.MarkOutput(inv))

	a := m.MakeInput()
	b := m.MakeInput()
	outs, err := bnet.Convert(m, nw, []core.Handle{a, b})
	require.NoError(t, err)
	require.Len(t, outs, 9)

	require.Equal(t, m.MakeAnd(a, b), outs[0])
	require.Equal(t, m.MakeAnd(a, b).Not(), outs[1])
	require.Equal(t, m.MakeOr(a, b), outs[2])
	require.Equal(t, m.MakeOr(a, b).Not(), outs[3])
	require.Equal(t, m.MakeXor(a, b), outs[4])
	require.Equal(t, m.MakeXor(a, b).Not(), outs[5])
	require.Equal(t, core.One(), outs[6])
	require.Equal(t, b, outs[7])
	require.Equal(t, a.Not(), outs[8])
}

// TestConvert_TruthGate: a 2:1 mux truth table equals its gate build.
func TestConvert_TruthGate(t *testing.T) {
	m := newMgr(t)
	nw, err := bnet.NewNetwork(3)
	require.NoError(t, err)
	sel, _ := nw.Input(0)
	d1, _ := nw.Input(1)
	d0, _ := nw.Input(2)

	// out = sel ? d1 : d0; rows indexed as bit0=sel, bit1=d1, bit2=d0.
	truth := make([]bool, 8)
	for idx := range truth {
		s := idx&1 != 0
		v1 := idx&2 != 0
		v0 := idx&4 != 0
		if s {
			truth[idx] = v1
		} else {
			truth[idx] = v0
		}
	}
	g, err := nw.AddTruthGate(truth, sel, d1, d0)
	require.NoError(t, err)
	require.NoError(t, nw.MarkOutput(g))

	ins := []core.Handle{m.MakeInput(), m.MakeInput(), m.MakeInput()}
	outs, err := bnet.Convert(m, nw, ins)
	require.NoError(t, err)

	mux := m.MakeOr(m.MakeAnd(ins[0], ins[1]), m.MakeAnd(ins[0].Not(), ins[2]))
	require.Equal(t, sat.True, m.CheckEquiv(outs[0], mux))
}

// TestConvert_DegenerateTruthGates: empty-cover and full-cover tables
// collapse to the constants.
func TestConvert_DegenerateTruthGates(t *testing.T) {
	m := newMgr(t)
	nw, err := bnet.NewNetwork(1)
	require.NoError(t, err)
	in0, _ := nw.Input(0)

	z, err := nw.AddTruthGate([]bool{false, false}, in0)
	require.NoError(t, err)
	o, err := nw.AddTruthGate([]bool{true, true}, in0)
	require.NoError(t, err)
	require.NoError(t, nw.MarkOutput(z))
	require.NoError(t, nw.MarkOutput(o))

	outs, err := bnet.Convert(m, nw, []core.Handle{m.MakeInput()})
	require.NoError(t, err)
	require.True(t, outs[0].IsZero())
	require.True(t, outs[1].IsOne())
}

// TestCheckEquiv_NandDecomposition: xor3 as gates versus xor3 as a
// NAND decomposition over shared inputs.
func TestCheckEquiv_NandDecomposition(t *testing.T) {
	m := newMgr(t)

	a, err := bnet.NewNetwork(3)
	require.NoError(t, err)
	ai := inputs3(t, a)
	gx, err := a.AddGate(bnet.GateXor, ai[0], ai[1], ai[2])
	require.NoError(t, err)
	require.NoError(t, a.MarkOutput(gx))

	// xor(x,y) = nand(nand(x, nand(x,y)), nand(y, nand(x,y))).
	b, err := bnet.NewNetwork(3)
	require.NoError(t, err)
	bi := inputs3(t, b)
	xy := nandXor(t, b, bi[0], bi[1])
	xyz := nandXor(t, b, xy, bi[2])
	require.NoError(t, b.MarkOutput(xyz))

	verdict, err := bnet.CheckEquiv(m, a, b)
	require.NoError(t, err)
	require.Equal(t, sat.True, verdict)
}

// TestCheckEquiv_Refuted: and3 against or3 must come back False.
func TestCheckEquiv_Refuted(t *testing.T) {
	m := newMgr(t)

	a, err := bnet.NewNetwork(3)
	require.NoError(t, err)
	ai := inputs3(t, a)
	ga, err := a.AddGate(bnet.GateAnd, ai[0], ai[1], ai[2])
	require.NoError(t, err)
	require.NoError(t, a.MarkOutput(ga))

	b, err := bnet.NewNetwork(3)
	require.NoError(t, err)
	bi := inputs3(t, b)
	gb, err := b.AddGate(bnet.GateOr, bi[0], bi[1], bi[2])
	require.NoError(t, err)
	require.NoError(t, b.MarkOutput(gb))

	verdict, err := bnet.CheckEquiv(m, a, b)
	require.NoError(t, err)
	require.Equal(t, sat.False, verdict)
}

// TestCheckEquiv_ShapeMismatches reports the structural errors.
func TestCheckEquiv_ShapeMismatches(t *testing.T) {
	m := newMgr(t)

	a, err := bnet.NewNetwork(2)
	require.NoError(t, err)
	b, err := bnet.NewNetwork(3)
	require.NoError(t, err)
	_, err = bnet.CheckEquiv(m, a, b)
	require.ErrorIs(t, err, bnet.ErrInputMismatch)

	c, err := bnet.NewNetwork(2)
	require.NoError(t, err)
	ci, _ := c.Input(0)
	require.NoError(t, c.MarkOutput(ci))
	d, err := bnet.NewNetwork(2)
	require.NoError(t, err)
	_, err = bnet.CheckEquiv(m, c, d)
	require.ErrorIs(t, err, bnet.ErrOutputMismatch)
}

// TestCheckEquiv_ExprAgainstTable: the same majority function via a
// formula gate and via a truth table.
func TestCheckEquiv_ExprAgainstTable(t *testing.T) {
	m := newMgr(t)

	a, err := bnet.NewNetwork(3)
	require.NoError(t, err)
	ai := inputs3(t, a)
	maj := expr.Or(
		expr.And(expr.Literal(0, false), expr.Literal(1, false)),
		expr.And(expr.Literal(0, false), expr.Literal(2, false)),
		expr.And(expr.Literal(1, false), expr.Literal(2, false)),
	)
	ge, err := a.AddExprGate(maj, ai[0], ai[1], ai[2])
	require.NoError(t, err)
	require.NoError(t, a.MarkOutput(ge))

	b, err := bnet.NewNetwork(3)
	require.NoError(t, err)
	bi := inputs3(t, b)
	truth := make([]bool, 8)
	for idx := range truth {
		ones := 0
		for j := 0; j < 3; j++ {
			if idx&(1<<j) != 0 {
				ones++
			}
		}
		truth[idx] = ones >= 2
	}
	gt, err := b.AddTruthGate(truth, bi[0], bi[1], bi[2])
	require.NoError(t, err)
	require.NoError(t, b.MarkOutput(gt))

	verdict, err := bnet.CheckEquiv(m, a, b)
	require.NoError(t, err)
	require.Equal(t, sat.True, verdict)
}

// inputs3 fetches the three input signals of a 3-input network.
func inputs3(t *testing.T, nw *bnet.Network) [3]bnet.Signal {
	t.Helper()
	var out [3]bnet.Signal
	for i := range out {
		s, err := nw.Input(i)
		require.NoError(t, err)
		out[i] = s
	}

	return out
}

// nandXor builds xor(x,y) from four NAND gates.
func nandXor(t *testing.T, nw *bnet.Network, x, y bnet.Signal) bnet.Signal {
	t.Helper()
	n1, err := nw.AddGate(bnet.GateNand, x, y)
	require.NoError(t, err)
	n2, err := nw.AddGate(bnet.GateNand, x, n1)
	require.NoError(t, err)
	n3, err := nw.AddGate(bnet.GateNand, y, n1)
	require.NoError(t, err)
	out, err := nw.AddGate(bnet.GateNand, n2, n3)
	require.NoError(t, err)

	return out
}
