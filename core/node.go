// This file declares Node, one AIG vertex. Nodes are owned by the
// Manager; everything else (handles, hash tables, fanins) borrows.

package core

import "fmt"

// patPrimes drives the position-dependent signature fold; the cycle
// length only affects mixing quality, not correctness.
var patPrimes = [...]uint64{
	1000000007, 1000000009, 1000000021, 1000000033,
	1000000087, 1000000093, 1000000097, 1000000103,
	1000000123, 1000000181, 1000000207, 1000000223,
	1000000241, 1000000271, 1000000289, 1000000297,
}

// Node is one AIG vertex: a primary input or a 2-input AND.
//
// varID doubles as the node's SAT variable index and its position in
// the manager's node array. The simulation signature lives in pat,
// folded into patHash with the polarity canonicalized under
// complement (patHashInv records whether the fold was complemented).
// seen0/seen1 latch once any simulated bit showed that value; they
// bound SAT constancy work. rep, once set, links the node to its
// proved equivalence-class representative.
type Node struct {
	varID   int
	inputID int // primary-input index; -1 for AND nodes
	fanin   [2]Handle

	pat        []uint64
	patHash    uint64
	patHashInv bool
	seen0      bool
	seen1      bool

	rep    Handle
	hasRep bool
}

// isInput reports whether the node is a primary input.
func (n *Node) isInput() bool { return n.inputID >= 0 }

// isAnd reports whether the node is an AND vertex.
func (n *Node) isAnd() bool { return n.inputID < 0 }

// setFanin installs the two (already normalized) fanin edges.
func (n *Node) setFanin(h1, h2 Handle) {
	n.fanin[0] = h1
	n.fanin[1] = h2
}

// setRep records the proved representative. It is set-once, and the
// representative must predate this node — that ordering is what keeps
// rep chains acyclic.
func (n *Node) setRep(rep Handle) {
	if n.hasRep {
		panic(fmt.Sprintf("core: node %d already has a representative", n.varID))
	}
	if rep.n != nil && rep.n.varID >= n.varID {
		panic(fmt.Sprintf("core: representative %d does not predate node %d", rep.n.varID, n.varID))
	}
	n.rep = rep
	n.hasRep = true
}

// repWalk resolves the positive edge of n to its class representative.
func (n *Node) repWalk() Handle {
	if !n.hasRep {
		return Handle{n, false}
	}
	if n.rep.n == nil {
		return n.rep
	}
	ans := n.rep.n.repWalk()
	if n.rep.inv {
		ans = ans.Not()
	}

	return ans
}

// setPat stores externally produced words into pat[start:end] and
// refreshes marks and signature fold for that range.
func (n *Node) setPat(start, end int, words []uint64) {
	copy(n.pat[start:end], words)
	n.calcHash(start, end)
}

// calcPat computes pat[start:end] from the fanins, one of four
// polarity-specialized bit-parallel loops, then refreshes marks and
// signature fold. AND nodes only; fanins must already cover the range.
func (n *Node) calcPat(start, end int) {
	f0, f1 := n.fanin[0], n.fanin[1]
	dst := n.pat[start:end]
	src0 := f0.n.pat[start:end]
	src1 := f1.n.pat[start:end]
	switch {
	case f0.inv && f1.inv:
		for i := range dst {
			dst[i] = ^(src0[i] | src1[i])
		}
	case f0.inv:
		for i := range dst {
			dst[i] = ^src0[i] & src1[i]
		}
	case f1.inv:
		for i := range dst {
			dst[i] = src0[i] & ^src1[i]
		}
	default:
		for i := range dst {
			dst[i] = src0[i] & src1[i]
		}
	}
	n.calcHash(start, end)
}

// calcHash extends the signature fold over pat[start:end] and latches
// the 0/1 marks. The fold is additive per word, so appending pattern
// batches never requires a full recompute; the canonicalizing polarity
// is fixed by bit 0 of word 0 and therefore stable across appends.
func (n *Node) calcHash(start, end int) {
	if start == 0 {
		n.patHashInv = n.pat[0]&1 != 0
		n.patHash = 0
	}
	mask := uint64(0)
	if n.patHashInv {
		mask = ^uint64(0)
	}
	for i := start; i < end; i++ {
		w := n.pat[i]
		if w != 0 {
			n.seen1 = true
		}
		if w != ^uint64(0) {
			n.seen0 = true
		}
		n.patHash += (w ^ mask) * patPrimes[i%len(patPrimes)]
	}
}
