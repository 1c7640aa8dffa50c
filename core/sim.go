// This file is the simulation substrate: random input patterns,
// bit-parallel propagation, counter-example absorption, and the
// rectangular growth of the per-node pattern arrays.

package core

import (
	"fmt"
	"time"

	"github.com/katalvlaran/fraig/sat"
)

// initInputPat fills a fresh input node's signature with random words.
func (m *Manager) initInputPat(n *Node) {
	words := make([]uint64, m.patUsed)
	for i := range words {
		words[i] = m.rng.Uint64()
	}
	n.setPat(0, m.patUsed, words)
}

// resizePat doubles every node's pattern capacity, preserving the used
// prefix. The substrate stays rectangular: one size for all nodes.
func (m *Manager) resizePat(size int) {
	for _, n := range m.allNodes {
		np := make([]uint64, size)
		copy(np, n.pat[:m.patUsed])
		n.pat = np
	}
	m.patSize = size
}

// addPat folds the solver's current model into a fresh pattern batch
// and rebuilds the signature table. Bit 0 of each input word is the
// model value exactly; bits 1..63 keep that value with probability
// 97/100, so the batch probes the counter-example's neighborhood, not
// just the single assignment. exclude is the node currently under
// construction or test — every node but it is re-registered under its
// new signature.
func (m *Manager) addPat(exclude *Node) {
	start := time.Now()
	if m.patUsed >= m.patSize {
		m.resizePat(m.patSize * 2)
	}
	m.patTab.clear()

	w := m.patUsed
	word := make([]uint64, 1)
	for _, n := range m.allNodes {
		if n.isInput() {
			var pat uint64
			if m.prover.Value(n.varID) {
				pat = ^uint64(0)
			}
			for b := 1; b < wordBits; b++ {
				if m.rng.Intn(100) < cexFlipPercent {
					pat ^= 1 << b
				}
			}
			word[0] = pat
			n.setPat(w, w+1, word)
		} else {
			n.calcPat(w, w+1)
		}

		if n != exclude {
			m.patTab.add(n)
		}
	}
	m.patUsed++
	m.simCount++
	m.simTime += time.Since(start)
}

// comparePat reports whether the two signatures agree over every used
// word, under the given fixed inversion.
func (m *Manager) comparePat(n1, n2 *Node, inv bool) bool {
	p1 := n1.pat[:m.patUsed]
	p2 := n2.pat[:m.patUsed]
	if inv {
		for i := range p1 {
			if p1[i] != ^p2[i] {
				return false
			}
		}

		return true
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			return false
		}
	}

	return true
}

// compareNode discharges one signature-proposed candidate pair.
// eq means cand and node were proved equal (node's rep is set);
// retry means a counter-example was absorbed and the signature table
// rebuilt, so any in-flight bucket walk is stale.
func (m *Manager) compareNode(cand, node *Node, inv bool) (eq, retry bool) {
	if !m.comparePat(cand, node, inv) {
		return false, false
	}
	switch m.prover.CheckEquiv(cand.varID, node.varID, inv) {
	case sat.True:
		node.setRep(Handle{cand, inv})

		return true, false
	case sat.False:
		m.addPat(node)
		if m.comparePat(cand, node, inv) {
			panic(fmt.Sprintf("core: counter-example did not separate nodes %d and %d", cand.varID, node.varID))
		}

		return false, true
	}

	return false, false
}
