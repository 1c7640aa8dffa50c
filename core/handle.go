// This file declares Handle, the AIG edge value type: a node reference
// plus an inversion bit. The two constants are the nil-node handles,
// so a Handle is usable (and comparable with ==) without a Manager.

package core

import "fmt"

// Handle is an edge of the AIG: a node reference and an inversion bit.
// The zero value is the constant ZERO. Handles are values; copying is
// free and equality is bitwise on the pair.
type Handle struct {
	n   *Node
	inv bool
}

// Zero returns the constant-0 handle.
func Zero() Handle { return Handle{} }

// One returns the constant-1 handle.
func One() Handle { return Handle{inv: true} }

// Not returns the complemented edge.
func (h Handle) Not() Handle { return Handle{h.n, !h.inv} }

// Inv reports whether the edge is complemented.
func (h Handle) Inv() bool { return h.inv }

// IsZero reports whether the handle denotes constant 0.
func (h Handle) IsZero() bool { return h.n == nil && !h.inv }

// IsOne reports whether the handle denotes constant 1.
func (h Handle) IsOne() bool { return h.n == nil && h.inv }

// IsConst reports whether the handle denotes either constant.
func (h Handle) IsConst() bool { return h.n == nil }

// IsInput reports whether the handle points at a primary input node.
func (h Handle) IsInput() bool { return h.n != nil && h.n.isInput() }

// IsAnd reports whether the handle points at an AND node.
func (h Handle) IsAnd() bool { return h.n != nil && h.n.isAnd() }

// VarID returns the node's dense variable id, or -1 for constants.
func (h Handle) VarID() int {
	if h.n == nil {
		return -1
	}

	return h.n.varID
}

// InputID returns the primary-input index, or -1 when the handle does
// not point at an input node.
func (h Handle) InputID() int {
	if !h.IsInput() {
		return -1
	}

	return h.n.inputID
}

// FaninHandle returns the AND node's fanin edge at pos (0 or 1).
// Calling it on a non-AND handle is a programmer bug and panics.
func (h Handle) FaninHandle(pos int) Handle {
	if !h.IsAnd() {
		panic("core: FaninHandle on a non-AND handle")
	}

	return h.n.fanin[pos&1]
}

// RepHandle resolves the edge to its equivalence-class representative,
// XOR-ing inversions along the chain. Constants resolve to themselves;
// a chain ending in a constant representative yields ZERO or ONE.
func (h Handle) RepHandle() Handle {
	if h.n == nil {
		return h
	}
	ans := h.n.repWalk()
	if h.inv {
		ans = ans.Not()
	}

	return ans
}

// node returns the referenced node; nil for constants.
func (h Handle) node() *Node { return h.n }

// Hash returns a deterministic mixing of the (node, inversion) pair,
// suitable for hash-table keying.
func (h Handle) Hash() uint64 { return mix64(h.key()) }

// key packs the pair into one word: constants map to 0 and 1, node
// edges to (varID+1)<<1 | inv.
func (h Handle) key() uint64 {
	if h.n == nil {
		if h.inv {
			return 1
		}

		return 0
	}
	k := uint64(h.n.varID+1) << 1
	if h.inv {
		k |= 1
	}

	return k
}

// mix64 is the 64-bit finalizer of splitmix64; a bijective scrambler.
func mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33

	return x
}

// String renders the edge in the compact dump form: ZERO, ONE, ~I3, A17.
func (h Handle) String() string {
	switch {
	case h.IsZero():
		return "ZERO"
	case h.IsOne():
		return "ONE"
	}
	neg := ""
	if h.inv {
		neg = "~"
	}
	if h.IsInput() {
		return fmt.Sprintf("%sI%d", neg, h.n.inputID)
	}

	return fmt.Sprintf("%sA%d", neg, h.n.varID)
}
