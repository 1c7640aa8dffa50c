// This file implements the signature (pattern) hash table: the index
// that answers "does any existing node simulate to this signature?".

package core

// patTable is a bucket-vector hash over registered nodes keyed on
// their canonicalized signature fold. Its contents are rebuilt from
// scratch after every counter-example absorption.
type patTable struct {
	buckets [][]*Node
	num     int
	limit   int
}

func newPatTable() patTable {
	t := patTable{}
	t.alloc(initBucketCount)

	return t
}

func (t *patTable) alloc(size int) {
	t.buckets = make([][]*Node, size)
	t.limit = size * growNum / growDen
}

// find walks node's bucket and lets the manager discharge each
// signature match by SAT. A retry signal means a counter-example was
// just absorbed and the table rebuilt, so the walk restarts from the
// fresh bucket head — continuing the stale walk would either miss
// equivalences or loop on dead entries. Restarts are bounded by the
// manager's loop limit; on overflow the node is kept distinct.
func (t *patTable) find(node *Node, mgr *Manager) (Handle, bool) {
	for round := 0; round <= mgr.loopLimit; round++ {
		pos := node.patHash % uint64(len(t.buckets))
		retried := false
		for _, cand := range t.buckets[pos] {
			inv := cand.patHashInv != node.patHashInv
			eq, retry := mgr.compareNode(cand, node, inv)
			if eq {
				return Handle{cand, inv}, true
			}
			if retry {
				retried = true

				break
			}
		}
		if !retried {
			return Handle{}, false
		}
	}

	return Handle{}, false
}

// add registers a node under its current signature fold, doubling the
// bucket count first when the 1.8 load factor is reached.
func (t *patTable) add(n *Node) {
	if t.num >= t.limit {
		t.grow()
	}
	pos := n.patHash % uint64(len(t.buckets))
	t.buckets[pos] = append(t.buckets[pos], n)
	t.num++
}

func (t *patTable) grow() {
	old := t.buckets
	t.alloc(len(old) * 2)
	for _, bucket := range old {
		for _, n := range bucket {
			pos := n.patHash % uint64(len(t.buckets))
			t.buckets[pos] = append(t.buckets[pos], n)
		}
	}
}

// clear empties every bucket but keeps their capacity; absorption
// rebuilds the whole population immediately afterwards.
func (t *patTable) clear() {
	for i := range t.buckets {
		t.buckets[i] = t.buckets[i][:0]
	}
	t.num = 0
}
