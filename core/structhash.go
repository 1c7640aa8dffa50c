// This file implements the structural hash table: the index that
// answers "does an AND of these two fanin edges already exist?".

package core

// structKey mixes the ordered fanin pair into a bucket key. The order
// matters — operands are normalized before lookup, so (a,b) and (b,a)
// meet at the same key via the same normalization.
func structKey(h1, h2 Handle) uint64 {
	return h1.Hash() + h2.Hash()*13
}

// structTable is a bucket-vector hash over live AND nodes keyed on
// their fanin pair. Entries borrow node pointers; the table owns only
// its buckets.
type structTable struct {
	buckets [][]*Node
	num     int
	limit   int
}

func newStructTable() structTable {
	t := structTable{}
	t.alloc(initBucketCount)

	return t
}

func (t *structTable) alloc(size int) {
	t.buckets = make([][]*Node, size)
	t.limit = size * growNum / growDen
}

// find returns the representative handle of the node whose fanins
// match (h1, h2) exactly, inversions included.
// Complexity: O(bucket length).
func (t *structTable) find(h1, h2 Handle) (Handle, bool) {
	pos := structKey(h1, h2) % uint64(len(t.buckets))
	for _, n := range t.buckets[pos] {
		if n.fanin[0] == h1 && n.fanin[1] == h2 {
			return Handle{n, false}.RepHandle(), true
		}
	}

	return Handle{}, false
}

// add registers a freshly built AND node, doubling the bucket count
// first when the 1.8 load factor is reached.
func (t *structTable) add(n *Node) {
	if t.num >= t.limit {
		t.grow()
	}
	pos := structKey(n.fanin[0], n.fanin[1]) % uint64(len(t.buckets))
	t.buckets[pos] = append(t.buckets[pos], n)
	t.num++
}

func (t *structTable) grow() {
	old := t.buckets
	t.alloc(len(old) * 2)
	for _, bucket := range old {
		for _, n := range bucket {
			pos := structKey(n.fanin[0], n.fanin[1]) % uint64(len(t.buckets))
			t.buckets[pos] = append(t.buckets[pos], n)
		}
	}
}
