// This file renders a handle's cone in a compact textual form, for
// debugging sessions and log traces.

package core

import (
	"fmt"
	"io"
)

// DumpHandle writes the AND cone under h, one node per line in
// "A<id> = <fanin0> & <fanin1>" form (fanins already dumped above),
// followed by the root edge itself. Inputs and constants print only
// at their use sites.
func DumpHandle(w io.Writer, h Handle) {
	seen := make(map[int]struct{})
	dumpCone(w, h, seen)
	fmt.Fprintf(w, "root: %s\n", h)
}

func dumpCone(w io.Writer, h Handle, seen map[int]struct{}) {
	n := h.node()
	if n == nil || n.isInput() {
		return
	}
	if _, ok := seen[n.varID]; ok {
		return
	}
	seen[n.varID] = struct{}{}
	dumpCone(w, n.fanin[0], seen)
	dumpCone(w, n.fanin[1], seen)
	fmt.Fprintf(w, "A%d = %s & %s\n", n.varID, n.fanin[0], n.fanin[1])
}
