package sat

import (
	"fmt"
	"strings"
	"time"
)

// Bucket accumulates timing for one outcome class.
type Bucket struct {
	// Count is the number of calls that landed here.
	Count int

	// Total is the summed wall time of those calls.
	Total time.Duration

	// Max is the single longest call.
	Max time.Duration
}

// Histogram groups per-call timings by outcome. Success holds True
// results, Failure holds False, Abort holds Unknown.
type Histogram struct {
	// TotalCount is the number of calls recorded overall.
	TotalCount int

	Success Bucket
	Failure Bucket
	Abort   Bucket
}

// record files one call outcome.
func (h *Histogram) record(code SAT3, d time.Duration) {
	h.TotalCount++

	b := &h.Abort
	switch code {
	case True:
		b = &h.Success
	case False:
		b = &h.Failure
	}
	b.Count++
	b.Total += d
	if b.Max < d {
		b.Max = d
	}
}

// String renders the histogram in the success/failure/abort dump form.
func (h Histogram) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d / %d\n", h.Success.Count, h.TotalCount)
	writeBucket(&sb, "success", h.Success)
	writeBucket(&sb, "failure", h.Failure)
	writeBucket(&sb, "abort", h.Abort)

	return sb.String()
}

func writeBucket(sb *strings.Builder, name string, b Bucket) {
	if b.Count == 0 {
		return
	}
	avg := b.Total / time.Duration(b.Count)
	fmt.Fprintf(sb, " In %s(total/ave./max): %v / %v / %v\n", name, b.Total, avg, b.Max)
}

// Stats is a snapshot of both query histograms.
type Stats struct {
	CheckConst Histogram
	CheckEquiv Histogram
}

// TotalCalls sums the calls across both histograms.
func (s Stats) TotalCalls() int {
	return s.CheckConst.TotalCount + s.CheckEquiv.TotalCount
}
