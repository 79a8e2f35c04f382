package parmul

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose the unexported partition helper and per-span worker to
//     parmul_test ONLY, without widening the production API.
//   - Lets tests verify exact index-range coverage (no gaps, no overlaps)
//     and exercise the worker kernel on hand-built spans.

// Span_TestOnly mirrors the private span type for test-side assertions.
type Span_TestOnly struct {
	Start, End int
}

// Partition_TestOnly forwards to the private partition helper and converts
// its spans into the test-facing shape.
func Partition_TestOnly(total, workerCount int) []Span_TestOnly {
	spans := partition(total, workerCount)

	out := make([]Span_TestOnly, len(spans))
	for i, s := range spans {
		out[i] = Span_TestOnly{Start: s.start, End: s.end}
	}

	return out
}
