// Package parmul: random fill for Matrix contents.
// The generator is injected through the IntSource interface so production
// callers get an independently seeded math/rand source per call while tests
// substitute a deterministic one and verify fill bounds without flakiness.
package parmul

import (
	"math/rand"
	"time"
)

// Fill range for randomly generated cells, inclusive on both ends.
const (
	// FillMin is the smallest value FillRandom writes into a cell.
	FillMin = 1
	// FillMax is the largest value FillRandom writes into a cell.
	FillMax = 10
)

// IntSource supplies uniform non-negative integers below a bound.
// *math/rand.Rand satisfies it; tests may pass any deterministic stub.
type IntSource interface {
	// Intn returns a uniform integer in [0, n). n must be > 0.
	Intn(n int) int
}

// Fill overwrites every cell with an independently drawn integer from the
// uniform distribution over [FillMin, FillMax].
// Stage 1 (Validate): reject a nil source.
// Stage 2 (Execute): single flat pass over the backing slice.
// Side effect: mutates the full contents of the matrix.
// Complexity: O(r*c).
func (m *Matrix) Fill(src IntSource) error {
	// Validate source
	if src == nil {
		return ErrNilSource
	}

	// Overwrite every cell; flat walk matches row-major order
	for i := range m.data {
		m.data[i] = FillMin + src.Intn(FillMax-FillMin+1)
	}

	return nil
}

// FillRandom overwrites every cell with values in [FillMin, FillMax] using a
// fresh time-seeded source. Two calls generally produce different contents;
// no reproducibility is guaranteed, and the source is not cryptographically
// secure.
// Complexity: O(r*c).
func (m *Matrix) FillRandom() {
	// Fresh seed per call; error is impossible with a non-nil source
	_ = m.Fill(rand.New(rand.NewSource(time.Now().UnixNano())))
}
