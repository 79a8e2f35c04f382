// Package parmul: sequential multiplication kernel.
// Multiply is the single-threaded reference strategy every parallel run is
// validated against; both kernels share validators and produce the identical
// integer sum in the identical arithmetic, differing only in iteration order
// across execution units.
package parmul

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMultiply         = "Multiply"
	opMultiplyParallel = "MultiplyParallel"
)

// mulErrorf wraps err with an operation tag, preserving the sentinel via %w.
func mulErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply computes the product C = A·B with a straightforward triple loop.
// Stage 1 (Validate): validateOperands (nil and inner-dimension checks).
// Stage 2 (Prepare): allocate the rA×cB result, zero-initialized.
// Stage 3 (Execute): fixed i→j→k loop order over flat storage,
// C[i][j] = Σ_k A[i][k]*B[k][j] in native int arithmetic (overflow wraps,
// never detected).
// Operands are read-only; the result is freshly allocated.
// Returns ErrNilMatrix or ErrDimensionMismatch (wrapped, errors.Is-matchable).
// Complexity: O(rA*cB*cA) time, O(rA*cB) memory.
func Multiply(a, b *Matrix) (*Matrix, error) {
	// Validate operands
	if err := validateOperands(a, b); err != nil {
		return nil, mulErrorf(opMultiply, err)
	}

	// Allocate result; dimensions are positive by Matrix construction
	c, err := NewMatrix(a.r, b.c)
	if err != nil {
		return nil, mulErrorf(opMultiply, err)
	}

	// Triple loop over flat row-major storage
	var i, j, k int
	for i = 0; i < a.r; i++ { // each result row
		for j = 0; j < b.c; j++ { // each result column
			sum := 0
			for k = 0; k < a.c; k++ { // inner product over the shared dimension
				sum += a.data[i*a.c+k] * b.data[k*b.c+j]
			}
			c.data[i*b.c+j] = sum
		}
	}

	return c, nil
}
