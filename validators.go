// SPDX-License-Identifier: MIT
// Package parmul: canonical validation checks shared by the multiplication
// kernels. Validators return plain sentinels; call sites wrap uniformly with
// an operation tag.
package parmul

// validateOperands ensures a and b are non-nil and conformable for
// multiplication (a.Cols() == b.Rows()).
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func validateOperands(a, b *Matrix) error {
	// Reject nil operands first; shape checks assume live matrices
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	// Inner dimensions must agree for the product to be defined
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// validateWorkerCount ensures a positive worker count.
// Returns ErrInvalidWorkerCount when workerCount < 1.
// Complexity: O(1).
func validateWorkerCount(workerCount int) error {
	if workerCount < 1 {
		return ErrInvalidWorkerCount
	}

	return nil
}
