// Package parmul multiplies dense integer matrices sequentially or across a
// fixed set of parallel workers, and guarantees the two strategies agree
// cell for cell.
//
// What:
//
//   - Matrix: an owning, row-major, bounds-checked 2D container of int values.
//   - Fill / FillRandom: overwrite every cell with uniform values in
//     [FillMin, FillMax], drawn from an injectable IntSource so tests can
//     substitute a deterministic generator.
//   - Multiply: straightforward triple-loop multiplication,
//     C[i][j] = Σ_k A[i][k]·B[k][j].
//   - MultiplyParallel: the same product computed by workerCount goroutines,
//     each owning a disjoint contiguous range of output cells.
//
// Why:
//
//   - Demonstrates that static partitioning of an output index space preserves
//     exact integer results across execution strategies.
//   - Lets callers observe the relative wall-clock cost of the two strategies
//     (see cmd/parmul for an interactive driver).
//
// Concurrency model:
//
//	MultiplyParallel spawns workerCount goroutines per call and joins all of
//	them before returning. Operands are read-only for the whole operation and
//	every worker writes a disjoint slice of the result, so the partitioning
//	itself is the sole safety mechanism: no locks, no atomics, no pooling.
//
// Complexity:
//
//   - Multiply:         O(rA × cB × cA), Memory: O(rA × cB).
//   - MultiplyParallel: same total work, split across workerCount goroutines.
//
// Errors:
//
//   - ErrInvalidDimensions: a matrix was requested with non-positive rows or cols.
//   - ErrOutOfRange: At/Set addressed a cell outside the matrix bounds.
//   - ErrDimensionMismatch: inner dimensions disagree (A.Cols() != B.Rows()).
//   - ErrInvalidWorkerCount: MultiplyParallel called with workerCount < 1.
//   - ErrNilMatrix: a nil operand was passed to a multiplication.
//   - ErrNilSource: Fill was given a nil IntSource.
package parmul
