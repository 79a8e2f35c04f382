// Package parmul: parallel multiplication kernel.
// MultiplyParallel flattens the output cells into one index space, statically
// partitions it into contiguous per-worker ranges, and runs one goroutine per
// worker. Disjoint write ranges plus read-only operands make the partition
// itself the entire synchronization story; the only primitive used is the
// final WaitGroup join barrier.
package parmul

import "sync"

// span is a half-open range [start, end) of flattened output-cell indices
// owned by exactly one worker.
type span struct {
	start, end int
}

// partition splits the index space 0..total-1 into workerCount contiguous
// spans of floor(total/workerCount) cells each; the last span absorbs the
// remainder so every index is covered exactly once. When workerCount > total
// the leading spans are empty and the last span carries all cells — empty
// spans are valid no-op assignments, not errors.
// The remainder lands entirely on the last worker rather than being spread
// evenly; callers depend on this exact assignment staying stable.
// Complexity: O(workerCount).
func partition(total, workerCount int) []span {
	perWorker := total / workerCount // floor division; may be 0

	spans := make([]span, workerCount)
	for i := 0; i < workerCount; i++ {
		start := i * perWorker
		end := start + perWorker
		if i == workerCount-1 {
			end = total // last worker takes the remainder
		}
		spans[i] = span{start: start, end: end}
	}

	return spans
}

// multiplyRange computes result cells with flattened indices in s.
// a and b are shared read-only for the whole operation; writes are confined
// to c.data[s.start:s.end], disjoint from every other worker's range, so no
// locking is needed. Passing the matrices as explicit parameters (rather
// than closing over loop state) keeps that contract visible in the
// signature.
// Complexity: O((s.end-s.start)*cA).
func multiplyRange(a, b, c *Matrix, s span, wg *sync.WaitGroup) {
	defer wg.Done()

	for idx := s.start; idx < s.end; idx++ {
		row, col := idx/c.c, idx%c.c // recover (row, col) from the flat index
		sum := 0
		for k := 0; k < a.c; k++ { // inner product over the shared dimension
			sum += a.data[row*a.c+k] * b.data[k*b.c+col]
		}
		c.data[idx] = sum
	}
}

// MultiplyParallel computes the product C = A·B across workerCount goroutines.
// Stage 1 (Validate): validateOperands, then validateWorkerCount.
// Stage 2 (Prepare): allocate the rA×cB result and partition its flattened
// index space into workerCount contiguous spans.
// Stage 3 (Execute): spawn one goroutine per span; each computes its cells
// with the standard inner-product formula.
// Stage 4 (Finalize): wait for every worker (full join barrier) and return
// the fully populated result — no partial state is ever observable.
//
// For all valid operands and workerCount ≥ 1 the result equals Multiply(a, b)
// cell for cell: both kernels evaluate the identical sum with identical int
// arithmetic, only in a different iteration order.
//
// Workers are spawned fresh per call and torn down before return; there is no
// pool reuse, cancellation, or timeout. workerCount is not capped against the
// machine's CPU count — oversubscribed goroutines are simply multiplexed by
// the runtime.
// Returns ErrNilMatrix, ErrDimensionMismatch, or ErrInvalidWorkerCount.
// Complexity: O(rA*cB*cA) total work across workerCount goroutines.
func MultiplyParallel(a, b *Matrix, workerCount int) (*Matrix, error) {
	// Validate operands
	if err := validateOperands(a, b); err != nil {
		return nil, mulErrorf(opMultiplyParallel, err)
	}
	// Validate worker count
	if err := validateWorkerCount(workerCount); err != nil {
		return nil, mulErrorf(opMultiplyParallel, err)
	}

	// Allocate result; dimensions are positive by Matrix construction
	c, err := NewMatrix(a.r, b.c)
	if err != nil {
		return nil, mulErrorf(opMultiplyParallel, err)
	}

	// Static partition of the flattened output index space
	spans := partition(a.r*b.c, workerCount)

	// Spawn one worker per span and join them all
	var wg sync.WaitGroup
	wg.Add(len(spans))
	for _, s := range spans {
		go multiplyRange(a, b, c, s, &wg)
	}
	wg.Wait()

	return c, nil
}
