// SPDX-License-Identifier: MIT
// Package matrix: row-partitioned fan-out for element-wise kernels.
//
// Parallelism here is strictly a performance optimization: kernels validate
// all inputs before calling parallelRows, every worker writes a disjoint
// range of output rows, and no shared accumulator exists, so the parallel
// path produces bit-identical results to the serial one. Multiplication
// parallelizes over i only — k-level splitting would race on result cells.

package matrix

import "sync"

// parallelRows executes fn over the half-open row ranges that partition
// [0, rows). The work runs serially unless the total element count exceeds
// the threshold and more than one worker is available.
//
// Contract: fn must be safe to call concurrently on disjoint ranges and must
// not fail — all validation happens before any fan-out.
// Complexity: O(rows) scheduling overhead on top of fn's own cost.
func parallelRows(rows, elems int, o Options, fn func(lo, hi int)) {
	// Serial path: small workloads, single worker, or nothing to split.
	if elems <= o.parallelThreshold || o.workers <= 1 || rows < 2 {
		fn(0, rows)
		return
	}

	// Partition rows into contiguous chunks, one per worker at most.
	workers := o.workers
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < rows; lo += chunk {
		hi := lo + chunk
		if hi > rows {
			hi = rows
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
