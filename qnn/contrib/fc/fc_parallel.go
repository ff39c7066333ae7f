// Copyright 2026 go-qnn Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fc

import (
	"github.com/ajroetker/go-qnn/qnn/contrib/workerpool"
)

// minRowsPerChunk is the minimum number of rows per worker chunk before
// contiguous chunking beats per-row work stealing. Below this, dispatch
// overhead per chunk is not amortized and stealing balances better.
const minRowsPerChunk = 8

// FullyConnectedParallel computes the same transform as FullyConnected with
// the row range split across a persistent worker pool. Each worker runs the
// dispatched strategy on its own sub-matrix (weight rows, bias values and
// output elements for its row range), sharing the read-only input vector.
//
// Rows are independent, so the result is bit-identical to the sequential
// call for every valid input. Worthwhile when numRows is large; for small
// layers the sequential FullyConnected is faster.
//
// The pool may be reused across many layers and is not closed by this call.
// Panics under the same conditions as FullyConnected.
func FullyConnectedParallel(pool *workerpool.Pool, input []int16, weights []int8, dimVec, numRows, biasShift, outShift int, bias []int8, scratch []int16, output []int16) {
	if pool == nil || pool.NumWorkers() == 1 || numRows == 1 {
		FullyConnected(input, weights, dimVec, numRows, biasShift, outShift, bias, nil, output)
		return
	}

	// Validate once up front; the per-chunk calls below re-slice and would
	// otherwise report offsets relative to the chunk.
	if dimVec <= 0 {
		panic("fc: dimVec must be positive")
	}
	if numRows <= 0 {
		panic("fc: numRows must be positive")
	}
	if len(weights) < numRows*dimVec {
		panic("fc: weight slice too small")
	}
	if len(input) < dimVec {
		panic("fc: input slice too small")
	}
	if len(bias) < numRows {
		panic("fc: bias slice too small")
	}
	if len(output) < numRows {
		panic("fc: output slice too small")
	}
	if biasShift < 0 || biasShift > 31 {
		panic("fc: biasShift out of range")
	}
	if outShift < 0 || outShift > 31 {
		panic("fc: outShift out of range")
	}

	run := kernel()

	if numRows < pool.NumWorkers()*minRowsPerChunk {
		// Few rows per worker: per-row stealing balances better than
		// contiguous chunks.
		pool.ParallelForAtomic(numRows, func(i int) {
			run(input, weights[i*dimVec:(i+1)*dimVec], dimVec, 1,
				biasShift, outShift, bias[i:i+1], output[i:i+1])
		})
		return
	}

	pool.ParallelFor(numRows, func(start, end int) {
		run(input, weights[start*dimVec:end*dimVec], dimVec, end-start,
			biasShift, outShift, bias[start:end], output[start:end])
	})
}
