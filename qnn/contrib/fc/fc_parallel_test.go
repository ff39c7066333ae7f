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
	"fmt"
	"testing"

	"github.com/ajroetker/go-qnn/qnn/contrib/workerpool"
)

// TestFullyConnectedParallelMatchesSequential covers both the per-row
// stealing path (few rows) and the contiguous chunk path (many rows).
func TestFullyConnectedParallelMatchesSequential(t *testing.T) {
	rng := testRNGFC()

	pool := workerpool.New(4)
	defer pool.Close()

	shapes := []struct {
		dimVec, numRows int
	}{
		{16, 2},   // fewer rows than workers
		{33, 7},   // stealing path, odd rows, unaligned columns
		{64, 31},  // stealing path upper end
		{64, 32},  // chunked path boundary
		{17, 128}, // chunked path
	}

	for _, s := range shapes {
		t.Run(fmt.Sprintf("%dx%d", s.numRows, s.dimVec), func(t *testing.T) {
			input, weights, bias := randomLayer(rng, s.dimVec, s.numRows)

			sequential := make([]int16, s.numRows)
			FullyConnected(input, weights, s.dimVec, s.numRows, 2, 5, bias, nil, sequential)

			parallel := make([]int16, s.numRows)
			FullyConnectedParallel(pool, input, weights, s.dimVec, s.numRows, 2, 5, bias, nil, parallel)

			for i := range sequential {
				if parallel[i] != sequential[i] {
					t.Fatalf("row %d: parallel=%d sequential=%d", i, parallel[i], sequential[i])
				}
			}
		})
	}
}

func TestFullyConnectedParallelNilPool(t *testing.T) {
	// A nil pool degrades to the sequential kernel.
	output := make([]int16, 1)
	FullyConnectedParallel(nil, []int16{1, 2, 3, 4}, []int8{1, 1, 1, 1}, 4, 1, 0, 0, []int8{0}, nil, output)
	if output[0] != 10 {
		t.Errorf("got %d, want 10", output[0])
	}
}

func TestFullyConnectedParallelPanicsOnBadArgs(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	FullyConnectedParallel(pool, []int16{1}, []int8{1}, 1, 2, 0, 0, []int8{0}, nil, make([]int16, 2))
}
