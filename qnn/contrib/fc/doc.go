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

// Package fc provides the quantized fully connected (dense) layer kernel
// with q7 weights and q15 activations.
//
// # Transform
//
// For a weight matrix of shape [numRows, dimVec] in row-major order, a q15
// input vector of length dimVec and a q7 bias vector of length numRows, each
// output element is
//
//	raw(i)    = Σ_j input[j] * weights[i*dimVec+j]
//	biased(i) = raw(i) + (bias[i] << biasShift) + round(outShift)
//	output[i] = sat_q15(biased(i) >> outShift)
//
// accumulated in q31, where round(s) is the round-half-up constant
// (0 for s == 0, else 1 << (s-1)) and sat_q15 clamps to [-32768, 32767]
// without wrapping. biasShift and outShift realign the fixed-point scales
// chosen by the offline quantization step.
//
// # Strategies
//
// Two execution strategies implement the same arithmetic:
//
//   - a paired strategy that walks output rows two at a time and the input
//     vector four elements at a time, with one accumulator per row
//   - a portable scalar fallback with plain nested loops
//
// Selection follows qnn.CurrentLevel and never changes results: both
// strategies are bit-for-bit identical for every valid input. Integer
// addition is associative, so reordering the accumulation is exact.
//
// FullyConnectedParallel additionally splits the row range across a
// workerpool.Pool. Rows are independent, so the parallel result is
// bit-identical to the sequential one.
//
// # Overflow
//
// The q31 accumulator can overflow for pathological combinations of large
// dimVec and extreme magnitudes. This is an accepted fixed-point limitation:
// the caller chooses shifts and dimensions that keep the accumulation in
// range, and the kernel does not check.
package fc
