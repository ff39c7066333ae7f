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

// Package qnn provides the dispatch core and fixed-point primitives for
// quantized neural-network kernels.
//
// Values follow the Qm.n fixed-point convention used by embedded NN
// libraries: q7 is a signed 8-bit integer, q15 a signed 16-bit integer and
// q31 a signed 32-bit integer, each with an implicit binary scaling factor
// chosen offline by the quantization step. Arithmetic happens on the raw
// integers; explicit shifts realign scales.
//
// # Dispatch
//
// At init time the package detects the host's capability level and records
// it as a DispatchLevel. Kernels in qnn/contrib consult CurrentLevel to pick
// between a portable scalar strategy and an unrolled paired strategy. The
// choice is purely a throughput optimization: every strategy of every kernel
// produces bit-identical results for identical inputs.
//
// Setting the QNN_NO_SIMD environment variable forces the scalar strategy
// regardless of CPU capabilities. This is useful for testing and debugging.
//
// # Primitives
//
// The fixed-point helpers (SatQ15, RoundQ31, UnpackPairQ7, MulAccPairQ15,
// RequantQ15) are the portable equivalents of the DSP intrinsics these
// kernels were originally built on: saturating casts, round-half-up
// constants, sign-extending byte unpacks and dual multiply-accumulates.
package qnn
