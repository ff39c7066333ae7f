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

package qnn

import "math"

// This file provides the scalar fixed-point primitives shared by the
// quantized kernels: saturating casts, rounding constants and the portable
// equivalents of packed-byte unpack and dual multiply-accumulate.

// SatQ15 saturates a q31 value to the q15 range [-32768, 32767].
// Results are clamped instead of wrapping.
func SatQ15(x int32) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}

// SatQ7 saturates a q31 value to the q7 range [-128, 127].
// Results are clamped instead of wrapping.
func SatQ7(x int32) int8 {
	if x > math.MaxInt8 {
		return math.MaxInt8
	}
	if x < math.MinInt8 {
		return math.MinInt8
	}
	return int8(x)
}

// RoundQ31 returns the rounding constant for an arithmetic right shift:
// half of the weight of the shifted-out bits, implementing round half up.
// Returns 0 for shift 0, otherwise 1 << (shift - 1).
func RoundQ31(shift int) int32 {
	return int32(uint32(1) << uint(shift) >> 1)
}

// UnpackPairQ7 reads two consecutive q7 values and sign-extends each
// independently to q15. This is the portable form of the packed-byte
// unpack (read_and_pad) used by DSP implementations; plain indexing and
// sign extension are semantically sufficient.
func UnpackPairQ7(w []int8) (int16, int16) {
	return int16(w[0]), int16(w[1])
}

// MulAccPairQ15 performs a dual multiply-accumulate over two q15 operand
// pairs: acc + a0*b0 + a1*b1, accumulated in q31. This is the portable form
// of the SMLAD intrinsic; the two products are independent scalar
// multiplies sharing one accumulator.
func MulAccPairQ15(a0, a1, b0, b1 int16, acc int32) int32 {
	return acc + int32(a0)*int32(b0) + int32(a1)*int32(b1)
}

// RequantQ15 narrows a q31 accumulator to q15 by an arithmetic right shift
// followed by saturation. The rounding constant, if any, must already be
// folded into acc (see RoundQ31).
func RequantQ15(acc int32, shift int) int16 {
	return SatQ15(acc >> uint(shift))
}
