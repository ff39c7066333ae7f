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

import "testing"

func TestSatQ15(t *testing.T) {
	tests := []struct {
		name string
		in   int32
		want int16
	}{
		{"zero", 0, 0},
		{"in_range_pos", 12345, 12345},
		{"in_range_neg", -12345, -12345},
		{"max", 32767, 32767},
		{"min", -32768, -32768},
		{"above_max", 32768, 32767},
		{"below_min", -32769, -32768},
		{"far_above", 1 << 30, 32767},
		{"far_below", -(1 << 30), -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SatQ15(tt.in); got != tt.want {
				t.Errorf("SatQ15(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSatQ7(t *testing.T) {
	tests := []struct {
		name string
		in   int32
		want int8
	}{
		{"zero", 0, 0},
		{"max", 127, 127},
		{"min", -128, -128},
		{"above_max", 128, 127},
		{"below_min", -129, -128},
		{"far_above", 99999, 127},
		{"far_below", -99999, -128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SatQ7(tt.in); got != tt.want {
				t.Errorf("SatQ7(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundQ31(t *testing.T) {
	// Shift 0 must contribute no rounding at all.
	if got := RoundQ31(0); got != 0 {
		t.Errorf("RoundQ31(0) = %d, want 0", got)
	}

	for shift := 1; shift <= 31; shift++ {
		want := int32(1) << uint(shift-1)
		if got := RoundQ31(shift); got != want {
			t.Errorf("RoundQ31(%d) = %d, want %d", shift, got, want)
		}
	}
}

func TestUnpackPairQ7(t *testing.T) {
	w := []int8{-128, 127, -1, 0, 5}

	a, b := UnpackPairQ7(w)
	if a != -128 || b != 127 {
		t.Errorf("UnpackPairQ7(w) = (%d, %d), want (-128, 127)", a, b)
	}

	// Sign extension must be independent per byte.
	a, b = UnpackPairQ7(w[2:])
	if a != -1 || b != 0 {
		t.Errorf("UnpackPairQ7(w[2:]) = (%d, %d), want (-1, 0)", a, b)
	}
}

func TestMulAccPairQ15(t *testing.T) {
	// 3*4 + (-5)*6 + 100 = 82
	if got := MulAccPairQ15(3, -5, 4, 6, 100); got != 82 {
		t.Errorf("MulAccPairQ15 = %d, want 82", got)
	}

	// Extremes must accumulate exactly in q31.
	got := MulAccPairQ15(-32768, -32768, -128, -128, 0)
	want := int32(2 * 32768 * 128)
	if got != want {
		t.Errorf("MulAccPairQ15 extremes = %d, want %d", got, want)
	}
}

func TestRequantQ15(t *testing.T) {
	tests := []struct {
		name  string
		acc   int32
		shift int
		want  int16
	}{
		{"identity", 42, 0, 42},
		{"shift_one", 17, 1, 8},
		{"negative", -64, 2, -16},
		{"saturates_high", 1 << 20, 2, 32767},
		{"saturates_low", -(1 << 20), 2, -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequantQ15(tt.acc, tt.shift); got != tt.want {
				t.Errorf("RequantQ15(%d, %d) = %d, want %d", tt.acc, tt.shift, got, tt.want)
			}
		})
	}
}
