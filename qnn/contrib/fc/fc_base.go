package fc

import "github.com/ajroetker/go-qnn/qnn"

// FullyConnected computes one dense layer: output = sat(W*input + bias).
//
// Parameters:
//   - input: q15 activation vector of length dimVec, shared across all rows
//   - weights: q7 weight matrix in row-major order with shape [numRows, dimVec]
//   - dimVec: number of columns (input length)
//   - numRows: number of rows (output length)
//   - biasShift: left shift applied to each bias value before accumulation
//   - outShift: right shift requantizing the q31 accumulator back to q15
//   - bias: q7 bias vector of length numRows
//   - scratch: reserved for future vectorized variants, may be nil; ignored
//   - output: q15 output vector of length numRows (must be pre-allocated)
//
// Every output element is a pure function of the input vector, one weight
// row, one bias value and the two shifts; the kernel holds no state across
// rows or calls and performs no allocation, so concurrent calls on disjoint
// output buffers are safe.
//
// Panics if:
//   - dimVec <= 0 or numRows <= 0
//   - len(weights) < numRows * dimVec
//   - len(input) < dimVec, len(bias) < numRows or len(output) < numRows
//   - biasShift or outShift is outside [0, 31]
//
// Example:
//
//	// 2x3 weight matrix:
//	//   [1 2 3]
//	//   [4 5 6]
//	w := []int8{1, 2, 3, 4, 5, 6}
//	in := []int16{1, 0, 1}
//	bias := []int8{0, 0}
//	out := make([]int16, 2)
//	fc.FullyConnected(in, w, 3, 2, 0, 0, bias, nil, out) // out = [4, 10]
func FullyConnected(input []int16, weights []int8, dimVec, numRows, biasShift, outShift int, bias []int8, scratch []int16, output []int16) {
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

	kernel()(input, weights, dimVec, numRows, biasShift, outShift, bias, output)
}

// kernelFunc is the signature shared by both execution strategies.
// Preconditions are checked by the exported entry points, not here.
type kernelFunc func(input []int16, weights []int8, dimVec, numRows, biasShift, outShift int, bias []int8, output []int16)

// kernel selects the execution strategy for the current dispatch level.
// The choice affects throughput only, never results.
func kernel() kernelFunc {
	if qnn.CurrentLevel() == qnn.DispatchScalar {
		return fullyConnectedScalar
	}
	return fullyConnectedPaired
}
