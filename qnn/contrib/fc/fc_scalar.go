package fc

import "github.com/ajroetker/go-qnn/qnn"

// fullyConnectedScalar is the portable fallback strategy: plain nested
// row/column loops with one q31 accumulator per row. It is the reference
// arithmetic that the paired strategy must match bit for bit.
func fullyConnectedScalar(input []int16, weights []int8, dimVec, numRows, biasShift, outShift int, bias []int8, output []int16) {
	for i := 0; i < numRows; i++ {
		acc := (int32(bias[i]) << uint(biasShift)) + qnn.RoundQ31(outShift)
		row := weights[i*dimVec : (i+1)*dimVec]
		for j := 0; j < dimVec; j++ {
			acc += int32(input[j]) * int32(row[j])
		}
		output[i] = qnn.RequantQ15(acc, outShift)
	}
}
