package fc

import "github.com/ajroetker/go-qnn/qnn"

// fullyConnectedPaired is the unrolled strategy: output rows are processed
// two at a time with one q31 accumulator each, and the input vector four
// elements at a time. Each 4-wide iteration unpacks two q7 pairs per weight
// row and feeds them through dual multiply-accumulates sharing the loaded
// input pair, mirroring the SMLAD structure of DSP implementations. A scalar
// tail consumes dimVec mod 4 columns, and an odd leftover row runs the same
// 4-wide/tail pattern with a single accumulator.
//
// The accumulation order differs from the scalar strategy but integer
// addition is associative, so results are bit-identical.
func fullyConnectedPaired(input []int16, weights []int8, dimVec, numRows, biasShift, outShift int, bias []int8, output []int16) {
	round := qnn.RoundQ31(outShift)

	i := 0
	for ; i+2 <= numRows; i += 2 {
		acc := (int32(bias[i]) << uint(biasShift)) + round
		acc2 := (int32(bias[i+1]) << uint(biasShift)) + round

		row := weights[i*dimVec : (i+1)*dimVec]
		row2 := weights[(i+1)*dimVec : (i+2)*dimVec]

		j := 0
		for ; j+4 <= dimVec; j += 4 {
			m0, m1 := qnn.UnpackPairQ7(row[j:])
			n0, n1 := qnn.UnpackPairQ7(row2[j:])
			acc = qnn.MulAccPairQ15(input[j], input[j+1], m0, m1, acc)
			acc2 = qnn.MulAccPairQ15(input[j], input[j+1], n0, n1, acc2)

			m2, m3 := qnn.UnpackPairQ7(row[j+2:])
			n2, n3 := qnn.UnpackPairQ7(row2[j+2:])
			acc = qnn.MulAccPairQ15(input[j+2], input[j+3], m2, m3, acc)
			acc2 = qnn.MulAccPairQ15(input[j+2], input[j+3], n2, n3, acc2)
		}
		for ; j < dimVec; j++ {
			v := int32(input[j])
			acc += v * int32(row[j])
			acc2 += v * int32(row2[j])
		}

		output[i] = qnn.RequantQ15(acc, outShift)
		output[i+1] = qnn.RequantQ15(acc2, outShift)
	}

	// Leftover row when numRows is odd.
	if i < numRows {
		acc := (int32(bias[i]) << uint(biasShift)) + round
		row := weights[i*dimVec : (i+1)*dimVec]

		j := 0
		for ; j+4 <= dimVec; j += 4 {
			m0, m1 := qnn.UnpackPairQ7(row[j:])
			acc = qnn.MulAccPairQ15(input[j], input[j+1], m0, m1, acc)

			m2, m3 := qnn.UnpackPairQ7(row[j+2:])
			acc = qnn.MulAccPairQ15(input[j+2], input[j+3], m2, m3, acc)
		}
		for ; j < dimVec; j++ {
			acc += int32(input[j]) * int32(row[j])
		}

		output[i] = qnn.RequantQ15(acc, outShift)
	}
}
