//go:build amd64

package qnn

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentName = "scalar"
		return
	}

	// SSE2 is part of the x86-64 baseline, so packed 16-bit arithmetic is
	// always available and the paired strategy is always profitable.
	currentLevel = DispatchSSE2
	currentName = "sse2"
}
