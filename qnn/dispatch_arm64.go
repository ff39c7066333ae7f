//go:build arm64

package qnn

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentName = "scalar"
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) as part of the ARMv8-A base
	// architecture. We still consult the cpu package for consistency.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentName = "neon"
	} else {
		// Should never happen on ARMv8+
		currentLevel = DispatchScalar
		currentName = "scalar"
	}
}
