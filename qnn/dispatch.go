package qnn

import (
	"os"
	"strconv"
)

// DispatchLevel represents the instruction-set capability selected at init.
type DispatchLevel int

const (
	// DispatchScalar indicates no packed arithmetic, pure scalar loops.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates x86-64 baseline packed 16-bit arithmetic.
	DispatchSSE2

	// DispatchNEON indicates ARM NEON (ASIMD) packed arithmetic.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected capability level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the current level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the capability level kernels dispatch on.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current dispatch target.
// For example: "sse2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the QNN_NO_SIMD environment variable is set.
// When set, kernels use the scalar strategy regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("QNN_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
