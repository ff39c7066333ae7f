//go:build !amd64 && !arm64

package qnn

func init() {
	// Other architectures fall back to the scalar strategy for now.
	// Future implementations will add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support
	currentLevel = DispatchScalar
	currentName = "scalar"
}
