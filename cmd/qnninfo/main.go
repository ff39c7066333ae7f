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

// Command qnninfo reports the kernel dispatch configuration for this host
// and provides a quick timing harness for the quantized kernels.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-qnn/qnn"
	"github.com/ajroetker/go-qnn/qnn/contrib/fc"
)

func main() {
	root := &cobra.Command{
		Use:          "qnninfo",
		Short:        "Inspect go-qnn dispatch and benchmark its kernels",
		SilenceUsage: true,
	}
	root.AddCommand(newFeaturesCmd(), newBenchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Print detected CPU features and the selected dispatch level",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("GOOS: %s\n", runtime.GOOS)
			fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
			fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
			fmt.Println()

			fmt.Printf("Dispatch level: %s\n", qnn.CurrentLevel())
			fmt.Printf("Dispatch name: %s\n", qnn.CurrentName())
			fmt.Printf("QNN_NO_SIMD set: %v\n", qnn.NoSimdEnv())
			fmt.Println()

			switch runtime.GOARCH {
			case "arm64":
				printARM64Features()
			case "amd64":
				printAMD64Features()
			}
			return nil
		},
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:    %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:   %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:  %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:   %v (x86-64 baseline)\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:  %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX2:   %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512: %v\n", cpu.X86.HasAVX512)
}

func newBenchCmd() *cobra.Command {
	var (
		rows  int
		cols  int
		iters int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the fully connected kernel for a given layer shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows <= 0 || cols <= 0 || iters <= 0 {
				return fmt.Errorf("rows, cols and iters must be positive (got %d, %d, %d)", rows, cols, iters)
			}

			rng := rand.New(rand.NewSource(1))
			input := make([]int16, cols)
			weights := make([]int8, rows*cols)
			bias := make([]int8, rows)
			output := make([]int16, rows)
			for i := range input {
				input[i] = int16(rng.Intn(1<<16) - (1 << 15))
			}
			for i := range weights {
				weights[i] = int8(rng.Intn(256) - 128)
			}
			for i := range bias {
				bias[i] = int8(rng.Intn(256) - 128)
			}

			fmt.Printf("shape: %dx%d, iters: %d, dispatch: %s\n\n",
				rows, cols, iters, qnn.CurrentName())

			start := time.Now()
			for i := 0; i < iters; i++ {
				fc.FullyConnected(input, weights, cols, rows, 2, 9, bias, nil, output)
			}
			report("FullyConnected", time.Since(start), rows, cols, iters)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 256, "number of output rows")
	cmd.Flags().IntVar(&cols, "cols", 256, "input vector length")
	cmd.Flags().IntVar(&iters, "iters", 1000, "number of kernel invocations")
	return cmd
}

func report(name string, elapsed time.Duration, rows, cols, iters int) {
	perCall := elapsed / time.Duration(iters)
	macs := float64(rows) * float64(cols) * float64(iters)
	fmt.Printf("%-16s %12v/call  %8.1f MMAC/s\n",
		name, perCall, macs/elapsed.Seconds()/1e6)
}
