package convergence_test

import (
	"testing"

	"gcat/internal/convergence"
)

// BenchmarkSolveOrder measures the iterative path on the worked example.
func BenchmarkSolveOrder(b *testing.B) {
	f := convergence.Triple{F1: 1, F2: 1.02, F3: 1.08}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convergence.SolveOrder(f, 1.306094, 1.303840, nil); err != nil {
			b.Fatalf("SolveOrder failed: %v", err)
		}
	}
}

// BenchmarkCompute measures the full GCI pipeline for one quantity.
func BenchmarkCompute(b *testing.B) {
	f := convergence.Triple{F1: 1, F2: 1.02, F3: 1.08}
	opts := convergence.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convergence.Compute(f, 1.306094, 1.303840, &opts); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}
