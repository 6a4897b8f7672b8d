package apted_test

import (
	"testing"

	"github.com/katalvlaran/apted/apted"
	"github.com/katalvlaran/apted/cost"
	"github.com/katalvlaran/apted/gen"
)

// benchmarkDistance runs ComputeEditDistance on two random trees of size n
// and m, resetting the timer before entering the loop and failing on
// unexpected errors.
func benchmarkDistance(b *testing.B, n, m int) {
	t1, err := gen.Random(n, 1)
	if err != nil {
		b.Fatalf("gen t1: %v", err)
	}
	t2, err := gen.Random(m, 2)
	if err != nil {
		b.Fatalf("gen t2: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, err := apted.New(t1, t2, cost.UnitCost{})
		if err != nil {
			b.Fatalf("new: %v", err)
		}
		if _, err := a.ComputeEditDistance(); err != nil {
			b.Fatalf("compute: %v", err)
		}
	}
}

// BenchmarkComputeEditDistance_Small benchmarks a pair of 50-node trees.
func BenchmarkComputeEditDistance_Small(b *testing.B) {
	benchmarkDistance(b, 50, 50)
}

// BenchmarkComputeEditDistance_Medium benchmarks a pair of 200-node trees.
func BenchmarkComputeEditDistance_Medium(b *testing.B) {
	benchmarkDistance(b, 200, 200)
}

// BenchmarkComputeEditDistance_Skewed benchmarks a path against a star of
// the same size, the shape that maximizes keyroot count on one side.
func BenchmarkComputeEditDistance_Skewed(b *testing.B) {
	t1, err := gen.Path(150)
	if err != nil {
		b.Fatalf("gen path: %v", err)
	}
	t2, err := gen.Star(150)
	if err != nil {
		b.Fatalf("gen star: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, err := apted.New(t1, t2, cost.UnitCost{})
		if err != nil {
			b.Fatalf("new: %v", err)
		}
		if _, err := a.ComputeEditDistance(); err != nil {
			b.Fatalf("compute: %v", err)
		}
	}
}

// BenchmarkComputeEditMapping_Small benchmarks mapping extraction on top of
// an already-computed distance for a pair of 50-node trees.
func BenchmarkComputeEditMapping_Small(b *testing.B) {
	t1, err := gen.Random(50, 3)
	if err != nil {
		b.Fatalf("gen t1: %v", err)
	}
	t2, err := gen.Random(50, 4)
	if err != nil {
		b.Fatalf("gen t2: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, err := apted.New(t1, t2, cost.UnitCost{})
		if err != nil {
			b.Fatalf("new: %v", err)
		}
		if _, err := a.ComputeEditDistance(); err != nil {
			b.Fatalf("compute: %v", err)
		}
		if _, err := a.ComputeEditMapping(); err != nil {
			b.Fatalf("mapping: %v", err)
		}
	}
}
