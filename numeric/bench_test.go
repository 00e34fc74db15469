package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlbayes/numeric"
)

// BenchmarkLgamma measures the exact log-gamma kernel.
func BenchmarkLgamma(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += numeric.Lgamma(float64(i%1000) + 0.5)
	}
	_ = sink
}

// BenchmarkFastLgamma measures the float32 approximation; the ratio to
// BenchmarkLgamma is the low-precision path's headroom.
func BenchmarkFastLgamma(b *testing.B) {
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += numeric.FastLgamma(float32(i%1000) + 0.5)
	}
	_ = sink
}

// benchmarkCategorical runs CategoricalLog over a k-way weight vector.
func benchmarkCategorical(b *testing.B, k int) {
	rng := numeric.NewEngine(1)
	logw := make([]float64, k)
	for i := range logw {
		logw[i] = -math.Abs(float64(i%7)) - 0.1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := numeric.CategoricalLog(rng, logw); err != nil {
			b.Fatalf("CategoricalLog failed: %v", err)
		}
	}
}

// BenchmarkCategoricalLog_8 benchmarks a small (typical) group count.
func BenchmarkCategoricalLog_8(b *testing.B) { benchmarkCategorical(b, 8) }

// BenchmarkCategoricalLog_256 benchmarks a large group count.
func BenchmarkCategoricalLog_256(b *testing.B) { benchmarkCategorical(b, 256) }
