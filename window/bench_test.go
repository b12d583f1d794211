package window_test

import (
	"testing"

	"github.com/katalvlaran/shocklets/window"
)

// benchData builds a deterministic scattered indicator array of length n.
func benchData(n int) ([]float64, []string) {
	values := make([]float64, n)
	labels := make([]string, n)
	for i := range values {
		values[i] = float64((i * 2654435761) % 1000003)
		labels[i] = "w"
	}

	return values, labels
}

// BenchmarkTopK_10of100k benchmarks the partial-selection path where the
// quickselect bound matters: tiny k over a large candidate set.
func BenchmarkTopK_10of100k(b *testing.B) {
	values, labels := benchData(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := window.TopK(values, labels, 10); err != nil {
			b.Fatalf("TopK failed: %v", err)
		}
	}
}

// BenchmarkTopK_1kof100k benchmarks a mid-sized selection.
func BenchmarkTopK_1kof100k(b *testing.B) {
	values, labels := benchData(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := window.TopK(values, labels, 1000); err != nil {
			b.Fatalf("TopK failed: %v", err)
		}
	}
}

// BenchmarkArgMaxes_1kWindows benchmarks peak extraction over one thousand
// contiguous 64-point windows.
func BenchmarkArgMaxes_1kWindows(b *testing.B) {
	data, _ := benchData(64_000)
	windows := make([][]int, 1000)
	for w := range windows {
		win := make([]int, 64)
		for i := range win {
			win[i] = w*64 + i
		}
		windows[w] = win
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := window.ArgMaxes(windows, data); err != nil {
			b.Fatalf("ArgMaxes failed: %v", err)
		}
	}
}
