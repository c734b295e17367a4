package grid_test

import (
	"testing"

	"github.com/katalvlaran/dicekeys/fixtures"
	"github.com/katalvlaran/dicekeys/grid"
)

// BenchmarkCanonical measures the four-rotation canonicalisation.
func BenchmarkCanonical(b *testing.B) {
	g := fixtures.Sample()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.Seed(g)
	}
}

// BenchmarkDecode measures text parsing plus full validation.
func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := grid.Decode(fixtures.SampleText); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

// BenchmarkNumericRoundTrip measures ToNumber followed by FromNumber.
func BenchmarkNumericRoundTrip(b *testing.B) {
	g := fixtures.Sample()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n, err := grid.ToNumber(g)
		if err != nil {
			b.Fatalf("ToNumber failed: %v", err)
		}
		if _, err := grid.FromNumber(n); err != nil {
			b.Fatalf("FromNumber failed: %v", err)
		}
	}
}
