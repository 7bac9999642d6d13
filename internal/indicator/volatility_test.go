package indicator

import (
	"math"
	"testing"
)

func TestBollingerWidth_KnownWindow(t *testing.T) {
	closes := syntheticCloses(60)
	bars := barsFromCloses(closes)
	window := 20
	out := BollingerWidth(bars, window, 2)

	for i := 0; i < window-1; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("index %d: expected warm-up NaN, got %v", i, out[i])
		}
	}

	// Recompute the last position by hand.
	last := len(closes) - 1
	win := closes[last-window+1:]
	mean := naiveMean(win)
	var sq float64
	for _, v := range win {
		sq += (v - mean) * (v - mean)
	}
	sd := math.Sqrt(sq / float64(window-1))
	want := ((mean + 2*sd) - (mean - 2*sd)) / mean
	if math.Abs(out[last]-want) > 1e-9 {
		t.Errorf("width = %v, want %v", out[last], want)
	}
}

func TestPctChange(t *testing.T) {
	closes := []float64{100, 110, 99, 120, 120}
	out := PctChange(barsFromCloses(closes), 1)
	if !math.IsNaN(out[0]) {
		t.Errorf("lag-1 position 0 should be NaN, got %v", out[0])
	}
	want := []float64{0.10, -0.10, 120.0/99.0 - 1, 0}
	for i, w := range want {
		if math.Abs(out[i+1]-w) > 1e-9 {
			t.Errorf("index %d: got %v, want %v", i+1, out[i+1], w)
		}
	}

	out5 := PctChange(barsFromCloses(closes), 5)
	for i, v := range out5 {
		if !math.IsNaN(v) {
			t.Errorf("lag beyond series length: index %d should be NaN, got %v", i, v)
		}
	}
}

func TestRangeRatio(t *testing.T) {
	bars := barsFromCloses([]float64{100, 200})
	out := RangeRatio(bars)
	for i, b := range bars {
		want := (b.High - b.Low) / b.Close
		if math.Abs(out[i]-want) > 1e-9 {
			t.Errorf("index %d: got %v, want %v", i, out[i], want)
		}
	}
}

func TestRangeRatio_ZeroClose(t *testing.T) {
	bars := barsFromCloses([]float64{0})
	out := RangeRatio(bars)
	if !math.IsNaN(out[0]) {
		t.Errorf("zero close should give NaN, got %v", out[0])
	}
}
