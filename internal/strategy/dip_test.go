package strategy

import (
	"errors"
	"strings"
	"testing"
	"time"

	"StockSentinel/internal/model"
)

func seriesFromCloses(symbol string, closes []float64) *model.PriceSeries {
	bars := make([]model.OHLCV, len(closes))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 500_000,
		}
	}
	return &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
}

func constantCloses(n int, v float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = v
	}
	return closes
}

func TestEvaluateDip_InsufficientData(t *testing.T) {
	series := seriesFromCloses("TCS", constantCloses(199, 100))
	_, err := EvaluateDip(series)
	if !errors.Is(err, model.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for 199 bars, got %v", err)
	}
}

func TestEvaluateDip_Oversold(t *testing.T) {
	// 300 bars flat at 100, then a steady slide: every recent delta is a
	// loss, so RSI(14) bottoms out below 30 for the final bar.
	closes := constantCloses(285, 100)
	price := 100.0
	for i := 0; i < 15; i++ {
		price -= 0.4
		closes = append(closes, price)
	}
	series := seriesFromCloses("INFY", closes)

	sig, err := EvaluateDip(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sig.HasSignal {
		t.Fatal("expected a dip signal for an oversold series")
	}
	if !strings.Contains(sig.Reason, "oversold") {
		t.Errorf("reason %q should mention oversold", sig.Reason)
	}
	if sig.RSI >= 30 {
		t.Errorf("RSI = %.1f, expected < 30", sig.RSI)
	}
}

func TestEvaluateDip_DipWithRisingTrend(t *testing.T) {
	// Slow uptrend keeps the 200-SMA rising, then a sharp two-day drop puts
	// the price more than 5% under the 20-SMA without driving RSI below 30.
	closes := make([]float64, 0, 300)
	price := 100.0
	for i := 0; i < 298; i++ {
		price *= 1.001
		closes = append(closes, price)
	}
	closes = append(closes, price*0.96, price*0.90)
	series := seriesFromCloses("RELIANCE", closes)

	sig, err := EvaluateDip(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.SMA200Trend != "Positive" {
		t.Errorf("SMA200Trend = %q, want Positive", sig.SMA200Trend)
	}
	if sig.PctBelowSMA20 >= -5 {
		t.Fatalf("pct vs 20-SMA = %.2f, expected < -5", sig.PctBelowSMA20)
	}
	if !sig.HasSignal {
		t.Fatal("expected dip-with-trend signal")
	}
	if !strings.Contains(sig.Reason, "below 20-SMA") {
		t.Errorf("reason %q should mention the 20-SMA dip", sig.Reason)
	}
}

func TestEvaluateDip_NoSignal(t *testing.T) {
	series := seriesFromCloses("HDFCBANK", constantCloses(300, 100))
	sig, err := EvaluateDip(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.HasSignal {
		t.Errorf("flat series should not signal, reason: %s", sig.Reason)
	}
	if sig.Reason != "No signal" {
		t.Errorf("reason = %q, want %q", sig.Reason, "No signal")
	}
}

func TestEvaluateDip_Deterministic(t *testing.T) {
	closes := constantCloses(285, 100)
	price := 100.0
	for i := 0; i < 15; i++ {
		price -= 0.4
		closes = append(closes, price)
	}
	a, err := EvaluateDip(seriesFromCloses("WIPRO", closes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := EvaluateDip(seriesFromCloses("WIPRO", closes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *a != *b {
		t.Errorf("identical input produced different signals:\n%+v\n%+v", a, b)
	}
}
