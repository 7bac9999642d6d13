package strategy

import (
	"errors"
	"testing"

	"StockSentinel/internal/model"
)

func TestClassifyMarket_Uptrend(t *testing.T) {
	// Rising benchmark: close above SMA200 and SMA50 above SMA200.
	closes := make([]float64, 0, 300)
	price := 17000.0
	for i := 0; i < 300; i++ {
		price += 5
		closes = append(closes, price)
	}
	st := ClassifyMarket(seriesFromCloses("^NSEI", closes))
	if st.State != model.TrendUptrend {
		t.Fatalf("state = %q, want %q (close=%.0f sma50=%.0f sma200=%.0f)", st.State, model.TrendUptrend, st.Close, st.SMA50, st.SMA200)
	}
	if st.Color != "green" {
		t.Errorf("color = %q, want green", st.Color)
	}
	if !(st.Close > st.SMA200 && st.SMA50 > st.SMA200) {
		t.Errorf("uptrend invariant violated: close=%.0f sma50=%.0f sma200=%.0f", st.Close, st.SMA50, st.SMA200)
	}
}

func TestClassifyMarket_UnderPressure(t *testing.T) {
	// Long plateau, a deep recent trough dragging SMA50 below SMA200, and a
	// final pop back above the long-run average.
	closes := make([]float64, 0, 200)
	for i := 0; i < 150; i++ {
		closes = append(closes, 100)
	}
	for i := 0; i < 45; i++ {
		closes = append(closes, 80)
	}
	for i := 0; i < 5; i++ {
		closes = append(closes, 105)
	}
	st := ClassifyMarket(seriesFromCloses("^NSEI", closes))
	if st.State != model.TrendUnderPressure {
		t.Fatalf("state = %q, want %q (close=%.1f sma50=%.1f sma200=%.1f)", st.State, model.TrendUnderPressure, st.Close, st.SMA50, st.SMA200)
	}
	if st.Color != "orange" {
		t.Errorf("color = %q, want orange", st.Color)
	}
}

func TestClassifyMarket_Correction(t *testing.T) {
	closes := make([]float64, 0, 250)
	for i := 0; i < 200; i++ {
		closes = append(closes, 100)
	}
	for i := 0; i < 50; i++ {
		closes = append(closes, 90)
	}
	st := ClassifyMarket(seriesFromCloses("^NSEI", closes))
	if st.State != model.TrendCorrection {
		t.Fatalf("state = %q, want %q", st.State, model.TrendCorrection)
	}
	if st.Color != "red" {
		t.Errorf("color = %q, want red", st.Color)
	}
}

func TestClassifyMarket_InsufficientData(t *testing.T) {
	st := ClassifyMarket(seriesFromCloses("^NSEI", constantCloses(100, 100)))
	if st.State != model.TrendError {
		t.Fatalf("state = %q, want %q", st.State, model.TrendError)
	}
	if st.Color != "grey" {
		t.Errorf("color = %q, want grey", st.Color)
	}
	if st.Reason == "" {
		t.Error("error state should carry a reason")
	}
}

func TestMarketUnavailable(t *testing.T) {
	st := MarketUnavailable(errors.New("no data found for symbol: ^NSEI"))
	if st.State != model.TrendError || st.Color != "grey" {
		t.Fatalf("unexpected sentinel: %+v", st)
	}
	if st.Reason != "no data found for symbol: ^NSEI" {
		t.Errorf("reason = %q, original fetch reason not preserved", st.Reason)
	}
}
